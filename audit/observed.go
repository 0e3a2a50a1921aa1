package audit

import (
	"github.com/xraph/tokenledger"
	"github.com/xraph/tokenledger/types"
)

// Observed wraps a core Ledger and dispatches one Event per mutating
// call, whether the core accepted it or not. Reads pass through
// untouched, and the wrapped operation's result is returned unchanged.
//
// Observed adds no locking of its own; like the core, it expects a
// single caller at a time.
type Observed struct {
	ledger   *tokenledger.Ledger
	registry *Registry
	enabled  map[string]bool // nil = all actions dispatched
	seq      uint64
}

// Observe wraps a ledger. With no options, events are dispatched to an
// empty registry, which is harmless; register hooks with WithHook or
// attach a logger with WithLogger.
func Observe(l *tokenledger.Ledger, opts ...Option) *Observed {
	o := &Observed{
		ledger:   l,
		registry: NewRegistry(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Ledger returns the wrapped core ledger.
func (o *Observed) Ledger() *tokenledger.Ledger { return o.ledger }

// Registry returns the hook registry.
func (o *Observed) Registry() *Registry { return o.registry }

// TotalSupply delegates to the core ledger.
func (o *Observed) TotalSupply() types.Balance { return o.ledger.TotalSupply() }

// BalanceOf delegates to the core ledger.
func (o *Observed) BalanceOf(address types.Address) types.Balance {
	return o.ledger.BalanceOf(address)
}

// Allowance delegates to the core ledger.
func (o *Observed) Allowance(owner, spender types.Address) types.Balance {
	return o.ledger.Allowance(owner, spender)
}

// Transfer delegates to the core ledger and dispatches the outcome.
func (o *Observed) Transfer(from, to types.Address, amount types.Balance) error {
	err := o.ledger.Transfer(from, to, amount)
	o.dispatch(Event{
		Action: ActionTransfer,
		From:   from,
		To:     to,
		Amount: amount,
	}, err)
	return err
}

// Approve delegates to the core ledger and dispatches the outcome.
func (o *Observed) Approve(owner, spender types.Address, amount types.Balance) error {
	err := o.ledger.Approve(owner, spender, amount)
	o.dispatch(Event{
		Action:  ActionApprove,
		Owner:   owner,
		Spender: spender,
		Amount:  amount,
	}, err)
	return err
}

// TransferFrom delegates to the core ledger and dispatches the outcome.
func (o *Observed) TransferFrom(spender, from, to types.Address, amount types.Balance) error {
	err := o.ledger.TransferFrom(spender, from, to, amount)
	o.dispatch(Event{
		Action:  ActionTransferFrom,
		Spender: spender,
		From:    from,
		To:      to,
		Amount:  amount,
	}, err)
	return err
}

func (o *Observed) dispatch(e Event, err error) {
	o.seq++
	e.Seq = o.seq
	e.Outcome = OutcomeSuccess
	if err != nil {
		e.Outcome = OutcomeRejected
		e.Reason = err.Error()
	}

	if o.enabled != nil && !o.enabled[e.Action] {
		return
	}
	o.registry.Dispatch(e)
}
