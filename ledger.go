package tokenledger

import (
	"github.com/xraph/tokenledger/types"
)

// Ledger is an in-memory fungible token ledger: a fixed total supply, a
// balance per address, and a delegated-spending allowance per
// (owner, spender) pair.
//
// The ledger exclusively owns its maps; nothing it returns aliases them.
// It is designed for a single trusted caller invoking operations
// sequentially. It performs no locking of its own — hosts that share a
// Ledger across goroutines must serialize access externally, for example
// with a single writer lock around the whole state. Every operation is a
// bounded, synchronous computation over in-memory maps; none of them
// block or perform I/O.
type Ledger struct {
	totalSupply types.Balance
	balances    map[types.Address]types.Balance
	allowances  map[types.AllowanceKey]types.Balance
}

// New creates a ledger whose entire initial supply is credited to the
// creator address. Any supply, including zero, is valid. The supply is
// fixed for the lifetime of the ledger; there is no mint or burn beyond
// this initial issuance.
func New(creator types.Address, initialSupply types.Balance) *Ledger {
	return &Ledger{
		totalSupply: initialSupply,
		balances:    map[types.Address]types.Balance{creator: initialSupply},
		allowances:  make(map[types.AllowanceKey]types.Balance),
	}
}

// TotalSupply returns the fixed total supply.
func (l *Ledger) TotalSupply() types.Balance {
	return l.totalSupply
}

// BalanceOf returns the balance credited to address, or zero if the
// address has never been credited. Reading an absent address never
// materializes an entry, so the map stays proportional to the set of
// ever-credited addresses.
func (l *Ledger) BalanceOf(address types.Address) types.Balance {
	return l.balances[address]
}

// Allowance returns the amount spender may still move on behalf of
// owner, or zero if no approval exists for the pair.
func (l *Ledger) Allowance(owner, spender types.Address) types.Balance {
	return l.allowances[types.AllowanceKey{Owner: owner, Spender: spender}]
}

// Transfer moves amount from one address to another.
//
// Checks run cheapest first, and no state is touched until all of them
// pass: self-transfer, zero amount, source balance, destination overflow.
// On success the debit and credit apply together; on failure the ledger
// is unchanged.
func (l *Ledger) Transfer(from, to types.Address, amount types.Balance) error {
	if from == to {
		return ErrSelfTransfer
	}
	if amount == 0 {
		return ErrZeroAmount
	}

	fromBal := l.balances[from]
	if fromBal < amount {
		return &InsufficientBalanceError{Required: amount, Available: fromBal}
	}

	toBal, ok := l.balances[to].AddChecked(amount)
	if !ok {
		return ErrBalanceOverflow
	}

	l.balances[from] = fromBal - amount
	l.balances[to] = toBal
	return nil
}

// Approve records that spender may move up to amount of owner's balance.
// The new amount fully replaces any prior approval for the pair, so
// approving zero is an explicit revocation. The owner's current balance
// is deliberately not checked — an approval is a record of intent, not a
// reservation of funds.
func (l *Ledger) Approve(owner, spender types.Address, amount types.Balance) error {
	if owner == spender {
		return ErrSelfApproval
	}
	l.allowances[types.AllowanceKey{Owner: owner, Spender: spender}] = amount
	return nil
}

// TransferFrom moves amount from one address to another on the owner's
// behalf, debited against spender's allowance from that owner.
//
// The allowance check runs before the balance check so that spenders
// without approval fail before a second map lookup. Equality is always
// enough: an amount exactly equal to the allowance and to the source
// balance succeeds. On success the debit, the credit and the allowance
// decrement apply together; on failure nothing changes. The key updated
// is always (owner=from, spender) — never any pair involving the
// destination.
func (l *Ledger) TransferFrom(spender, from, to types.Address, amount types.Balance) error {
	if from == to {
		return ErrSelfTransfer
	}
	if amount == 0 {
		return ErrZeroAmount
	}

	key := types.AllowanceKey{Owner: from, Spender: spender}
	allowed := l.allowances[key]
	if allowed < amount {
		return &InsufficientAllowanceError{Required: amount, Available: allowed}
	}

	fromBal := l.balances[from]
	if fromBal < amount {
		return &InsufficientBalanceError{Required: amount, Available: fromBal}
	}

	toBal, ok := l.balances[to].AddChecked(amount)
	if !ok {
		return ErrBalanceOverflow
	}

	l.balances[from] = fromBal - amount
	l.balances[to] = toBal
	l.allowances[key] = allowed - amount
	return nil
}

// Balances returns a copy of every stored balance entry. Addresses that
// were fully debited keep an explicit zero entry; addresses never
// credited do not appear.
func (l *Ledger) Balances() map[types.Address]types.Balance {
	out := make(map[types.Address]types.Balance, len(l.balances))
	for addr, bal := range l.balances {
		out[addr] = bal
	}
	return out
}

// Allowances returns a copy of every stored allowance entry.
func (l *Ledger) Allowances() map[types.AllowanceKey]types.Balance {
	out := make(map[types.AllowanceKey]types.Balance, len(l.allowances))
	for key, bal := range l.allowances {
		out[key] = bal
	}
	return out
}

// NumAccounts returns the number of stored balance entries. Useful for
// asserting that reads never grow the map.
func (l *Ledger) NumAccounts() int {
	return len(l.balances)
}
