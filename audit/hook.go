// Package audit observes ledger operations from outside the core.
//
// The core Ledger emits no events and writes no logs. Hosts that want an
// operation journal wrap it with Observe, which dispatches exactly one
// Event per mutating call — success or rejection — to the registered
// hooks. Built-in hooks cover the common cases: Trail records events in
// memory, LogHook emits them through slog.
package audit

import "github.com/xraph/tokenledger/types"

// Event describes one mutating ledger operation, after the core has
// accepted or rejected it.
type Event struct {
	// Seq is the 1-based position of the operation in the observed
	// ledger's history, counting rejected operations too.
	Seq uint64 `json:"seq"`

	// Action is one of the Action* constants.
	Action string `json:"action"`

	// From and To are set for transfers and delegated transfers.
	From types.Address `json:"from,omitempty"`
	To   types.Address `json:"to,omitempty"`

	// Owner and Spender are set for approvals; Spender is also set for
	// delegated transfers.
	Owner   types.Address `json:"owner,omitempty"`
	Spender types.Address `json:"spender,omitempty"`

	Amount types.Balance `json:"amount"`

	// Outcome is OutcomeSuccess or OutcomeRejected.
	Outcome string `json:"outcome"`

	// Reason holds the rejection message; empty on success.
	Reason string `json:"reason,omitempty"`
}

// Rejected reports whether the operation was rejected by the core.
func (e Event) Rejected() bool { return e.Outcome == OutcomeRejected }

// Hook is the base interface that all hooks must implement.
type Hook interface {
	Name() string
}

// OnTransfer is called after every direct transfer attempt.
type OnTransfer interface {
	Hook
	OnTransfer(e Event) error
}

// OnApprove is called after every approval attempt.
type OnApprove interface {
	Hook
	OnApprove(e Event) error
}

// OnTransferFrom is called after every delegated transfer attempt.
type OnTransferFrom interface {
	Hook
	OnTransferFrom(e Event) error
}
