// Package tokenledger provides a minimal in-memory ledger for an
// ERC-20-style fungible token: balance tracking, direct transfers, and
// delegated spending through allowances.
//
// Tokenledger is designed as a library, not a service. Import it directly
// into your Go application; there is no networking, no persistence and no
// background machinery. It provides:
//
//   - A single aggregate Ledger owning balances and allowances
//   - Overflow-safe 64-bit balance arithmetic
//   - A typed, recoverable error for every rejected operation
//   - All-or-nothing semantics: a failed operation never leaves a
//     partial update behind
//
// # Quick Start
//
// Create a ledger with a creator address and an initial supply, then
// move funds:
//
//	l := tokenledger.New("alice", 1000)
//
//	if err := l.Transfer("alice", "bob", 300); err != nil {
//	    log.Fatal(err)
//	}
//
// # Delegated spending
//
// An owner approves a spender, who can then move funds on the owner's
// behalf until the allowance is used up:
//
//	_ = l.Approve("alice", "carol", 100)
//
//	if err := l.TransferFrom("carol", "alice", "dave", 60); err != nil {
//	    log.Fatal(err)
//	}
//	remaining := l.Allowance("alice", "carol") // 40
//
// # Error handling
//
// Every rejection is a typed failure value. Shortfall errors carry the
// required and available amounts:
//
//	err := l.Transfer("alice", "bob", 1_000_000)
//	var ib *tokenledger.InsufficientBalanceError
//	if errors.As(err, &ib) {
//	    fmt.Println(ib.Required, ib.Available)
//	}
//
// # Concurrency
//
// A Ledger assumes a single trusted caller invoking operations
// sequentially. Hosts that share one across goroutines must add external
// mutual exclusion; no operation is internally safe for interleaved
// mutation.
//
// # Observation
//
// The core emits no events and writes no logs. The audit package wraps a
// Ledger with hooks and an in-memory trail for hosts that want an
// operation journal; see audit.Observe.
package tokenledger
