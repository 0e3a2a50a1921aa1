// Package types provides common types used across the token ledger.
package types

import "math"

// Address is an opaque account identifier. The ledger performs no
// well-formedness validation; any comparable value with a fixed identity
// works as a key.
type Address string

// Balance is a quantity of token units, bounded by a 64-bit unsigned
// integer. All arithmetic is integer-only and must reject overflow
// instead of wrapping.
type Balance uint64

// MaxBalance is the largest representable balance.
const MaxBalance Balance = math.MaxUint64

// AddChecked adds other to b and reports whether the result is
// representable. On overflow it returns (0, false) and the operands are
// unchanged.
func (b Balance) AddChecked(other Balance) (Balance, bool) {
	if other > MaxBalance-b {
		return 0, false
	}
	return b + other, true
}

// IsZero returns true if the balance is zero.
func (b Balance) IsZero() bool { return b == 0 }

// Sum calculates the sum of multiple balances. Panics on overflow; use it
// only where the sum is known to fit, such as summing balances bounded by
// a fixed total supply.
func Sum(values ...Balance) Balance {
	var total Balance
	for _, v := range values {
		next, ok := total.AddChecked(v)
		if !ok {
			panic("types: balance overflow in Sum")
		}
		total = next
	}
	return total
}

// AllowanceKey is the ordered (owner, spender) pair that keys a delegated
// spending allowance. A single composite key keeps lookups single-hop,
// instead of nesting a map per owner.
type AllowanceKey struct {
	Owner   Address `json:"owner"`
	Spender Address `json:"spender"`
}
