package tokenledger

import "github.com/xraph/tokenledger/types"

// Re-export common types for convenience so users don't have to import
// the types package.

// Address is re-exported from the types package.
type Address = types.Address

// Balance is re-exported from the types package.
type Balance = types.Balance

// AllowanceKey is re-exported from the types package.
type AllowanceKey = types.AllowanceKey

// MaxBalance is the largest representable balance.
const MaxBalance = types.MaxBalance

// Sum is re-exported from the types package.
var Sum = types.Sum
