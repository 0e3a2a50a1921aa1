package tokenledger

import (
	"errors"
	"fmt"

	"github.com/xraph/tokenledger/types"
)

// Sentinel errors for every failure the ledger can surface. All of them
// are expected, recoverable outcomes returned to the caller; the ledger
// never panics on invalid operations.
var (
	// ErrSelfTransfer is returned when a transfer names the same address
	// as source and destination.
	ErrSelfTransfer = errors.New("tokenledger: transfer from an address to itself")

	// ErrZeroAmount is returned when a transfer is requested with amount 0.
	ErrZeroAmount = errors.New("tokenledger: amount must be greater than zero")

	// ErrSelfApproval is returned when an approval names the same address
	// as owner and spender.
	ErrSelfApproval = errors.New("tokenledger: approval from an address to itself")

	// ErrBalanceOverflow is returned when crediting the destination would
	// exceed the representable balance range.
	ErrBalanceOverflow = errors.New("tokenledger: destination balance would overflow")

	// ErrInsufficientBalance is returned when the source lacks funds.
	// The returned value carries the required and available amounts; match
	// with errors.Is against this sentinel or errors.As against
	// *InsufficientBalanceError.
	ErrInsufficientBalance = errors.New("tokenledger: insufficient balance")

	// ErrInsufficientAllowance is returned when a delegated transfer
	// exceeds the spender's approved amount.
	ErrInsufficientAllowance = errors.New("tokenledger: insufficient allowance")
)

// InsufficientBalanceError reports a source balance shortfall.
type InsufficientBalanceError struct {
	Required  types.Balance
	Available types.Balance
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("tokenledger: insufficient balance: required %d, available %d", e.Required, e.Available)
}

// Is makes errors.Is(err, ErrInsufficientBalance) match.
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// InsufficientAllowanceError reports an allowance shortfall on a
// delegated transfer.
type InsufficientAllowanceError struct {
	Required  types.Balance
	Available types.Balance
}

func (e *InsufficientAllowanceError) Error() string {
	return fmt.Sprintf("tokenledger: insufficient allowance: required %d, available %d", e.Required, e.Available)
}

// Is makes errors.Is(err, ErrInsufficientAllowance) match.
func (e *InsufficientAllowanceError) Is(target error) bool {
	return target == ErrInsufficientAllowance
}

// IsInsufficientFunds returns true if the error is a balance or allowance
// shortfall.
func IsInsufficientFunds(err error) bool {
	return errors.Is(err, ErrInsufficientBalance) ||
		errors.Is(err, ErrInsufficientAllowance)
}

// IsInvalidRequest returns true if the error reports a malformed request
// rather than a funds problem.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrSelfTransfer) ||
		errors.Is(err, ErrZeroAmount) ||
		errors.Is(err, ErrSelfApproval)
}
