package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/xraph/tokenledger/scenario"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Scenario failure (a step's outcome differed from its expectation)
	ExitCommandError = 2 // Command error (invalid paths, malformed YAML, etc.)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// writeResult renders a scenario result in the configured format.
func writeResult(w io.Writer, format string, result *scenario.Result) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	return writeText(w, result)
}

// writeText renders a human-readable report: one line per step, the
// final state, and a PASS/FAIL verdict.
func writeText(w io.Writer, result *scenario.Result) error {
	fmt.Fprintf(w, "scenario: %s\n", result.Scenario)

	for _, step := range result.Steps {
		mark := "ok"
		if !step.Passed {
			mark = "MISMATCH"
		}
		fmt.Fprintf(w, "  %2d. %-14s outcome=%s expected=%s [%s]\n",
			step.Index, step.Op, step.Outcome, step.Expected, mark)
		if step.Detail != "" {
			fmt.Fprintf(w, "      %s\n", step.Detail)
		}
	}

	fmt.Fprintf(w, "final state:\n")
	fmt.Fprintf(w, "  total supply: %d\n", result.Final.TotalSupply)

	addrs := make([]string, 0, len(result.Final.Balances))
	for addr := range result.Final.Balances {
		addrs = append(addrs, addr)
	}
	sort.Strings(addrs)
	for _, addr := range addrs {
		fmt.Fprintf(w, "  balance %s: %d\n", addr, result.Final.Balances[addr])
	}

	for _, a := range result.Final.Allowances {
		fmt.Fprintf(w, "  allowance %s -> %s: %d\n", a.Owner, a.Spender, a.Amount)
	}

	if result.Passed {
		fmt.Fprintln(w, "result: PASS")
	} else {
		fmt.Fprintln(w, "result: FAIL")
	}
	return nil
}
