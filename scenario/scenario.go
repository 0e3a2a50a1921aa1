// Package scenario loads and runs declarative token ledger scenarios.
//
// A scenario is a YAML document that creates a fresh ledger from a
// genesis block and drives it through a sequence of operations, each
// with an optional expected outcome. Scenarios give hosts and tests a
// deterministic, file-based way to exercise ledger semantics without
// writing Go.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a ledger test scenario.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Genesis defines the initial ledger state.
	Genesis Genesis `yaml:"genesis"`

	// Steps contains the operations to run, in order.
	Steps []Step `yaml:"steps"`
}

// Genesis defines ledger creation: the creator address receives the
// entire initial supply.
type Genesis struct {
	Creator string `yaml:"creator"`
	Supply  uint64 `yaml:"supply"`
}

// Step is a single ledger operation with an optional expected outcome.
type Step struct {
	// Op is one of the Op* constants.
	Op string `yaml:"op"`

	// From and To are used by transfer and transfer_from.
	From string `yaml:"from,omitempty"`
	To   string `yaml:"to,omitempty"`

	// Owner and Spender are used by approve; Spender also by
	// transfer_from.
	Owner   string `yaml:"owner,omitempty"`
	Spender string `yaml:"spender,omitempty"`

	Amount uint64 `yaml:"amount"`

	// Expect is the expected outcome, one of the Outcome* constants.
	// Empty means OutcomeOK.
	Expect string `yaml:"expect,omitempty"`
}

// Operation constants.
const (
	OpTransfer     = "transfer"
	OpApprove      = "approve"
	OpTransferFrom = "transfer_from"
)

// Outcome constants. Every outcome other than OutcomeOK names one entry
// of the ledger's error taxonomy.
const (
	OutcomeOK                    = "ok"
	OutcomeSelfTransfer          = "self_transfer"
	OutcomeZeroAmount            = "zero_amount"
	OutcomeInsufficientBalance   = "insufficient_balance"
	OutcomeBalanceOverflow       = "balance_overflow"
	OutcomeSelfApproval          = "self_approval"
	OutcomeInsufficientAllowance = "insufficient_allowance"
)

var validOutcomes = map[string]bool{
	OutcomeOK:                    true,
	OutcomeSelfTransfer:          true,
	OutcomeZeroAmount:            true,
	OutcomeInsufficientBalance:   true,
	OutcomeBalanceOverflow:       true,
	OutcomeSelfApproval:          true,
	OutcomeInsufficientAllowance: true,
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scenario: parse %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scenario: %s: %w", path, err)
	}

	return &s, nil
}

// Validate checks the scenario for structural problems before it runs.
// It does not predict ledger outcomes — an insufficient balance is a
// valid thing for a scenario to provoke on purpose.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("missing name")
	}
	if s.Genesis.Creator == "" {
		return fmt.Errorf("genesis: missing creator")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("no steps")
	}

	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (st *Step) validate() error {
	if st.Expect != "" && !validOutcomes[st.Expect] {
		return fmt.Errorf("unknown expect %q", st.Expect)
	}

	switch st.Op {
	case OpTransfer:
		if st.From == "" || st.To == "" {
			return fmt.Errorf("transfer requires from and to")
		}
	case OpApprove:
		if st.Owner == "" || st.Spender == "" {
			return fmt.Errorf("approve requires owner and spender")
		}
	case OpTransferFrom:
		if st.Spender == "" || st.From == "" || st.To == "" {
			return fmt.Errorf("transfer_from requires spender, from and to")
		}
	case "":
		return fmt.Errorf("missing op")
	default:
		return fmt.Errorf("unknown op %q", st.Op)
	}
	return nil
}

// expected returns the step's expected outcome, defaulting to OutcomeOK.
func (st *Step) expected() string {
	if st.Expect == "" {
		return OutcomeOK
	}
	return st.Expect
}
