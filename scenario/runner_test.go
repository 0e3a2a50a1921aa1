package scenario_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xraph/tokenledger/audit"
	"github.com/xraph/tokenledger/scenario"
)

func TestRunDemo(t *testing.T) {
	result, err := scenario.Run(scenario.Demo())
	require.NoError(t, err)

	require.Equal(t, "delegated-spend", result.Scenario)
	require.True(t, result.Passed)
	require.Len(t, result.Steps, 4)

	for i, sr := range result.Steps {
		require.True(t, sr.Passed, "step %d", i+1)
		require.Equal(t, i+1, sr.Index)
	}
	require.Equal(t, scenario.OutcomeOK, result.Steps[0].Outcome)
	require.Equal(t, scenario.OutcomeInsufficientAllowance, result.Steps[3].Outcome)
	require.Contains(t, result.Steps[3].Detail, "required 50, available 40")

	require.Len(t, result.Trail, 4)
	require.Equal(t, audit.ActionTransfer, result.Trail[0].Action)
	require.True(t, result.Trail[3].Rejected())

	require.Equal(t, uint64(1000), result.Final.TotalSupply)
	require.Equal(t, map[string]uint64{
		"alice": 640,
		"bob":   300,
		"dave":  60,
	}, result.Final.Balances)
	require.Equal(t, []scenario.AllowanceEntry{
		{Owner: "alice", Spender: "carol", Amount: 40},
	}, result.Final.Allowances)
}

func TestRunReportsExpectationMismatch(t *testing.T) {
	s := &scenario.Scenario{
		Name:    "mismatch",
		Genesis: scenario.Genesis{Creator: "alice", Supply: 100},
		Steps: []scenario.Step{
			// Succeeds, but the scenario claims it should not.
			{Op: scenario.OpTransfer, From: "alice", To: "bob", Amount: 10,
				Expect: scenario.OutcomeInsufficientBalance},
		},
	}

	result, err := scenario.Run(s)
	require.NoError(t, err)

	require.False(t, result.Passed)
	require.False(t, result.Steps[0].Passed)
	require.Equal(t, scenario.OutcomeOK, result.Steps[0].Outcome)
	require.Equal(t, scenario.OutcomeInsufficientBalance, result.Steps[0].Expected)
}

func TestRunContinuesAfterRejection(t *testing.T) {
	s := &scenario.Scenario{
		Name:    "rejection-continues",
		Genesis: scenario.Genesis{Creator: "alice", Supply: 100},
		Steps: []scenario.Step{
			{Op: scenario.OpTransfer, From: "alice", To: "bob", Amount: 500,
				Expect: scenario.OutcomeInsufficientBalance},
			{Op: scenario.OpTransfer, From: "alice", To: "bob", Amount: 40},
		},
	}

	result, err := scenario.Run(s)
	require.NoError(t, err)

	require.True(t, result.Passed)
	require.Equal(t, uint64(60), result.Final.Balances["alice"])
	require.Equal(t, uint64(40), result.Final.Balances["bob"])
}

func TestRunRejectsInvalidScenario(t *testing.T) {
	s := &scenario.Scenario{Name: "empty"}

	_, err := scenario.Run(s)
	require.Error(t, err)
}

// countingHook tallies dispatched events without storing them.
type countingHook struct {
	seen int
}

func (h *countingHook) Name() string                     { return "counting-hook" }
func (h *countingHook) OnTransfer(audit.Event) error     { h.seen++; return nil }
func (h *countingHook) OnApprove(audit.Event) error      { h.seen++; return nil }
func (h *countingHook) OnTransferFrom(audit.Event) error { h.seen++; return nil }

func TestRunDispatchesToExtraHooks(t *testing.T) {
	extra := &countingHook{}

	result, err := scenario.Run(scenario.Demo(), extra)
	require.NoError(t, err)

	require.Equal(t, len(result.Trail), extra.seen)
}
