package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xraph/tokenledger/scenario"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestDemoCommand(t *testing.T) {
	out, err := execute(t, "demo")
	require.NoError(t, err)

	require.Contains(t, out, "scenario: delegated-spend")
	require.Contains(t, out, "transfer_from")
	require.Contains(t, out, "balance alice: 640")
	require.Contains(t, out, "allowance alice -> carol: 40")
	require.Contains(t, out, "result: PASS")
}

func TestDemoCommandJSON(t *testing.T) {
	out, err := execute(t, "demo", "--format", "json")
	require.NoError(t, err)

	var result scenario.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Equal(t, "delegated-spend", result.Scenario)
	require.True(t, result.Passed)
	require.Len(t, result.Steps, 4)
	require.Len(t, result.Trail, 4)
}

func TestRunCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: simple-transfer
genesis:
  creator: alice
  supply: 100
steps:
  - op: transfer
    from: alice
    to: bob
    amount: 30
`), 0o644))

	out, err := execute(t, "run", path)
	require.NoError(t, err)
	require.Contains(t, out, "scenario: simple-transfer")
	require.Contains(t, out, "balance bob: 30")
	require.Contains(t, out, "result: PASS")
}

func TestRunCommandScenarioFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: wrong-expectation
genesis:
  creator: alice
  supply: 100
steps:
  - op: transfer
    from: alice
    to: bob
    amount: 30
    expect: insufficient_balance
`), 0o644))

	out, err := execute(t, "run", path)
	require.Error(t, err)
	require.Equal(t, ExitFailure, GetExitCode(err))
	require.Contains(t, out, "MISMATCH")
	require.Contains(t, out, "result: FAIL")
}

func TestRunCommandMissingFile(t *testing.T) {
	_, err := execute(t, "run", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRunCommandRequiresArgument(t *testing.T) {
	_, err := execute(t, "run")
	require.Error(t, err)
}

func TestInvalidFormat(t *testing.T) {
	_, err := execute(t, "demo", "--format", "xml")
	require.Error(t, err)
	require.Contains(t, err.Error(), `invalid format "xml"`)
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"exit error failure", NewExitError(ExitFailure, "failed"), ExitFailure},
		{"exit error command", NewExitError(ExitCommandError, "bad input"), ExitCommandError},
		{"wrapped exit error", fmt.Errorf("outer: %w", NewExitError(ExitCommandError, "inner")), ExitCommandError},
		{"plain error", errors.New("plain"), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}

func TestExitErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := WrapExitError(ExitCommandError, "load scenario", inner)

	require.ErrorIs(t, err, inner)
	require.Contains(t, err.Error(), "load scenario")
	require.Contains(t, err.Error(), "inner")
}
