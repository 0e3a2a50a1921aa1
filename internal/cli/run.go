package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/xraph/tokenledger/audit"
	"github.com/xraph/tokenledger/scenario"
)

// NewRunCommand creates the "run" command, which executes a scenario
// file against a fresh ledger.
func NewRunCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "run <scenario.yaml>",
		Short:         "Execute a ledger scenario file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.Load(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "load scenario", err)
			}
			return runScenario(cmd, opts, s)
		},
	}
}

// NewDemoCommand creates the "demo" command, which runs the built-in
// delegated-spend scenario.
func NewDemoCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "demo",
		Short:         "Run the built-in delegated-spend scenario",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd, opts, scenario.Demo())
		},
	}
}

func runScenario(cmd *cobra.Command, opts *RootOptions, s *scenario.Scenario) error {
	var hooks []audit.Hook
	if opts.Verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		hooks = append(hooks, audit.NewLogHook(logger))
	}

	result, err := scenario.Run(s, hooks...)
	if err != nil {
		return WrapExitError(ExitCommandError, "run scenario", err)
	}

	if err := writeResult(cmd.OutOrStdout(), opts.Format, result); err != nil {
		return WrapExitError(ExitCommandError, "write result", err)
	}

	if !result.Passed {
		return NewExitError(ExitFailure, "scenario failed")
	}
	return nil
}
