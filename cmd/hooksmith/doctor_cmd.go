package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/hooksmith/internal/config"
	"github.com/raphi011/hooksmith/internal/doctor"
)

func newDoctorCmd() *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   "Diagnose the hook setup of the repository",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Check the environment, configuration and installed hooks.

Checks:
  env      git is available and the working directory is a repository
  config   global and local config parse, event names are recognized
  hooks    hook dir is writable and used by git, hooks are current

Use --fix to run install and repair missing, stale and orphaned hooks.`,
		Example: `  hooksmith doctor        # Report problems
  hooksmith doctor --fix  # Report and repair`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			report, err := doctor.Run(ctx, config.WorkDirFromContext(ctx), resolverFromContext(ctx), fix)
			if err != nil {
				return err
			}
			if report.HasErrors() {
				return fmt.Errorf("doctor found %d issue(s)", len(report.Issues))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Repair issues by running install")

	return cmd
}
