package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/hooksmith/internal/githook"
	"github.com/raphi011/hooksmith/internal/log"
	"github.com/raphi011/hooksmith/internal/output"
	"github.com/raphi011/hooksmith/internal/ui/static"
)

type statusReport struct {
	RepoRoot string           `json:"repo_root"`
	HooksDir string           `json:"hooks_dir"`
	Hooks    []githook.Status `json:"hooks"`
}

func newStatusCmd() *cobra.Command {
	var (
		jsonOutput bool
		all        bool
		hooksDir   string
	)

	cmd := &cobra.Command{
		Use:     "status",
		Short:   "Show the state of each hook",
		Aliases: []string{"st"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Show the state of each hook event in the repository.

States:
  current    generated hook matches the configuration
  stale      generated hook differs from the configuration
  missing    configured but not installed
  orphaned   generated hook for an event that is no longer configured
  foreign    hand-written hook, not managed by hooksmith
  absent     neither configured nor present (shown with --all)`,
		Example: `  hooksmith status          # Configured and present hooks
  hooksmith status --all    # Every recognized event
  hooksmith status --json   # Machine-readable output`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			t, err := resolveTarget(ctx, hooksDir)
			if err != nil {
				return err
			}
			hooks, err := t.cfg.HookConfiguration()
			if err != nil {
				return err
			}

			statuses, err := githook.Inspect(t.hooksDir, hooks)
			if err != nil {
				return err
			}

			if jsonOutput {
				report := statusReport{RepoRoot: t.root, HooksDir: t.hooksDir, Hooks: []githook.Status{}}
				for _, s := range statuses {
					if all || s.State != githook.StateAbsent {
						report.Hooks = append(report.Hooks, s)
					}
				}
				return out.PrintJSON(report)
			}

			out.Print(static.RenderStatus(statuses, all))

			var pending int
			for _, s := range statuses {
				if s.NeedsInstall() {
					pending++
				}
			}
			if pending > 0 {
				log.FromContext(ctx).Printf("%d hook(s) out of date, run 'hooksmith install'\n", pending)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include events that are neither configured nor present")
	cmd.Flags().StringVar(&hooksDir, "hooks-dir", "", "Inspect this directory instead of git's hook dir")
	cmd.MarkFlagDirname("hooks-dir")

	return cmd
}
