package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/hooksmith/internal/githook"
	"github.com/raphi011/hooksmith/internal/log"
	"github.com/raphi011/hooksmith/internal/output"
	"github.com/raphi011/hooksmith/internal/ui/static"
)

func newInstallCmd() *cobra.Command {
	var (
		dryRun   bool
		hooksDir string
	)

	cmd := &cobra.Command{
		Use:     "install",
		Short:   "Write configured hooks into the repository",
		Aliases: []string{"i"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Write a generated script for every configured hook event.

Generated scripts for events that are no longer configured are removed.
Hand-written hooks are kept unless the same event is configured, in which
case they are replaced and a warning is printed.

Running install twice with the same configuration changes nothing.`,
		Example: `  hooksmith install                      # Install into git's hook dir
  hooksmith install --dry-run            # Show what would change
  hooksmith install --hooks-dir .githooks`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			t, err := resolveTarget(ctx, hooksDir)
			if err != nil {
				return err
			}
			hooks, mode, err := t.hooks()
			if err != nil {
				return err
			}

			if dryRun {
				return printPlan(ctx, t.hooksDir, hooks)
			}

			if err := t.ensureHooksDir(hooks); err != nil {
				return err
			}
			res, err := githook.Install(ctx, t.hooksDir, hooks, githook.WithMode(mode))
			var partial *githook.PartialFailureError
			if err == nil || errors.As(err, &partial) {
				printResult(ctx, t.hooksDir, res)
			}
			return err
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Show planned changes without writing")
	cmd.Flags().StringVar(&hooksDir, "hooks-dir", "", "Install into this directory instead of git's hook dir")
	cmd.MarkFlagDirname("hooks-dir")

	return cmd
}

// printPlan prints the actions install would take. A missing hook dir is
// not an error here since install creates it.
func printPlan(ctx context.Context, dir string, hooks githook.Configuration) error {
	out := output.FromContext(ctx)

	actions, err := githook.Plan(dir, hooks)
	if err != nil {
		return err
	}

	var rows [][]string
	for _, a := range actions {
		if a.Kind == githook.ActionNone {
			continue
		}
		detail := a.Command
		if a.Err != nil {
			detail = a.Err.Error()
		}
		rows = append(rows, []string{string(a.Event), string(a.Kind), detail})
	}

	if len(rows) == 0 {
		out.Println("Nothing to do")
		return nil
	}
	out.Print(static.RenderTable([]string{"EVENT", "ACTION", "COMMAND"}, rows))
	return nil
}

func printResult(ctx context.Context, dir string, res githook.Result) {
	l := log.FromContext(ctx)

	for _, e := range res.Installed {
		l.Printf("Installed %s\n", e)
	}
	for _, e := range res.Removed {
		l.Printf("Removed %s\n", e)
	}
	for _, e := range res.Preserved {
		l.Printf("Kept hand-written %s\n", e)
	}
	l.Println(summary(dir, res))
}

func summary(dir string, res githook.Result) string {
	return fmt.Sprintf("%d installed, %d removed in %s", len(res.Installed), len(res.Removed), dir)
}
