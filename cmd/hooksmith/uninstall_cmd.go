package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/hooksmith/internal/githook"
	"github.com/raphi011/hooksmith/internal/log"
	"github.com/raphi011/hooksmith/internal/output"
	"github.com/raphi011/hooksmith/internal/ui/prompt"
)

func newUninstallCmd() *cobra.Command {
	var (
		yes      bool
		dryRun   bool
		hooksDir string
	)

	cmd := &cobra.Command{
		Use:     "uninstall",
		Short:   "Remove all generated hooks",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Remove every hook script generated by hooksmith.

Hand-written hooks are never touched. On a terminal you are asked to
confirm unless --yes is given.`,
		Example: `  hooksmith uninstall            # Ask, then remove generated hooks
  hooksmith uninstall --yes      # Remove without asking
  hooksmith uninstall --dry-run  # List what would be removed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			t, err := resolveTarget(ctx, hooksDir)
			if err != nil {
				return err
			}

			managed, err := managedHooks(t.hooksDir)
			if err != nil {
				return err
			}
			if len(managed) == 0 {
				l.Println("No generated hooks to remove")
				return nil
			}

			if dryRun {
				for _, a := range managed {
					out.Printf("would remove %s (%s)\n", a.Event, a.Path)
				}
				return nil
			}

			if !yes && interactive() {
				res, err := prompt.Confirm(confirmText(len(managed)))
				if err != nil {
					return err
				}
				if !res.Confirmed {
					l.Println("Aborted")
					return nil
				}
			}

			res, err := githook.Uninstall(ctx, t.hooksDir)
			for _, e := range res.Removed {
				l.Printf("Removed %s\n", e)
			}
			return err
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "List hooks that would be removed")
	cmd.Flags().StringVar(&hooksDir, "hooks-dir", "", "Remove from this directory instead of git's hook dir")
	cmd.MarkFlagDirname("hooks-dir")

	return cmd
}

// managedHooks returns the remove actions of an empty configuration.
func managedHooks(dir string) ([]githook.Action, error) {
	actions, err := githook.Plan(dir, githook.Configuration{})
	if err != nil {
		return nil, err
	}
	var out []githook.Action
	for _, a := range actions {
		if a.Kind == githook.ActionRemove {
			out = append(out, a)
		}
	}
	return out, nil
}

func confirmText(n int) string {
	if n == 1 {
		return "Remove 1 generated hook?"
	}
	return fmt.Sprintf("Remove %d generated hooks?", n)
}

func interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stderr.Fd())
}
