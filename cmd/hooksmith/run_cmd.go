package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/raphi011/hooksmith/internal/hooks"
	"github.com/raphi011/hooksmith/internal/log"
	"github.com/raphi011/hooksmith/internal/output"
)

func newRunCmd() *cobra.Command {
	var (
		env    []string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:               "run <event> [-- args...]",
		Short:             "Run a configured hook command now",
		GroupID:           GroupUtility,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeEvent,
		Long: `Run the command configured for an event the way the generated hook would.

The command runs through "sh -c" in the repository root. Arguments after --
become the positional parameters $1, $2, ... just like the arguments git
passes to the hook. Use --env KEY=- to read a value from stdin.`,
		Example: `  hooksmith run pre-commit
  hooksmith run commit-msg -- .git/COMMIT_EDITMSG
  hooksmith run pre-push --env REMOTE=origin
  hooksmith run pre-commit -d          # Print the command only`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if dash := cmd.ArgsLenAtDash(); dash > 1 || (dash == -1 && len(args) > 1) {
				return errors.New("hook arguments must follow --")
			}

			t, err := resolveTarget(ctx, "")
			if err != nil {
				return err
			}
			event, command, err := configuredEvent(t, args[0])
			if err != nil {
				return err
			}

			hookEnv, err := hooks.ParseEnv(env, cmd.InOrStdin())
			if err != nil {
				return err
			}

			log.FromContext(ctx).Debug("running hook", "event", event, "args", args[1:], "dryRun", dryRun)

			return hooks.Run(ctx, hooks.Context{
				Event:   event,
				Command: command,
				Args:    args[1:],
				Dir:     t.root,
				Env:     hookEnv,
				DryRun:  dryRun,
				Stdin:   cmd.InOrStdin(),
				Stdout:  output.FromContext(ctx).Writer(),
				Stderr:  cmd.ErrOrStderr(),
			})
		},
	}

	cmd.Flags().StringArrayVarP(&env, "env", "e", nil, "Set environment variable KEY=VALUE (KEY=- reads stdin)")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Print command without executing")
	cmd.RegisterFlagCompletionFunc("env", cobra.NoFileCompletions)

	return cmd
}
