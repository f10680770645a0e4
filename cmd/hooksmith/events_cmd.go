package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/hooksmith/internal/githook"
	"github.com/raphi011/hooksmith/internal/output"
)

func newEventsCmd() *cobra.Command {
	var configured bool

	cmd := &cobra.Command{
		Use:     "events",
		Short:   "List supported hook events",
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		Long: `List the git hook events hooksmith can install, in the order they are
processed. With --configured, list only events configured for the current
repository together with their command.`,
		Example: `  hooksmith events
  hooksmith events --configured`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			if !configured {
				for _, name := range githook.EventNames() {
					out.Println(name)
				}
				return nil
			}

			t, err := resolveTarget(ctx, "")
			if err != nil {
				return err
			}
			hooks, err := t.cfg.HookConfiguration()
			if err != nil {
				return err
			}
			for _, e := range hooks.Events() {
				command, _ := hooks.Command(e)
				out.Printf("%s\t%s\n", e, command)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&configured, "configured", "c", false, "Only events configured for this repository")

	return cmd
}
