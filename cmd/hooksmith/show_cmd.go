package main

import (
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/hooksmith/internal/githook"
	"github.com/raphi011/hooksmith/internal/log"
	"github.com/raphi011/hooksmith/internal/output"
)

func newShowCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:               "show <event>",
		Short:             "Print the generated script for an event",
		GroupID:           GroupUtility,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeEvent,
		Example: `  hooksmith show pre-commit
  hooksmith show pre-push --copy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			t, err := resolveTarget(ctx, "")
			if err != nil {
				return err
			}
			event, command, err := configuredEvent(t, args[0])
			if err != nil {
				return err
			}

			script := githook.Render(event, command)

			if copyToClipboard {
				if err := clipboard.WriteAll(string(script)); err != nil {
					log.FromContext(ctx).Printf("Warning: failed to copy to clipboard: %v\n", err)
				}
			}

			out.Print(string(script))
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy script to clipboard")

	return cmd
}
