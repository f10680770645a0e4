package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/hooksmith/internal/config"
	"github.com/raphi011/hooksmith/internal/git"
	"github.com/raphi011/hooksmith/internal/githook"
	"github.com/raphi011/hooksmith/internal/hooks"
	"github.com/raphi011/hooksmith/internal/log"
	"github.com/raphi011/hooksmith/internal/output"
	"github.com/raphi011/hooksmith/internal/ui/styles"
)

var (
	// Global flags
	verbose bool
	quiet   bool
)

// Command group IDs for organizing help output
const (
	GroupCore    = "core"
	GroupUtility = "utility"
	GroupConfig  = "config"
)

var rootCmd = &cobra.Command{
	Use:   "hooksmith",
	Short: "Install generated git hooks from configuration",
	Long: `hooksmith writes executable git hook scripts from a TOML configuration.

Generated hooks carry a marker line so hooksmith can update and remove them
later. Hand-written hooks for events you do not configure are left alone.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// flags are parsed by now, so the logger honours -v/-q
		cmd.SetContext(log.WithLogger(cmd.Context(), log.New(os.Stderr, verbose, quiet)))

		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}
		return git.CheckGit()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg := &loadedCfg

	workDir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hooksmith: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	styles.Init(cfg.Theme)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctx = config.WithConfig(ctx, cfg)
	ctx = config.WithResolver(ctx, config.NewResolver(cfg))
	ctx = config.WithWorkDir(ctx, workDir)
	ctx = log.WithLogger(ctx, log.New(os.Stderr, false, false))
	ctx = output.WithPrinter(ctx, output.NewStyled(os.Stdout, os.Environ()))

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		// a failing hook already reported on its own stderr
		var exitErr *hooks.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		printError(err)
		os.Exit(1)
	}
}

// printError writes err to stderr. Partial failures get one line per event.
func printError(err error) {
	var partial *githook.PartialFailureError
	if errors.As(err, &partial) {
		fmt.Fprintf(os.Stderr, "%s %d hook(s) could not be written:\n", styles.Fail(), len(partial.Failed))
		for _, e := range partial.Events() {
			fmt.Fprintf(os.Stderr, "  %s: %v\n", e, partial.Failed[e])
		}
		return
	}

	fmt.Fprintln(os.Stderr, err)

	var unrecognized *githook.UnrecognizedEventError
	if errors.As(err, &unrecognized) {
		fmt.Fprintln(os.Stderr, "\nRun 'hooksmith events' for the supported events")
		return
	}
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Run 'hooksmith -h' for help")
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show git commands and debug details")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress log output except warnings")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Core commands
	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newUninstallCmd())
	rootCmd.AddCommand(newStatusCmd())

	// Utility commands
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newEventsCmd())

	// Config commands
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newCompletionCmd())
}
