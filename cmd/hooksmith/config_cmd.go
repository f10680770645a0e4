package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/raphi011/hooksmith/internal/config"
	"github.com/raphi011/hooksmith/internal/git"
	"github.com/raphi011/hooksmith/internal/log"
	"github.com/raphi011/hooksmith/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage hooksmith configuration.

Global config: ~/.config/hooksmith/config.toml ($HOOKSMITH_CONFIG overrides)
Local config:  .hooksmith.toml (in the repository root)`,
		Example: `  hooksmith config init          # Create default global config
  hooksmith config init --local  # Create local repo config
  hooksmith config show          # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
		local  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Long: `Create default config file.

Without flags, creates the global config.
With --local, creates .hooksmith.toml in the current repository root.`,
		Example: `  hooksmith config init           # Create global config
  hooksmith config init --local   # Create local repo config
  hooksmith config init -f        # Overwrite existing config
  hooksmith config init -s        # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			content := config.DefaultConfig()
			if local {
				content = config.DefaultLocalConfig()
			}
			if stdout {
				out.Print(content)
				return nil
			}

			path, err := configInitPath(ctx, local)
			if err != nil {
				return err
			}
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
				}
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				return err
			}

			log.FromContext(ctx).Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")
	cmd.Flags().BoolVar(&local, "local", false, "Create per-repo .hooksmith.toml instead of global config")

	return cmd
}

func configInitPath(ctx context.Context, local bool) (string, error) {
	if !local {
		return config.GlobalPath()
	}
	workDir := config.WorkDirFromContext(ctx)
	root, err := git.TopLevel(ctx, workDir)
	if err != nil {
		return "", fmt.Errorf("%s is not inside a git work tree", workDir)
	}
	return filepath.Join(root, config.LocalConfigFileName), nil
}

// effectiveConfig is the JSON shape of config show.
type effectiveConfig struct {
	GlobalPath string            `json:"global_path,omitempty"`
	LocalPath  string            `json:"local_path,omitempty"`
	RepoRoot   string            `json:"repo_root,omitempty"`
	FileMode   string            `json:"file_mode"`
	HooksDir   string            `json:"hooks_dir,omitempty"`
	Hooks      map[string]string `json:"hooks"`
	Theme      string            `json:"theme,omitempty"`
	ThemeMode  string            `json:"theme_mode,omitempty"`
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show effective configuration.

Inside a repository the local .hooksmith.toml is merged over the global
config. Otherwise the global config is shown.`,
		Example: `  hooksmith config show         # Show config as TOML
  hooksmith config show --json  # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			resolver := resolverFromContext(ctx)

			cfg := resolver.Global()
			var repoRoot, localPath string

			workDir := config.WorkDirFromContext(ctx)
			if git.IsInsideRepoPath(ctx, workDir) {
				root, err := git.TopLevel(ctx, workDir)
				if err != nil {
					return err
				}
				merged, err := resolver.ConfigForRepo(root)
				if err != nil {
					return err
				}
				repoRoot, cfg = root, merged
				if p := filepath.Join(root, config.LocalConfigFileName); fileExists(p) {
					localPath = p
				}
			}

			if jsonOutput {
				return out.PrintJSON(effectiveConfig{
					GlobalPath: resolver.Global().Path,
					LocalPath:  localPath,
					RepoRoot:   repoRoot,
					FileMode:   cfg.Install.FileMode,
					HooksDir:   cfg.Install.HooksDir,
					Hooks:      cfg.Hooks,
					Theme:      cfg.Theme.Name,
					ThemeMode:  cfg.Theme.Mode,
				})
			}

			if p := resolver.Global().Path; p != "" {
				out.Printf("# global: %s\n", p)
			}
			if localPath != "" {
				out.Printf("# local:  %s\n", localPath)
			}
			return toml.NewEncoder(out.Writer()).Encode(cfg)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
