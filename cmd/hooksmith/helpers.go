package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raphi011/hooksmith/internal/config"
	"github.com/raphi011/hooksmith/internal/git"
	"github.com/raphi011/hooksmith/internal/githook"
	"github.com/raphi011/hooksmith/internal/log"
)

// repoTarget is the repository a command operates on and its effective
// hook settings.
type repoTarget struct {
	root     string
	cfg      *config.Config
	hooksDir string
}

// resolveTarget finds the repository containing the working directory and
// loads its merged config. A non-empty hooksDirFlag replaces the configured
// or git-reported hook directory and is resolved against the working dir.
func resolveTarget(ctx context.Context, hooksDirFlag string) (*repoTarget, error) {
	workDir := config.WorkDirFromContext(ctx)

	root, err := git.TopLevel(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("%s is not inside a git work tree", workDir)
	}

	cfg, err := resolverFromContext(ctx).ConfigForRepo(root)
	if err != nil {
		return nil, err
	}

	var dir string
	if hooksDirFlag != "" {
		dir = hooksDirFlag
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(workDir, dir)
		}
		dir = filepath.Clean(dir)
	} else {
		dir, err = cfg.HooksDir(ctx, root)
		if err != nil {
			return nil, err
		}
	}

	log.FromContext(ctx).Debug("resolved target", "repo", root, "hooksDir", dir)
	return &repoTarget{root: root, cfg: cfg, hooksDir: dir}, nil
}

// hooks returns the validated hook configuration and install mode.
func (t *repoTarget) hooks() (githook.Configuration, os.FileMode, error) {
	hooks, err := t.cfg.HookConfiguration()
	if err != nil {
		return nil, 0, err
	}
	mode, err := t.cfg.FileMode()
	if err != nil {
		return nil, 0, err
	}
	return hooks, mode, nil
}

// ensureHooksDir creates the hook directory when hooks are configured.
// Git does not create it for repositories cloned without templates.
func (t *repoTarget) ensureHooksDir(hooks githook.Configuration) error {
	if len(hooks) == 0 {
		return nil
	}
	if err := os.MkdirAll(t.hooksDir, 0o755); err != nil {
		return fmt.Errorf("create hooks dir: %w", err)
	}
	return nil
}

func resolverFromContext(ctx context.Context) *config.Resolver {
	if r := config.ResolverFromContext(ctx); r != nil {
		return r
	}
	cfg := config.FromContext(ctx)
	if cfg == nil {
		d := config.Default()
		cfg = &d
	}
	return config.NewResolver(cfg)
}

// completeEvent completes a single hook event name.
func completeEvent(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return githook.EventNames(), cobra.ShellCompDirectiveNoFileComp
}

// configuredEvent parses name and returns the command configured for it.
func configuredEvent(t *repoTarget, name string) (githook.Event, string, error) {
	e, err := githook.ParseEvent(name)
	if err != nil {
		return "", "", err
	}
	hooks, err := t.cfg.HookConfiguration()
	if err != nil {
		return "", "", err
	}
	command, ok := hooks.Command(e)
	if !ok {
		return "", "", fmt.Errorf("no command configured for %s", e)
	}
	return e, command, nil
}
