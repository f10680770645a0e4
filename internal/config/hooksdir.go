package config

import (
	"context"

	"github.com/raphi011/hooksmith/internal/git"
)

// HooksDir returns the directory hooks are installed into for the repository
// at repoRoot: install.hooks_dir when configured, otherwise the directory
// git runs hooks from (honoring core.hooksPath and linked worktrees).
func (c *Config) HooksDir(ctx context.Context, repoRoot string) (string, error) {
	dir, err := c.ResolveHooksDir(repoRoot)
	if err != nil || dir != "" {
		return dir, err
	}
	return git.HooksDir(ctx, repoRoot)
}
