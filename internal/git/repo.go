package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
)

// TopLevel returns the absolute path of the work tree containing dir.
func TopLevel(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("resolve repository root: %w", err)
	}
	return filepath.Clean(out), nil
}

// CommonDir returns the absolute path of the repository's common git
// directory. For a linked worktree this is the main repository's .git.
func CommonDir(ctx context.Context, dir string) (string, error) {
	p, err := absGitPath(ctx, dir, "--git-common-dir")
	if err != nil {
		return "", fmt.Errorf("resolve git common dir: %w", err)
	}
	return p, nil
}

// HooksDir returns the absolute path of the directory git searches for hook
// scripts. It honours core.hooksPath and resolves to the common git directory
// for linked worktrees.
func HooksDir(ctx context.Context, dir string) (string, error) {
	p, err := absGitPath(ctx, dir, "--git-path", "hooks")
	if err != nil {
		return "", fmt.Errorf("resolve hooks dir: %w", err)
	}
	return p, nil
}

// HooksPathConfig returns the configured core.hooksPath, or "" when unset.
func HooksPathConfig(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "config", "--get", "core.hooksPath")
	if err != nil {
		// git config exits 1 without output when the key is unset
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", nil
		}
		return "", fmt.Errorf("read core.hooksPath: %w", err)
	}
	return out, nil
}

// absGitPath runs rev-parse with --path-format=absolute, falling back to
// resolving the relative output against dir for gits older than 2.31.
func absGitPath(ctx context.Context, dir string, args ...string) (string, error) {
	out, err := outputGit(ctx, dir, append([]string{"rev-parse", "--path-format=absolute"}, args...)...)
	if err == nil {
		return filepath.Clean(out), nil
	}

	out, fallbackErr := outputGit(ctx, dir, append([]string{"rev-parse"}, args...)...)
	if fallbackErr != nil {
		return "", fallbackErr
	}
	if filepath.IsAbs(out) {
		return filepath.Clean(out), nil
	}
	base := dir
	if base == "" {
		base = "."
	}
	abs, err := filepath.Abs(filepath.Join(base, out))
	if err != nil {
		return "", err
	}
	return abs, nil
}
