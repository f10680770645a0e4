// Package cmd provides helpers for executing external commands.
//
// hooksmith shells out to the git CLI instead of using a Go git library so
// that repository discovery behaves exactly like the git that will later run
// the hooks (worktrees, submodules, core.hooksPath, safe.directory).
//
// # Usage
//
//	out, err := cmd.OutputContext(ctx, repoDir, "git", "rev-parse", "--git-path", "hooks")
//	if err != nil {
//	    // err carries git's stderr, e.g. "fatal: not a git repository"
//	}
//
// Commands are logged with their duration when the logger in ctx is verbose.
package cmd
