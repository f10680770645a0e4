// Package git resolves repository locations through the git CLI.
//
// All operations shell out to git (via the cmd package) rather than reading
// .git by hand, so that linked worktrees, submodules and core.hooksPath are
// resolved exactly the way git itself resolves them when it runs a hook.
//
//   - [CheckGit]: git must be on PATH
//   - [TopLevel], [CommonDir]: repository locations
//   - [HooksDir]: the directory git searches for hook scripts
//   - [HooksPathConfig]: the raw core.hooksPath setting, if any
package git
