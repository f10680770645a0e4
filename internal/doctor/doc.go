// Package doctor diagnoses why configured git hooks might not run.
//
// Checks are grouped into categories:
//
//   - [CategoryEnv]: git is on PATH and the directory is inside a repository
//   - [CategoryConfig]: config files parse and only name recognized events
//   - [CategoryHooks]: the hook directory is usable, every configured hook
//     is installed, current and executable, no generated hook is left for an
//     unconfigured event, and git actually reads hooks from that directory
//
// Every [Issue] says whether install repairs it. [Run] with fix set runs
// the install for the repository afterwards.
package doctor
