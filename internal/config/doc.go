// Package config handles loading and validation of hooksmith configuration.
//
// Configuration is read from a global TOML file and an optional per-repo
// .hooksmith.toml at the repository top level. The two are merged by
// [Resolver].
//
// # Configuration Sources (highest priority first)
//
//   - --hooks-dir flag (install/uninstall/status only)
//   - .hooksmith.toml in the repository root
//   - HOOKSMITH_CONFIG env var: path of the global config file
//   - ~/.config/hooksmith/config.toml
//   - Default values
//
// # Hooks
//
// The [hooks] table maps git hook event names to the command line the
// generated script runs:
//
//	[hooks]
//	pre-commit = "make test"
//	pre-push = "make lint"
//
// A local entry replaces the global entry of the same name. A local empty
// string disables a global hook for that repository.
//
// # Install Settings
//
//	[install]
//	file_mode = "0755"   # octal, must include owner execute
//	hooks_dir = ".githooks"
//
// hooks_dir overrides the directory resolved through git. Relative paths are
// resolved against the repository root, ~ is expanded.
package config
