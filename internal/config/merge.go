package config

import (
	"maps"
	"strings"
)

// MergeLocal merges a local per-repo config into a global config,
// returning a new Config without mutating the global.
// Returns global unchanged if local is nil.
func MergeLocal(global *Config, local *LocalConfig) *Config {
	if local == nil {
		return global
	}

	merged := global.Clone()
	merged.Hooks = mergeHooks(global.Hooks, local.Hooks)

	if local.Install.FileMode != "" {
		merged.Install.FileMode = local.Install.FileMode
	}
	if local.Install.HooksDir != "" {
		merged.Install.HooksDir = local.Install.HooksDir
	}

	return merged
}

// mergeHooks overlays local hooks on global hooks by event name.
// A blank local command removes the global hook.
func mergeHooks(global, local map[string]string) map[string]string {
	merged := make(map[string]string, len(global)+len(local))
	maps.Copy(merged, global)

	for name, command := range local {
		if strings.TrimSpace(command) == "" {
			delete(merged, name)
			continue
		}
		merged[name] = command
	}

	return merged
}
