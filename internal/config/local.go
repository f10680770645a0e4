package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalConfig holds per-repo overrides from .hooksmith.toml.
// Empty strings in Install mean "inherit from global".
type LocalConfig struct {
	Install InstallConfig     `toml:"install"`
	Hooks   map[string]string `toml:"hooks"` // "" disables a global hook

	Path string `toml:"-"`
}

// LoadLocal reads a per-repo .hooksmith.toml from the given repo root.
// Returns nil (no error) if the file doesn't exist.
// Returns an error only on parse or validation failure.
func LoadLocal(repoPath string) (*LocalConfig, error) {
	configFile := filepath.Join(repoPath, LocalConfigFileName)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	var local LocalConfig
	if err := toml.Unmarshal(data, &local); err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}

	if err := validateInstall(local.Install, configFile); err != nil {
		return nil, err
	}
	if err := validateHookNames(local.Hooks, configFile); err != nil {
		return nil, err
	}

	local.Path = configFile
	return &local, nil
}

// defaultLocalConfig is the template for hooksmith config init --local
const defaultLocalConfig = `# hooksmith local config (per-repo overrides)
# Place this file at the root of your repository and commit it.
# Settings here override the global config for this repo only.

# [install]
# file_mode = "0755"
# hooks_dir = ".githooks"

# Hooks - add repo-specific hooks or override global ones.
# Set an event to "" to disable a global hook for this repo.
[hooks]
# pre-commit = "make test"
# pre-push = ""
`

// DefaultLocalConfig returns the default local configuration template content.
func DefaultLocalConfig() string {
	return defaultLocalConfig
}
