package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/hooksmith/internal/githook"
)

// LocalConfigFileName is the per-repo config file at the repository root.
const LocalConfigFileName = ".hooksmith.toml"

// ConfigEnvVar overrides the location of the global config file.
const ConfigEnvVar = "HOOKSMITH_CONFIG"

// DefaultFileMode is applied to generated hooks when file_mode is unset.
const DefaultFileMode = "0755"

// InstallConfig holds settings for writing hook files.
type InstallConfig struct {
	FileMode string `toml:"file_mode"` // octal permission bits, e.g. "0755"
	HooksDir string `toml:"hooks_dir"` // optional override of the git hooks dir
}

// ThemeConfig selects the colors of terminal output.
type ThemeConfig struct {
	Name string `toml:"name"` // one of ValidThemeNames, default "default"
	Mode string `toml:"mode"` // one of ValidThemeModes, default "auto"
}

// ValidThemeNames lists the available theme families.
var ValidThemeNames = []string{"none", "default", "dracula", "nord", "gruvbox"}

// ValidThemeModes lists the accepted theme.mode values.
var ValidThemeModes = []string{"auto", "light", "dark"}

// Config holds the hooksmith configuration
type Config struct {
	Install InstallConfig     `toml:"install"`
	Hooks   map[string]string `toml:"hooks"` // event name -> command line
	Theme   ThemeConfig       `toml:"theme"`

	Path string `toml:"-"` // file the config was loaded from, empty for defaults
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Install: InstallConfig{FileMode: DefaultFileMode},
		Hooks:   map[string]string{},
	}
}

// FileMode returns the parsed install.file_mode, or 0755 when unset.
func (c *Config) FileMode() (os.FileMode, error) {
	if c.Install.FileMode == "" {
		return 0o755, nil
	}
	return ParseFileMode(c.Install.FileMode)
}

// HookConfiguration validates the [hooks] table and returns it as a
// githook.Configuration. Unknown event names produce a
// *githook.UnrecognizedEventError.
func (c *Config) HookConfiguration() (githook.Configuration, error) {
	return githook.NewConfiguration(c.Hooks)
}

// ResolveHooksDir returns install.hooks_dir made absolute against repoRoot,
// or "" when no override is configured.
func (c *Config) ResolveHooksDir(repoRoot string) (string, error) {
	if c.Install.HooksDir == "" {
		return "", nil
	}
	p, err := expandPath(c.Install.HooksDir)
	if err != nil {
		return "", fmt.Errorf("expand install.hooks_dir: %w", err)
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(repoRoot, p)
	}
	return filepath.Clean(p), nil
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	out := *c
	out.Hooks = maps.Clone(c.Hooks)
	if out.Hooks == nil {
		out.Hooks = map[string]string{}
	}
	return &out
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// ParseFileMode parses an octal permission string such as "0755" or "755".
func ParseFileMode(s string) (os.FileMode, error) {
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid file_mode %q: must be octal like \"0755\"", s)
	}
	return os.FileMode(v), nil
}

// GlobalPath returns the path of the global config file.
func GlobalPath() (string, error) {
	if p := os.Getenv(ConfigEnvVar); p != "" {
		return expandPath(p)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "hooksmith", "config.toml"), nil
}

// Load reads the global config file.
// Returns Default() if the file doesn't exist (no error).
func Load() (Config, error) {
	path, err := GlobalPath()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates the config file at path.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if cfg.Hooks == nil {
		cfg.Hooks = map[string]string{}
	}
	if cfg.Install.FileMode == "" {
		cfg.Install.FileMode = DefaultFileMode
	}

	if err := validateInstall(cfg.Install, path); err != nil {
		return Default(), err
	}
	if err := validateTheme(cfg.Theme, path); err != nil {
		return Default(), err
	}

	cfg.Path = path
	return cfg, nil
}

// defaultConfig is the template for hooksmith config init
const defaultConfig = `# hooksmith configuration
# See: hooksmith config --help

# Install settings
[install]
# Permission bits for generated hook scripts (octal, must include owner execute)
file_mode = "0755"

# Install into this directory instead of the one git reports
# (relative paths are resolved against the repository root)
# hooks_dir = ".githooks"

# Hooks: git hook event -> command line run by the generated script.
# Run "hooksmith events" for the list of supported events.
# Arguments git passes to the hook are available as "$1", "$2", ...
[hooks]
# pre-commit = "make test"
# commit-msg = "./scripts/check-message \"$1\""
# pre-push = "make lint"

# Colors of status tables and prompts
[theme]
# name = "default"  # none, default, dracula, nord, gruvbox
# mode = "auto"     # auto, light, dark
`

// DefaultConfig returns the default global configuration template content.
func DefaultConfig() string {
	return defaultConfig
}
