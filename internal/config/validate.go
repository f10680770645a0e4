package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/raphi011/hooksmith/internal/githook"
)

// validateInstall checks install settings from the file at source.
func validateInstall(ic InstallConfig, source string) error {
	if ic.FileMode != "" {
		mode, err := ParseFileMode(ic.FileMode)
		if err != nil {
			return fmt.Errorf("%w in %s", err, source)
		}
		if mode&^0o777 != 0 {
			return fmt.Errorf("invalid file_mode %q in %s: only permission bits (0-0777) are allowed", ic.FileMode, source)
		}
		if mode&0o100 == 0 {
			return fmt.Errorf("invalid file_mode %q in %s: owner execute bit is required for git to run hooks", ic.FileMode, source)
		}
	}
	if strings.ContainsRune(ic.HooksDir, 0) {
		return fmt.Errorf("invalid hooks_dir %q in %s", ic.HooksDir, source)
	}
	return nil
}

// validateTheme checks theme settings from the file at source.
func validateTheme(tc ThemeConfig, source string) error {
	if tc.Name != "" && !slices.Contains(ValidThemeNames, tc.Name) {
		return fmt.Errorf("invalid theme.name %q in %s (must be one of: %s)", tc.Name, source, strings.Join(ValidThemeNames, ", "))
	}
	if tc.Mode != "" && !slices.Contains(ValidThemeModes, tc.Mode) {
		return fmt.Errorf("invalid theme.mode %q in %s (must be one of: %s)", tc.Mode, source, strings.Join(ValidThemeModes, ", "))
	}
	return nil
}

// validateHookNames rejects unknown event names from the file at source,
// including blank entries that would otherwise be dropped unchecked.
func validateHookNames(hooks map[string]string, source string) error {
	if _, err := githook.NewConfiguration(hooks); err != nil {
		return fmt.Errorf("%w in %s", err, source)
	}
	return nil
}
