package styles

import (
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/hooksmith/internal/config"
)

func TestSelectTheme(t *testing.T) {
	t.Parallel()

	dark := func() bool { return true }
	light := func() bool { return false }

	tests := []struct {
		name   string
		cfg    config.ThemeConfig
		isDark func() bool
		want   Theme
	}{
		{"empty config", config.ThemeConfig{}, dark, DefaultTheme},
		{"dark only family on light terminal", config.ThemeConfig{Name: "dracula"}, light, DraculaTheme},
		{"auto dark", config.ThemeConfig{Name: "nord"}, dark, NordTheme},
		{"auto light", config.ThemeConfig{Name: "nord"}, light, NordLightTheme},
		{"forced light", config.ThemeConfig{Name: "gruvbox", Mode: "light"}, dark, GruvboxLightTheme},
		{"forced dark", config.ThemeConfig{Name: "gruvbox", Mode: "dark"}, light, GruvboxTheme},
		{"none", config.ThemeConfig{Name: "none"}, dark, NoneTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := selectTheme(tt.cfg, tt.isDark); got != tt.want {
				t.Errorf("selectTheme(%+v) = %+v, want %+v", tt.cfg, got, tt.want)
			}
		})
	}
}

func TestThemeFamilies_MatchConfig(t *testing.T) {
	t.Parallel()

	for _, name := range config.ValidThemeNames {
		if _, ok := themeFamilies[name]; !ok {
			t.Errorf("theme %q accepted by config has no palette", name)
		}
	}
	if len(themeFamilies) != len(config.ValidThemeNames) {
		t.Errorf("%d theme families, config accepts %d", len(themeFamilies), len(config.ValidThemeNames))
	}
}

func TestApplyTheme(t *testing.T) {
	applyTheme(DraculaTheme)
	t.Cleanup(func() { applyTheme(DefaultTheme) })

	if Primary != lipgloss.Color("#bd93f9") {
		t.Errorf("Primary = %v, want dracula purple", Primary)
	}
	if WarningStyle.GetForeground() != DraculaTheme.Warning {
		t.Errorf("WarningStyle foreground = %v, want %v", WarningStyle.GetForeground(), DraculaTheme.Warning)
	}
}
