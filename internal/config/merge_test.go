package config

import (
	"errors"
	"maps"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/hooksmith/internal/githook"
)

func TestMergeLocal_Nil(t *testing.T) {
	t.Parallel()

	global := &Config{Install: InstallConfig{FileMode: "0755"}}
	if result := MergeLocal(global, nil); result != global {
		t.Error("expected same pointer when local is nil")
	}
}

func TestMergeLocal_NoMutation(t *testing.T) {
	t.Parallel()

	global := &Config{
		Install: InstallConfig{FileMode: "0755"},
		Hooks:   map[string]string{"pre-commit": "make lint"},
	}
	local := &LocalConfig{
		Install: InstallConfig{FileMode: "0700"},
		Hooks:   map[string]string{"pre-commit": "", "pre-push": "make test"},
	}

	MergeLocal(global, local)

	if global.Install.FileMode != "0755" {
		t.Error("global install config was mutated")
	}
	if want := map[string]string{"pre-commit": "make lint"}; !maps.Equal(global.Hooks, want) {
		t.Errorf("global hooks mutated: %v", global.Hooks)
	}
}

func TestMergeLocal_Install(t *testing.T) {
	t.Parallel()

	global := &Config{Install: InstallConfig{FileMode: "0755", HooksDir: "/shared/hooks"}}

	t.Run("local overrides", func(t *testing.T) {
		t.Parallel()
		result := MergeLocal(global, &LocalConfig{Install: InstallConfig{FileMode: "0700", HooksDir: ".githooks"}})
		if result.Install.FileMode != "0700" {
			t.Errorf("file_mode = %q, want 0700", result.Install.FileMode)
		}
		if result.Install.HooksDir != ".githooks" {
			t.Errorf("hooks_dir = %q, want .githooks", result.Install.HooksDir)
		}
	})

	t.Run("empty inherits", func(t *testing.T) {
		t.Parallel()
		result := MergeLocal(global, &LocalConfig{})
		if result.Install != global.Install {
			t.Errorf("install = %+v, want %+v", result.Install, global.Install)
		}
	})
}

func TestMergeLocal_Hooks(t *testing.T) {
	t.Parallel()

	global := &Config{Hooks: map[string]string{
		"pre-commit": "make lint",
		"pre-push":   "make test",
		"post-merge": "npm ci",
	}}
	local := &LocalConfig{Hooks: map[string]string{
		"pre-commit": "golangci-lint run", // override
		"pre-push":   "",                  // disable
		"commit-msg": "./check \"$1\"",    // add
	}}

	result := MergeLocal(global, local)

	want := map[string]string{
		"pre-commit": "golangci-lint run",
		"post-merge": "npm ci",
		"commit-msg": "./check \"$1\"",
	}
	if !maps.Equal(result.Hooks, want) {
		t.Errorf("hooks = %v, want %v", result.Hooks, want)
	}
}

// A misspelled blank entry must not leave the global hook it meant to
// disable silently installed.
func TestMergeLocal_MisspelledDisable(t *testing.T) {
	t.Parallel()

	repo := t.TempDir()
	writeConfig(t, filepath.Join(repo, LocalConfigFileName), "[hooks]\npre-comit = \"\"\n")

	global := Default()
	global.Hooks = map[string]string{"pre-commit": "make test"}

	merged, err := NewResolver(&global).ConfigForRepo(repo)

	var unrecognized *githook.UnrecognizedEventError
	if !errors.As(err, &unrecognized) {
		t.Fatalf("ConfigForRepo() = %v, %v; want *UnrecognizedEventError", merged, err)
	}
	if got := unrecognized.Suggestions["pre-comit"]; len(got) == 0 || got[0] != "pre-commit" {
		t.Errorf("suggestions = %v, want pre-commit first", got)
	}
	if !strings.Contains(err.Error(), LocalConfigFileName) {
		t.Errorf("error %q does not name the local file", err)
	}
}
