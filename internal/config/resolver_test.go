package config

import (
	"context"
	"path/filepath"
	"testing"
)

func TestResolver_ConfigForRepo(t *testing.T) {
	t.Parallel()

	global := Default()
	global.Hooks["pre-commit"] = "make lint"
	r := NewResolver(&global)

	t.Run("no local config returns global", func(t *testing.T) {
		t.Parallel()
		cfg, err := r.ConfigForRepo(t.TempDir())
		if err != nil {
			t.Fatalf("ConfigForRepo() error = %v", err)
		}
		if cfg != r.Global() {
			t.Error("expected the global config pointer")
		}
	})

	t.Run("local config is merged", func(t *testing.T) {
		t.Parallel()
		repo := t.TempDir()
		writeConfig(t, filepath.Join(repo, LocalConfigFileName), "[hooks]\npre-commit = \"\"\npre-push = \"make test\"\n")

		cfg, err := r.ConfigForRepo(repo)
		if err != nil {
			t.Fatalf("ConfigForRepo() error = %v", err)
		}
		if _, ok := cfg.Hooks["pre-commit"]; ok {
			t.Error("pre-commit should be disabled by local config")
		}
		if cfg.Hooks["pre-push"] != "make test" {
			t.Errorf("pre-push = %q", cfg.Hooks["pre-push"])
		}
	})
}

func TestResolver_Caches(t *testing.T) {
	t.Parallel()

	global := Default()
	r := NewResolver(&global)
	repo := t.TempDir()
	writeConfig(t, filepath.Join(repo, LocalConfigFileName), "[hooks]\npre-push = \"make test\"\n")

	first, err := r.ConfigForRepo(repo)
	if err != nil {
		t.Fatalf("ConfigForRepo() error = %v", err)
	}
	writeConfig(t, filepath.Join(repo, LocalConfigFileName), "[hooks]\npre-push = \"changed\"\n")
	second, err := r.ConfigForRepo(repo)
	if err != nil {
		t.Fatalf("ConfigForRepo() error = %v", err)
	}
	if first != second {
		t.Error("expected cached config on second call")
	}
}

func TestResolver_Context(t *testing.T) {
	t.Parallel()

	if ResolverFromContext(context.Background()) != nil {
		t.Error("expected nil resolver for empty context")
	}
	global := Default()
	r := NewResolver(&global)
	if ResolverFromContext(WithResolver(context.Background(), r)) != r {
		t.Error("resolver round trip failed")
	}
}

func TestContext_ConfigAndWorkDir(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if FromContext(ctx) != nil {
		t.Error("expected nil config for empty context")
	}
	if WorkDirFromContext(ctx) == "" {
		t.Error("expected os.Getwd fallback")
	}

	cfg := Default()
	ctx = WithWorkDir(WithConfig(ctx, &cfg), "/repo")
	if FromContext(ctx) != &cfg {
		t.Error("config round trip failed")
	}
	if got := WorkDirFromContext(ctx); got != "/repo" {
		t.Errorf("WorkDirFromContext() = %q, want /repo", got)
	}
}
