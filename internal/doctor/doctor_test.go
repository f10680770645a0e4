package doctor

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/hooksmith/internal/config"
	"github.com/raphi011/hooksmith/internal/githook"
	"github.com/raphi011/hooksmith/internal/output"
)

// initRepo creates an empty git repository with an optional local config.
func initRepo(t *testing.T, localConfig string) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	c := exec.Command("git", "init", "-q")
	c.Dir = dir
	if out, err := c.CombinedOutput(); err != nil {
		t.Fatalf("git init: %v\n%s", err, out)
	}
	if localConfig != "" {
		if err := os.WriteFile(filepath.Join(dir, config.LocalConfigFileName), []byte(localConfig), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func newResolver() *config.Resolver {
	global := config.Default()
	return config.NewResolver(&global)
}

func findIssue(r *Report, c IssueCategory, e githook.Event) (Issue, bool) {
	for _, i := range r.ByCategory(c) {
		if i.Event == e {
			return i, true
		}
	}
	return Issue{}, false
}

func TestCheck_NotARepo(t *testing.T) {
	t.Parallel()

	r, err := Check(context.Background(), t.TempDir(), newResolver())
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if !r.HasErrors() {
		t.Fatal("expected an error outside a repository")
	}
	if issues := r.ByCategory(CategoryEnv); len(issues) != 1 || !strings.Contains(issues[0].Description, "not inside a git work tree") {
		t.Errorf("env issues = %+v", issues)
	}
	if len(r.ByCategory(CategoryHooks)) != 0 {
		t.Error("hook checks should be skipped outside a repository")
	}
}

func TestCheck_UnrecognizedEvent(t *testing.T) {
	t.Parallel()
	repo := initRepo(t, "[hooks]\npre-comit = \"make lint\"\n")

	r, err := Check(context.Background(), repo, newResolver())
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	issues := r.ByCategory(CategoryConfig)
	if len(issues) != 1 || issues[0].Severity != SeverityError {
		t.Fatalf("config issues = %+v, want one error", issues)
	}
	if !strings.Contains(issues[0].Description, `did you mean "pre-commit"?`) {
		t.Errorf("description = %q, want suggestion", issues[0].Description)
	}
}

func TestCheck_NoHooksConfigured(t *testing.T) {
	t.Parallel()
	repo := initRepo(t, "")

	r, err := Check(context.Background(), repo, newResolver())
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if r.HasErrors() {
		t.Errorf("unexpected errors: %+v", r.Issues)
	}
	issues := r.ByCategory(CategoryConfig)
	if len(issues) != 1 || issues[0].Severity != SeverityWarning {
		t.Errorf("config issues = %+v, want one warning", issues)
	}
}

func TestCheck_HookStates(t *testing.T) {
	t.Parallel()
	repo := initRepo(t, "[hooks]\npre-commit = \"make lint\"\npre-push = \"make test\"\n")
	hooksDir := filepath.Join(repo, ".git", "hooks")

	// pre-push: stale, post-merge: orphaned, post-checkout: hand-written and unconfigured
	writeHook(t, filepath.Join(hooksDir, "pre-push"), githook.Render(githook.PrePush, "old"))
	writeHook(t, filepath.Join(hooksDir, "post-merge"), githook.Render(githook.PostMerge, "npm ci"))
	writeHook(t, filepath.Join(hooksDir, "post-checkout"), []byte("#!/bin/sh\necho mine\n"))

	r, err := Check(context.Background(), repo, newResolver())
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if r.HooksDir != hooksDir {
		t.Errorf("HooksDir = %q, want %q", r.HooksDir, hooksDir)
	}

	tests := []struct {
		event    githook.Event
		severity Severity
	}{
		{githook.PreCommit, SeverityError},
		{githook.PrePush, SeverityWarning},
		{githook.PostMerge, SeverityWarning},
	}
	for _, tt := range tests {
		issue, ok := findIssue(r, CategoryHooks, tt.event)
		if !ok {
			t.Errorf("no issue for %s", tt.event)
			continue
		}
		if issue.Severity != tt.severity {
			t.Errorf("%s severity = %s, want %s", tt.event, issue.Severity, tt.severity)
		}
		if !issue.Fixable() {
			t.Errorf("%s issue should be fixable", tt.event)
		}
	}
	if _, ok := findIssue(r, CategoryHooks, githook.PostCheckout); ok {
		t.Error("hand-written hook of an unconfigured event reported")
	}
}

func TestCheck_HooksDirNotUsedByGit(t *testing.T) {
	t.Parallel()
	repo := initRepo(t, "[install]\nhooks_dir = \".githooks\"\n\n[hooks]\npre-commit = \"make lint\"\n")

	r, err := Check(context.Background(), repo, newResolver())
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}

	var found bool
	for _, i := range r.ByCategory(CategoryHooks) {
		if strings.Contains(i.Description, "git config core.hooksPath") {
			found = true
			if i.Fixable() {
				t.Error("core.hooksPath mismatch should need manual action")
			}
		}
	}
	if !found {
		t.Errorf("no core.hooksPath hint in %+v", r.Issues)
	}
}

func TestRun_Fix(t *testing.T) {
	t.Parallel()
	repo := initRepo(t, "[hooks]\npre-commit = \"make lint\"\n")
	hooksDir := filepath.Join(repo, ".git", "hooks")
	writeHook(t, filepath.Join(hooksDir, "post-merge"), githook.Render(githook.PostMerge, "npm ci"))

	var buf bytes.Buffer
	ctx := output.WithPrinter(context.Background(), output.New(&buf))

	r, err := Run(ctx, repo, newResolver(), true)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(r.Issues) != 0 {
		t.Errorf("issues after fix = %+v", r.Issues)
	}
	if r.Fixed == nil || !r.Fixed.Installed.Contains(githook.PreCommit) || !r.Fixed.Removed.Contains(githook.PostMerge) {
		t.Errorf("Fixed = %+v", r.Fixed)
	}

	statuses, err := githook.Inspect(hooksDir, githook.Configuration{githook.PreCommit: "make lint"})
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range statuses {
		if s.Event == githook.PreCommit && s.State != githook.StateCurrent {
			t.Errorf("pre-commit state after fix = %s", s.State)
		}
		if s.Event == githook.PostMerge && s.State != githook.StateAbsent {
			t.Errorf("post-merge state after fix = %s", s.State)
		}
	}
	if !strings.Contains(buf.String(), "No issues found") {
		t.Errorf("output = %q, want success line", buf.String())
	}
}

func TestRun_WithoutFixSuggestsFix(t *testing.T) {
	t.Parallel()
	repo := initRepo(t, "[hooks]\npre-commit = \"make lint\"\n")

	var buf bytes.Buffer
	ctx := output.WithPrinter(context.Background(), output.New(&buf))

	r, err := Run(ctx, repo, newResolver(), false)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(r.Fixable()) == 0 {
		t.Fatal("expected fixable issues")
	}
	if !strings.Contains(buf.String(), "hooksmith doctor --fix") {
		t.Errorf("output = %q, want fix hint", buf.String())
	}
	if _, err := os.Stat(filepath.Join(repo, ".git", "hooks", "pre-commit")); !os.IsNotExist(err) {
		t.Error("doctor without --fix wrote a hook")
	}
}

func writeHook(t *testing.T, path string, content []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatal(err)
	}
}
