//go:build integration

package main

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/raphi011/hooksmith/internal/config"
	"github.com/raphi011/hooksmith/internal/log"
	"github.com/raphi011/hooksmith/internal/output"
)

// testEnv bundles the context handed to commands and the buffers that
// capture their stdout and stderr diagnostics.
type testEnv struct {
	ctx  context.Context
	out  *bytes.Buffer
	logs *bytes.Buffer
}

// testContext returns a command context rooted at workDir with the default
// global config, so the developer's own config never leaks into tests.
func testContext(t *testing.T, workDir string) *testEnv {
	t.Helper()
	cfg := config.Default()
	return testContextWithConfig(t, workDir, &cfg)
}

func testContextWithConfig(t *testing.T, workDir string, cfg *config.Config) *testEnv {
	t.Helper()

	env := &testEnv{out: &bytes.Buffer{}, logs: &bytes.Buffer{}}
	ctx := context.Background()
	ctx = config.WithConfig(ctx, cfg)
	ctx = config.WithResolver(ctx, config.NewResolver(cfg))
	ctx = config.WithWorkDir(ctx, workDir)
	ctx = log.WithLogger(ctx, log.New(env.logs, false, false))
	ctx = output.WithPrinter(ctx, output.New(env.out))
	env.ctx = ctx
	return env
}

// execute runs cmd with args in env and returns its error.
func (env *testEnv) execute(cmd *cobra.Command, args ...string) error {
	cmd.SetContext(env.ctx)
	cmd.SetArgs(args)
	cmd.SetOut(env.out)
	cmd.SetErr(env.logs)
	return cmd.Execute()
}

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// setupTestRepo creates a git repo with an initial commit in a temp dir and
// returns its path with symlinks resolved.
func setupTestRepo(t *testing.T) string {
	t.Helper()

	repoPath := filepath.Join(resolvePath(t, t.TempDir()), "repo")
	if err := os.MkdirAll(repoPath, 0o755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}

	runGit(t, repoPath, "init")
	runGit(t, repoPath, "config", "user.email", "test@test.com")
	runGit(t, repoPath, "config", "user.name", "Test User")
	runGit(t, repoPath, "config", "commit.gpgsign", "false")
	// ignore any global core.hooksPath of the machine running the tests
	runGit(t, repoPath, "config", "core.hooksPath", hooksDir(repoPath))

	writeFile(t, filepath.Join(repoPath, "README.md"), "# repo\n", 0o644)
	runGit(t, repoPath, "add", "README.md")
	runGit(t, repoPath, "commit", "-m", "Initial commit")

	return repoPath
}

// runGit runs git in dir and returns its trimmed output.
func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
	return strings.TrimSpace(string(out))
}

// writeLocalConfig writes .hooksmith.toml at the repo root.
func writeLocalConfig(t *testing.T, repo, content string) {
	t.Helper()
	writeFile(t, filepath.Join(repo, config.LocalConfigFileName), content, 0o644)
}

func hooksDir(repo string) string {
	return filepath.Join(repo, ".git", "hooks")
}

func writeFile(t *testing.T, path, content string, mode os.FileMode) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
