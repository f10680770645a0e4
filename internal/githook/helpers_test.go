package githook

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/raphi011/hooksmith/internal/log"
)

// testContext returns a context whose logger writes into the returned buffer.
func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return log.WithLogger(context.Background(), log.New(&buf, false, false)), &buf
}

// snapshot returns name -> content for every entry in dir. Directories map
// to "<dir>" and symlinks to "-> target".
func snapshot(t *testing.T, dir string) map[string]string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		switch {
		case e.IsDir():
			out[e.Name()] = "<dir>"
		case e.Type()&os.ModeSymlink != 0:
			target, err := os.Readlink(path)
			if err != nil {
				t.Fatalf("readlink: %v", err)
			}
			out[e.Name()] = "-> " + target
		default:
			content, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read %s: %v", e.Name(), err)
			}
			out[e.Name()] = string(content)
		}
	}
	return out
}

func writeFile(t *testing.T, path, content string, mode os.FileMode) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	if err := os.Chmod(path, mode); err != nil {
		t.Fatalf("chmod %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(content)
}

func fileMode(t *testing.T, path string) os.FileMode {
	t.Helper()
	info, err := os.Lstat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	return info.Mode()
}

func skipWithoutPermissions(t *testing.T) {
	t.Helper()
	if !permissionsSupported {
		t.Skip("no POSIX permission bits on " + runtime.GOOS)
	}
}

func skipAsRoot(t *testing.T) {
	t.Helper()
	skipWithoutPermissions(t)
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permissions")
	}
}

const foreignHook = "#!/bin/sh\necho hand-written\n"
