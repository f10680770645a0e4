package hooks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"slices"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/raphi011/hooksmith/internal/githook"
	"github.com/raphi011/hooksmith/internal/log"
)

// Context describes one hook invocation.
type Context struct {
	Event   githook.Event
	Command string            // command line from the configuration
	Args    []string          // positional arguments, as git would pass them
	Dir     string            // working directory, usually the repo top level
	Env     map[string]string // extra variables on top of the process environment
	DryRun  bool              // print the command instead of executing it

	Stdin  io.Reader // defaults to os.Stdin
	Stdout io.Writer // defaults to os.Stdout
	Stderr io.Writer // defaults to os.Stderr
}

// ExitError reports a hook command that ran but exited non-zero.
type ExitError struct {
	Event githook.Event
	Code  int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s hook exited with status %d", e.Event, e.Code)
}

// Run executes the command of hc. A non-zero exit yields an *ExitError.
func Run(ctx context.Context, hc Context) error {
	l := log.FromContext(ctx)

	if strings.TrimSpace(hc.Command) == "" {
		return fmt.Errorf("no command configured for %s", hc.Event)
	}

	if hc.DryRun {
		l.Printf("[dry-run] %s: %s\n", hc.Event, describe(hc))
		return nil
	}

	args := append([]string{"-c", hc.Command, string(hc.Event)}, hc.Args...)
	c := exec.CommandContext(ctx, "sh", args...)
	c.Dir = hc.Dir
	c.Env = append(os.Environ(), envList(hc.Env)...)
	c.Stdin, c.Stdout, c.Stderr = os.Stdin, os.Stdout, os.Stderr
	if hc.Stdin != nil {
		c.Stdin = hc.Stdin
	}
	if hc.Stdout != nil {
		c.Stdout = hc.Stdout
	}
	if hc.Stderr != nil {
		c.Stderr = hc.Stderr
	}

	l.Debug("running hook", "event", hc.Event, "dir", hc.Dir, "args", len(hc.Args))
	done := l.Command(hc.Dir, "sh", args...)
	start := time.Now()
	err := c.Run()
	done(time.Since(start))

	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Event: hc.Event, Code: exitErr.ExitCode()}
	}
	return fmt.Errorf("run %s hook: %w", hc.Event, err)
}

// describe renders the invocation for dry-run output.
func describe(hc Context) string {
	if len(hc.Args) == 0 {
		return hc.Command
	}
	quoted := make([]string, len(hc.Args))
	for i, a := range hc.Args {
		quoted[i] = shellQuote(a)
	}
	return hc.Command + " -- " + strings.Join(quoted, " ")
}

// shellQuote wraps s in single quotes, escaping embedded single quotes.
// e.g. "it's" becomes 'it'\''s'
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}

// envList returns env as sorted KEY=VALUE entries.
func envList(env map[string]string) []string {
	out := make([]string, 0, len(env))
	for k, v := range env {
		out = append(out, k+"="+v)
	}
	slices.Sort(out)
	return out
}

// ParseEnv parses "KEY=VALUE" entries into a map. Entries whose value is
// "-" all receive the content of stdin, which must be piped.
func ParseEnv(entries []string, stdin io.Reader) (map[string]string, error) {
	result := make(map[string]string, len(entries))
	var stdinKeys []string

	for _, e := range entries {
		key, value, ok := strings.Cut(e, "=")
		if !ok {
			return nil, fmt.Errorf("invalid env format %q: expected KEY=VALUE", e)
		}
		if key == "" {
			return nil, fmt.Errorf("invalid env format %q: key cannot be empty", e)
		}
		if value == "-" {
			stdinKeys = append(stdinKeys, key)
			continue
		}
		result[key] = value
	}

	if len(stdinKeys) > 0 {
		content, err := readPiped(stdin)
		if err != nil {
			return nil, err
		}
		if content == "" {
			return nil, errors.New("stdin not piped: KEY=- requires piped input")
		}
		for _, key := range stdinKeys {
			result[key] = content
		}
	}

	return result, nil
}

// readPiped reads r to the end unless it is an interactive terminal.
func readPiped(r io.Reader) (string, error) {
	if r == nil {
		return "", nil
	}
	if f, ok := r.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return "", nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
