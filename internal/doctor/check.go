package doctor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/raphi011/hooksmith/internal/config"
	"github.com/raphi011/hooksmith/internal/git"
	"github.com/raphi011/hooksmith/internal/githook"
)

// target is what the hook checks run against once env and config passed.
type target struct {
	repoRoot string
	hooksDir string
	cfg      *config.Config
	hooks    githook.Configuration
}

// Check runs all diagnostics for the repository containing dir.
// Checks that depend on a failed earlier check are skipped.
func Check(ctx context.Context, dir string, resolver *config.Resolver) (*Report, error) {
	r := &Report{Passed: make(map[IssueCategory]int)}

	repoRoot, ok := checkEnv(ctx, r, dir)
	if !ok {
		return r, nil
	}
	r.RepoRoot = repoRoot

	t, ok := checkConfig(r, resolver, repoRoot)
	if !ok {
		return r, nil
	}

	hooksDir, err := t.cfg.HooksDir(ctx, repoRoot)
	if err != nil {
		return r, err
	}
	t.hooksDir = hooksDir
	r.HooksDir = hooksDir
	r.target = t

	checkHooks(ctx, r, t)
	return r, nil
}

func (r *Report) add(i Issue) {
	r.Issues = append(r.Issues, i)
}

func (r *Report) pass(c IssueCategory) {
	r.Passed[c]++
}

func checkEnv(ctx context.Context, r *Report, dir string) (string, bool) {
	if err := git.CheckGit(); err != nil {
		r.add(Issue{Category: CategoryEnv, Severity: SeverityError, Description: err.Error()})
		return "", false
	}
	r.pass(CategoryEnv)

	root, err := git.TopLevel(ctx, dir)
	if err != nil {
		r.add(Issue{
			Category:    CategoryEnv,
			Severity:    SeverityError,
			Description: fmt.Sprintf("%s is not inside a git work tree", dir),
		})
		return "", false
	}
	r.pass(CategoryEnv)
	return root, true
}

func checkConfig(r *Report, resolver *config.Resolver, repoRoot string) (*target, bool) {
	cfg, err := resolver.ConfigForRepo(repoRoot)
	if err != nil {
		r.add(Issue{Category: CategoryConfig, Severity: SeverityError, Description: err.Error()})
		return nil, false
	}
	r.pass(CategoryConfig)

	hooks, err := cfg.HookConfiguration()
	if err != nil {
		r.add(Issue{Category: CategoryConfig, Severity: SeverityError, Description: err.Error()})
		return nil, false
	}
	r.pass(CategoryConfig)

	if _, err := cfg.FileMode(); err != nil {
		r.add(Issue{Category: CategoryConfig, Severity: SeverityError, Description: err.Error()})
		return nil, false
	}

	if len(hooks.Events()) == 0 {
		r.add(Issue{
			Category:    CategoryConfig,
			Severity:    SeverityWarning,
			Description: "no hooks configured; add a [hooks] table to " + config.LocalConfigFileName,
		})
	} else {
		r.pass(CategoryConfig)
	}

	return &target{repoRoot: repoRoot, cfg: cfg, hooks: hooks}, true
}

func checkHooks(ctx context.Context, r *Report, t *target) {
	configured := len(t.hooks.Events()) > 0

	if _, err := os.Stat(t.hooksDir); errors.Is(err, fs.ErrNotExist) {
		if configured {
			r.add(Issue{
				Category:    CategoryHooks,
				Severity:    SeverityError,
				Description: fmt.Sprintf("hook directory %s does not exist", t.hooksDir),
				FixAction:   FixInstall,
			})
		}
	} else if err := githook.CheckTarget(ctx, t.hooksDir); err != nil {
		r.add(Issue{Category: CategoryHooks, Severity: SeverityError, Description: err.Error()})
		return
	} else {
		r.pass(CategoryHooks)
	}

	checkHooksPath(ctx, r, t)

	statuses, err := githook.Inspect(t.hooksDir, t.hooks)
	if err != nil {
		r.add(Issue{Category: CategoryHooks, Severity: SeverityError, Description: err.Error()})
		return
	}
	for _, s := range statuses {
		if issue, ok := statusIssue(s); ok {
			r.add(issue)
		} else if s.State == githook.StateCurrent {
			r.pass(CategoryHooks)
		}
	}
}

// statusIssue maps one hook status to an issue, if any.
func statusIssue(s githook.Status) (Issue, bool) {
	issue := Issue{Category: CategoryHooks, Event: s.Event, FixAction: FixInstall}

	switch s.State {
	case githook.StateMissing:
		issue.Severity = SeverityError
		issue.Description = fmt.Sprintf("%s is configured but not installed", s.Event)
	case githook.StateStale:
		issue.Severity = SeverityWarning
		issue.Description = fmt.Sprintf("%s hook is out of date with the configured command", s.Event)
	case githook.StateOrphaned:
		issue.Severity = SeverityWarning
		issue.Description = fmt.Sprintf("%s hook was generated but the event is no longer configured", s.Event)
	case githook.StateForeign:
		if s.Command == "" {
			// hand-written hooks of unconfigured events are left alone
			return Issue{}, false
		}
		issue.Severity = SeverityWarning
		issue.Description = fmt.Sprintf("%s hook is hand-written; install will replace it", s.Event)
	case githook.StateCurrent:
		if s.Executable {
			return Issue{}, false
		}
		issue.Severity = SeverityError
		issue.Description = fmt.Sprintf("%s hook is not executable, git will skip it", s.Event)
	default:
		return Issue{}, false
	}
	return issue, true
}

// checkHooksPath warns when git will not run hooks from the install target,
// or when core.hooksPath points outside the repository's git directory.
func checkHooksPath(ctx context.Context, r *Report, t *target) {
	gitHooksDir, err := git.HooksDir(ctx, t.repoRoot)
	if err != nil {
		r.add(Issue{Category: CategoryHooks, Severity: SeverityWarning, Description: err.Error()})
		return
	}

	if !samePath(gitHooksDir, t.hooksDir) {
		r.add(Issue{
			Category: CategoryHooks,
			Severity: SeverityWarning,
			Description: fmt.Sprintf("git runs hooks from %s, not %s; run: git config core.hooksPath %s",
				gitHooksDir, t.hooksDir, t.hooksDir),
		})
		return
	}

	hooksPath, err := git.HooksPathConfig(ctx, t.repoRoot)
	if err != nil || hooksPath == "" {
		return
	}
	commonDir, err := git.CommonDir(ctx, t.repoRoot)
	if err != nil {
		return
	}
	if !within(commonDir, gitHooksDir) {
		r.add(Issue{
			Category:    CategoryHooks,
			Severity:    SeverityWarning,
			Description: fmt.Sprintf("core.hooksPath=%s points outside .git; generated hooks there may be committed or shared", hooksPath),
		})
	}
}

func samePath(a, b string) bool {
	return canonical(a) == canonical(b)
}

func within(parent, child string) bool {
	rel, err := filepath.Rel(canonical(parent), canonical(child))
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// canonical resolves symlinks where the path exists, e.g. /tmp on macOS.
func canonical(p string) string {
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		return resolved
	}
	return filepath.Clean(p)
}
