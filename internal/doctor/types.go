package doctor

import "github.com/raphi011/hooksmith/internal/githook"

// IssueCategory groups issues by type.
type IssueCategory string

const (
	// CategoryEnv covers git itself and the current directory.
	CategoryEnv IssueCategory = "env"
	// CategoryConfig covers the global and local config files.
	CategoryConfig IssueCategory = "config"
	// CategoryHooks covers the hook directory and installed hooks.
	CategoryHooks IssueCategory = "hooks"
)

// Categories in report order.
var Categories = []IssueCategory{CategoryEnv, CategoryConfig, CategoryHooks}

// Severity tells whether an issue prevents hooks from working.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// FixInstall marks issues that running install repairs.
const FixInstall = "install"

// Issue represents a problem detected by doctor.
type Issue struct {
	Category    IssueCategory `json:"category"`
	Severity    Severity      `json:"severity"`
	Event       githook.Event `json:"event,omitempty"`
	Description string        `json:"description"`
	FixAction   string        `json:"fix,omitempty"` // FixInstall, or empty when manual
}

// Fixable reports whether --fix repairs the issue.
func (i Issue) Fixable() bool {
	return i.FixAction != ""
}

// Report is the outcome of all checks.
type Report struct {
	RepoRoot string                `json:"repo_root,omitempty"`
	HooksDir string                `json:"hooks_dir,omitempty"`
	Passed   map[IssueCategory]int `json:"passed"`
	Issues   []Issue               `json:"issues"`
	Fixed    *githook.Result       `json:"-"`

	target *target // set once the hook checks ran
}

// HasErrors reports whether any issue has error severity.
func (r *Report) HasErrors() bool {
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Fixable returns the issues --fix would repair.
func (r *Report) Fixable() []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if i.Fixable() {
			out = append(out, i)
		}
	}
	return out
}

// ByCategory returns the issues of c.
func (r *Report) ByCategory(c IssueCategory) []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if i.Category == c {
			out = append(out, i)
		}
	}
	return out
}
