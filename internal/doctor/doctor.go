package doctor

import (
	"context"
	"fmt"
	"strings"

	"github.com/raphi011/hooksmith/internal/config"
	"github.com/raphi011/hooksmith/internal/output"
	"github.com/raphi011/hooksmith/internal/ui/styles"
)

// Run checks the repository containing dir, prints the report and, when
// fix is set, repairs what install can repair. The returned report reflects
// the state after fixing.
func Run(ctx context.Context, dir string, resolver *config.Resolver, fix bool) (*Report, error) {
	out := output.FromContext(ctx)

	r, err := Check(ctx, dir, resolver)
	if err != nil {
		return r, err
	}

	fixable := len(r.Fixable())
	if fix && fixable > 0 {
		if err := Fix(ctx, r); err != nil {
			printReport(out, r)
			return r, err
		}
	}

	printReport(out, r)

	switch {
	case len(r.Issues) == 0:
		out.Printf("\n%s No issues found\n", styles.OK())
	case !fix && fixable > 0:
		out.Println("\nRun 'hooksmith doctor --fix' to repair.")
	}
	return r, nil
}

func printReport(out *output.Printer, r *Report) {
	if r.RepoRoot != "" {
		out.Printf("Repository: %s\n", r.RepoRoot)
	}
	if r.HooksDir != "" {
		out.Printf("Hooks dir:  %s\n", r.HooksDir)
	}

	for _, c := range Categories {
		issues := r.ByCategory(c)
		out.Printf("\n%s\n", styles.Bold.Render(strings.ToUpper(string(c))))
		if n := r.Passed[c]; n > 0 {
			out.Printf("  %s %d %s passed\n", styles.OK(), n, plural(n, "check", "checks"))
		}
		for _, i := range issues {
			sym := styles.Warn()
			if i.Severity == SeverityError {
				sym = styles.Fail()
			}
			line := fmt.Sprintf("  %s %s", sym, i.Description)
			if i.Fixable() {
				line += styles.MutedStyle.Render(" (fixable)")
			}
			out.Println(line)
		}
	}

	if r.Fixed != nil {
		out.Printf("\nFixed: %d installed, %d removed\n", len(r.Fixed.Installed), len(r.Fixed.Removed))
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
