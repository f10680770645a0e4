package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/raphi011/hooksmith/internal/githook"
)

// Fix runs install for the checked repository when any issue is fixable.
// Issues that need manual action are left in the report.
func Fix(ctx context.Context, r *Report) error {
	if r.target == nil || len(r.Fixable()) == 0 {
		return nil
	}
	t := r.target

	mode, err := t.cfg.FileMode()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(t.hooksDir, 0o755); err != nil {
		return fmt.Errorf("create hook directory: %w", err)
	}

	res, err := githook.Install(ctx, t.hooksDir, t.hooks, githook.WithMode(mode))
	r.Fixed = &res

	var partial *githook.PartialFailureError
	if errors.As(err, &partial) {
		r.Issues = remaining(r.Issues, func(i Issue) bool {
			_, failed := partial.Failed[i.Event]
			return !i.Fixable() || failed
		})
		return err
	}
	if err != nil {
		return err
	}

	r.Issues = remaining(r.Issues, func(i Issue) bool { return !i.Fixable() })
	return nil
}

func remaining(issues []Issue, keep func(Issue) bool) []Issue {
	var out []Issue
	for _, i := range issues {
		if keep(i) {
			out = append(out, i)
		}
	}
	return out
}
