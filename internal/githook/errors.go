package githook

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// ErrTargetNotWritable is matched by errors.Is when the hook directory is
// missing, not a directory, or cannot be written. Nothing was installed.
var ErrTargetNotWritable = errors.New("hook directory is not writable")

// TargetError describes why the hook directory cannot be used.
type TargetError struct {
	Path string
	Err  error
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrTargetNotWritable, e.Path, e.Err)
}

func (e *TargetError) Unwrap() []error {
	return []error{ErrTargetNotWritable, e.Err}
}

// PartialFailureError reports the events whose hook file could not be
// written or removed. Events not listed were applied.
type PartialFailureError struct {
	Failed map[Event]error
}

// Events returns the failed events in processing order.
func (e *PartialFailureError) Events() []Event {
	events := make([]Event, 0, len(e.Failed))
	for ev := range e.Failed {
		events = append(events, ev)
	}
	sortEvents(events)
	return events
}

func (e *PartialFailureError) Error() string {
	events := e.Events()
	parts := make([]string, len(events))
	for i, ev := range events {
		parts[i] = fmt.Sprintf("%s: %v", ev, e.Failed[ev])
	}
	noun := "hook"
	if len(events) != 1 {
		noun = "hooks"
	}
	return fmt.Sprintf("failed to apply %d %s: %s", len(events), noun, strings.Join(parts, "; "))
}

func (e *PartialFailureError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failed))
	for _, ev := range e.Events() {
		errs = append(errs, e.Failed[ev])
	}
	return errs
}

// UnrecognizedEventError is returned when configuration names hook events
// outside the supported set. It is raised before anything is written.
type UnrecognizedEventError struct {
	Names       []string            // sorted unknown names
	Suggestions map[string][]string // name -> close matches, best first
}

func newUnrecognizedEventError(names []string) *UnrecognizedEventError {
	names = slices.Clone(names)
	slices.Sort(names)
	e := &UnrecognizedEventError{
		Names:       names,
		Suggestions: make(map[string][]string),
	}
	for _, name := range names {
		if s := suggestEvents(name); len(s) > 0 {
			e.Suggestions[name] = s
		}
	}
	return e
}

func (e *UnrecognizedEventError) Error() string {
	parts := make([]string, len(e.Names))
	for i, name := range e.Names {
		parts[i] = fmt.Sprintf("%q", name)
		if s := e.Suggestions[name]; len(s) > 0 {
			parts[i] += fmt.Sprintf(" (did you mean %q?)", s[0])
		}
	}
	noun := "event"
	if len(e.Names) != 1 {
		noun = "events"
	}
	return fmt.Sprintf("unrecognized hook %s %s", noun, strings.Join(parts, ", "))
}

const maxSuggestions = 3

// suggestEvents returns recognized event names close to name. It first
// looks for events containing name as a subsequence (missing letters), then
// for events contained in name (extra letters).
func suggestEvents(name string) []string {
	if name == "" {
		return nil
	}

	matches := fuzzy.Find(name, EventNames())
	if len(matches) == 0 {
		for _, ev := range EventNames() {
			if m := fuzzy.Find(ev, []string{name}); len(m) > 0 {
				m[0].Str = ev
				matches = append(matches, m[0])
			}
		}
		slices.SortStableFunc(matches, func(a, b fuzzy.Match) int {
			return b.Score - a.Score
		})
	}

	var out []string
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
