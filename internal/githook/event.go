package githook

import (
	"slices"
)

// Event is a git hook event name, e.g. "pre-commit".
type Event string

// Supported hook events, see githooks(5).
const (
	ApplypatchMsg     Event = "applypatch-msg"
	PreApplypatch     Event = "pre-applypatch"
	PostApplypatch    Event = "post-applypatch"
	PreCommit         Event = "pre-commit"
	PreMergeCommit    Event = "pre-merge-commit"
	PrepareCommitMsg  Event = "prepare-commit-msg"
	CommitMsg         Event = "commit-msg"
	PostCommit        Event = "post-commit"
	PreRebase         Event = "pre-rebase"
	PostCheckout      Event = "post-checkout"
	PostMerge         Event = "post-merge"
	PrePush           Event = "pre-push"
	PreReceive        Event = "pre-receive"
	Update            Event = "update"
	PostReceive       Event = "post-receive"
	PostUpdate        Event = "post-update"
	PushToCheckout    Event = "push-to-checkout"
	PreAutoGC         Event = "pre-auto-gc"
	PostRewrite       Event = "post-rewrite"
	SendemailValidate Event = "sendemail-validate"
)

// catalogue is the fixed set of recognized events in processing order.
var catalogue = []Event{
	ApplypatchMsg,
	PreApplypatch,
	PostApplypatch,
	PreCommit,
	PreMergeCommit,
	PrepareCommitMsg,
	CommitMsg,
	PostCommit,
	PreRebase,
	PostCheckout,
	PostMerge,
	PrePush,
	PreReceive,
	Update,
	PostReceive,
	PostUpdate,
	PushToCheckout,
	PreAutoGC,
	PostRewrite,
	SendemailValidate,
}

var catalogueIndex = func() map[Event]int {
	m := make(map[Event]int, len(catalogue))
	for i, e := range catalogue {
		m[e] = i
	}
	return m
}()

// Events returns all recognized events in processing order.
func Events() []Event {
	return slices.Clone(catalogue)
}

// EventNames returns the names of all recognized events.
func EventNames() []string {
	names := make([]string, len(catalogue))
	for i, e := range catalogue {
		names[i] = string(e)
	}
	return names
}

// ParseEvent returns the Event named name, or an *UnrecognizedEventError.
func ParseEvent(name string) (Event, error) {
	e := Event(name)
	if !e.Valid() {
		return "", newUnrecognizedEventError([]string{name})
	}
	return e, nil
}

// Valid reports whether e is a recognized event.
func (e Event) Valid() bool {
	_, ok := catalogueIndex[e]
	return ok
}

func (e Event) String() string {
	return string(e)
}

// EventSet is a set of events kept in processing order.
type EventSet []Event

// Contains reports whether e is in the set.
func (s EventSet) Contains(e Event) bool {
	return slices.Contains(s, e)
}

// Strings returns the event names.
func (s EventSet) Strings() []string {
	out := make([]string, len(s))
	for i, e := range s {
		out[i] = string(e)
	}
	return out
}

// sortEvents sorts events into processing order.
func sortEvents(events []Event) {
	slices.SortFunc(events, func(a, b Event) int {
		return catalogueIndex[a] - catalogueIndex[b]
	})
}
