package githook

import (
	"bytes"
	"path/filepath"
)

// State is the on-disk condition of one event's hook.
type State string

const (
	StateAbsent   State = "absent"   // not configured, no file
	StateMissing  State = "missing"  // configured, no file
	StateCurrent  State = "current"  // configured, generated file is up to date
	StateStale    State = "stale"    // configured, generated file differs from the rendered script
	StateForeign  State = "foreign"  // a hand-written hook occupies the path
	StateOrphaned State = "orphaned" // not configured, generated file left behind
)

// Status describes one event's hook.
type Status struct {
	Event      Event  `json:"event"`
	State      State  `json:"state"`
	Path       string `json:"path"`
	Command    string `json:"command,omitempty"`
	Executable bool   `json:"executable"`
	Err        error  `json:"-"`
}

// NeedsInstall reports whether running Install would change this hook.
func (s Status) NeedsInstall() bool {
	switch s.State {
	case StateMissing, StateStale, StateOrphaned:
		return true
	case StateCurrent:
		return !s.Executable
	}
	return false
}

// Inspect reports the state of every recognized event in target against
// cfg. A missing target reports every event as absent or missing.
func Inspect(target string, cfg Configuration) ([]Status, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	statuses := make([]Status, 0, len(catalogue))
	for _, e := range catalogue {
		statuses = append(statuses, inspectEvent(target, e, cfg))
	}
	return statuses, nil
}

func inspectEvent(target string, e Event, cfg Configuration) Status {
	path := filepath.Join(target, string(e))
	command, configured := cfg.Command(e)
	s := Status{Event: e, Path: path, Command: command}

	existing, err := readExisting(path)
	if err != nil {
		s.Err = err
		s.State = StateForeign
		return s
	}
	if existing != nil {
		s.Executable = existing.regular && isExecutable(existing.mode)
	}

	switch {
	case existing == nil && configured:
		s.State = StateMissing
	case existing == nil:
		s.State = StateAbsent
	case !existing.managed():
		s.State = StateForeign
	case !configured:
		s.State = StateOrphaned
	case bytes.Equal(existing.content, Render(e, command)):
		s.State = StateCurrent
	default:
		s.State = StateStale
	}
	return s
}
