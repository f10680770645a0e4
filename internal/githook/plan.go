package githook

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ActionKind is what Install does for one event.
type ActionKind string

const (
	ActionNone      ActionKind = "none"              // not configured, nothing on disk
	ActionCreate    ActionKind = "create"            // configured, no file yet
	ActionUpdate    ActionKind = "update"            // configured, generated file differs
	ActionUnchanged ActionKind = "unchanged"         // configured, generated file matches
	ActionOverwrite ActionKind = "overwrite-foreign" // configured, hand-written file is replaced
	ActionRemove    ActionKind = "remove"            // not configured, generated file is deleted
	ActionPreserve  ActionKind = "preserve-foreign"  // not configured, hand-written file is kept
)

// Action is the planned change for one event.
type Action struct {
	Event   Event
	Kind    ActionKind
	Path    string
	Command string // configured command, empty when not configured
	Err     error  // set when the existing file could not be inspected
}

// Writes reports whether the action writes the hook file.
func (a Action) Writes() bool {
	switch a.Kind {
	case ActionCreate, ActionUpdate, ActionUnchanged, ActionOverwrite:
		return true
	}
	return false
}

// Plan computes the action for every recognized event without modifying
// anything. A missing target is treated as an empty directory.
func Plan(target string, cfg Configuration) ([]Action, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	actions := make([]Action, 0, len(catalogue))
	for _, e := range catalogue {
		actions = append(actions, planEvent(target, e, cfg))
	}
	return actions, nil
}

func planEvent(target string, e Event, cfg Configuration) Action {
	path := filepath.Join(target, string(e))
	command, configured := cfg.Command(e)
	a := Action{Event: e, Path: path, Command: command}

	existing, err := readExisting(path)
	if err != nil {
		a.Err = err
		if configured {
			a.Kind = ActionOverwrite
		} else {
			a.Kind = ActionPreserve
		}
		return a
	}

	switch {
	case configured && existing == nil:
		a.Kind = ActionCreate
	case configured && bytes.Equal(existing.content, Render(e, command)):
		a.Kind = ActionUnchanged
	case configured && existing.managed():
		a.Kind = ActionUpdate
	case configured:
		a.Kind = ActionOverwrite
	case existing == nil:
		a.Kind = ActionNone
	case existing.managed():
		a.Kind = ActionRemove
	default:
		a.Kind = ActionPreserve
	}
	return a
}

// hookFile is an existing entry at a hook path.
type hookFile struct {
	regular bool
	mode    fs.FileMode
	content []byte // nil unless regular
}

func (f *hookFile) managed() bool {
	return f.regular && IsManaged(f.content)
}

// readExisting returns nil when nothing exists at path. Symlinks and other
// non-regular entries are reported without following them.
func readExisting(path string) (*hookFile, error) {
	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return &hookFile{mode: info.Mode()}, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read existing hook: %w", err)
	}
	return &hookFile{regular: true, mode: info.Mode(), content: content}, nil
}
