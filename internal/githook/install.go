package githook

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/raphi011/hooksmith/internal/log"
)

// DefaultMode is the permission set applied to generated hooks.
const DefaultMode os.FileMode = 0o755

type options struct {
	mode os.FileMode
}

// Option configures Install.
type Option func(*options)

// WithMode sets the permission bits of written hook files. The owner
// execute bit is always added.
func WithMode(mode os.FileMode) Option {
	return func(o *options) {
		o.mode = mode.Perm() | 0o100
	}
}

func newOptions(opts []Option) options {
	o := options{mode: DefaultMode}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Result lists what Install changed, each set in processing order.
type Result struct {
	Installed   EventSet // configured events whose hook is in place
	Removed     EventSet // generated hooks deleted because the event is unconfigured
	Overwritten EventSet // hand-written hooks replaced by a generated one
	Preserved   EventSet // hand-written hooks left alone
}

// Install writes a hook script into target for every configured event and
// removes generated scripts of unconfigured events. See the package
// documentation for the rules.
//
// Errors: *UnrecognizedEventError (nothing touched), ErrTargetNotWritable
// via *TargetError (nothing touched), *PartialFailureError (returned with
// the partial Result).
func Install(ctx context.Context, target string, cfg Configuration, opts ...Option) (Result, error) {
	l := log.FromContext(ctx)
	o := newOptions(opts)

	actions, err := Plan(target, cfg)
	if err != nil {
		return Result{}, err
	}
	if err := CheckTarget(ctx, target); err != nil {
		return Result{}, err
	}

	var res Result
	failed := make(map[Event]error)

	for _, a := range actions {
		switch a.Kind {
		case ActionNone:
			continue
		case ActionPreserve:
			// an unreadable file cannot be shown to carry the marker
			if a.Err != nil {
				l.Debug("keeping unreadable hook", "event", a.Event, "path", a.Path, "err", a.Err)
			} else {
				l.Debug("keeping hand-written hook", "event", a.Event, "path", a.Path)
			}
			res.Preserved = append(res.Preserved, a.Event)
		case ActionRemove:
			l.Debug("removing generated hook", "event", a.Event, "path", a.Path)
			if err := os.Remove(a.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
				failed[a.Event] = fmt.Errorf("remove: %w", err)
				continue
			}
			res.Removed = append(res.Removed, a.Event)
		default:
			switch {
			case a.Kind == ActionOverwrite && a.Err != nil:
				l.Warnf("replacing %s hook at %s, the existing file could not be read: %v", a.Event, a.Path, a.Err)
			case a.Kind == ActionOverwrite:
				l.Warnf("replacing hand-written %s hook at %s", a.Event, a.Path)
			}
			l.Debug("writing hook", "event", a.Event, "action", a.Kind, "path", a.Path)
			if err := writeHook(a, o.mode); err != nil {
				failed[a.Event] = err
				continue
			}
			if a.Kind == ActionOverwrite {
				res.Overwritten = append(res.Overwritten, a.Event)
			}
			res.Installed = append(res.Installed, a.Event)
		}
	}

	if len(failed) > 0 {
		return res, &PartialFailureError{Failed: failed}
	}
	return res, nil
}

// Uninstall removes every generated hook from target, keeping hand-written
// ones. It is Install with an empty configuration.
func Uninstall(ctx context.Context, target string, opts ...Option) (Result, error) {
	return Install(ctx, target, Configuration{}, opts...)
}

// writeHook truncates and rewrites the hook file, then applies mode.
// Unchanged files only get their mode re-applied.
func writeHook(a Action, mode os.FileMode) error {
	if a.Kind != ActionUnchanged {
		// a symlink would be followed by the write, clobbering its target
		if info, err := os.Lstat(a.Path); err == nil && info.Mode()&fs.ModeSymlink != 0 {
			if err := os.Remove(a.Path); err != nil {
				return fmt.Errorf("replace symlink: %w", err)
			}
		}

		f, err := os.OpenFile(a.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
		if err != nil {
			return fmt.Errorf("write: %w", err)
		}
		if _, err := f.Write(Render(a.Event, a.Command)); err != nil {
			f.Close()
			return fmt.Errorf("write: %w", err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}

	if err := setMode(a.Path, mode); err != nil {
		return fmt.Errorf("set permissions: %w", err)
	}
	return nil
}

// CheckTarget verifies that target is an existing directory that accepts
// new files by creating and removing a probe file. Failures are
// *TargetError. A probe that cannot be removed is only warned about, since
// the directory did accept the write.
func CheckTarget(ctx context.Context, target string) error {
	info, err := os.Stat(target)
	if err != nil {
		return &TargetError{Path: target, Err: err}
	}
	if !info.IsDir() {
		return &TargetError{Path: target, Err: errors.New("not a directory")}
	}

	probe, err := os.CreateTemp(target, ".hooksmith-probe-*")
	if err != nil {
		return &TargetError{Path: target, Err: err}
	}
	name := probe.Name()
	closeErr := probe.Close()
	if err := os.Remove(name); err != nil {
		log.FromContext(ctx).Warnf("could not remove probe file %s: %v", name, err)
	}
	if closeErr != nil {
		return &TargetError{Path: target, Err: closeErr}
	}
	return nil
}
