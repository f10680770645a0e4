package githook

import (
	"maps"
	"slices"
	"strings"
)

// Configuration maps hook events to the command line their script runs.
// An event without an entry is not installed.
type Configuration map[Event]string

// NewConfiguration validates raw event names and builds a Configuration.
// Entries with a blank command are dropped, meaning "do not install".
// Unknown names are all reported together in an *UnrecognizedEventError.
func NewConfiguration(raw map[string]string) (Configuration, error) {
	var unknown []string
	cfg := make(Configuration, len(raw))

	for name, command := range raw {
		e := Event(name)
		if !e.Valid() {
			unknown = append(unknown, name)
			continue
		}
		if strings.TrimSpace(command) == "" {
			continue
		}
		cfg[e] = command
	}

	if len(unknown) > 0 {
		return nil, newUnrecognizedEventError(unknown)
	}
	return cfg, nil
}

// Command returns the configured command for e.
func (c Configuration) Command(e Event) (string, bool) {
	command, ok := c[e]
	if !ok || strings.TrimSpace(command) == "" {
		return "", false
	}
	return command, true
}

// Events returns the configured events in processing order.
func (c Configuration) Events() EventSet {
	events := slices.Collect(maps.Keys(c))
	events = slices.DeleteFunc(events, func(e Event) bool {
		_, ok := c.Command(e)
		return !ok
	})
	sortEvents(events)
	return events
}

// validate rejects keys outside the catalogue. Configurations built with
// NewConfiguration always pass; literal maps might not.
func (c Configuration) validate() error {
	var unknown []string
	for e := range c {
		if !e.Valid() {
			unknown = append(unknown, string(e))
		}
	}
	if len(unknown) > 0 {
		return newUnrecognizedEventError(unknown)
	}
	return nil
}
