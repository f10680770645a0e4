package githook

import (
	"errors"
	"testing"
)

func TestEvents(t *testing.T) {
	t.Parallel()

	events := Events()
	if len(events) != 20 {
		t.Errorf("Events() returned %d events, want 20", len(events))
	}
	if events[0] != ApplypatchMsg || events[len(events)-1] != SendemailValidate {
		t.Errorf("Events() order = %v", events)
	}

	events[0] = "mutated"
	if Events()[0] != ApplypatchMsg {
		t.Error("Events() exposes the internal catalogue")
	}
}

func TestParseEvent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    Event
		wantErr bool
	}{
		{"pre-commit", PreCommit, false},
		{"sendemail-validate", SendemailValidate, false},
		{"update", Update, false},
		{"Pre-Commit", "", true},
		{"pre-commit.sample", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseEvent(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseEvent(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			var unrecognized *UnrecognizedEventError
			if tt.wantErr && !errors.As(err, &unrecognized) {
				t.Errorf("ParseEvent(%q) error type = %T", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("ParseEvent(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestEventSet(t *testing.T) {
	t.Parallel()

	s := EventSet{PreCommit, PrePush}
	if !s.Contains(PrePush) || s.Contains(PostMerge) {
		t.Errorf("Contains() wrong for %v", s)
	}
	got := s.Strings()
	if len(got) != 2 || got[0] != "pre-commit" || got[1] != "pre-push" {
		t.Errorf("Strings() = %v", got)
	}
}
