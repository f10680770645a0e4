package static

import (
	"strings"
	"testing"

	"github.com/raphi011/hooksmith/internal/githook"
)

func TestRenderTable(t *testing.T) {
	t.Parallel()

	t.Run("empty rows", func(t *testing.T) {
		t.Parallel()
		if got := RenderTable([]string{"A"}, nil); got != "" {
			t.Errorf("RenderTable() = %q, want empty", got)
		}
	})

	t.Run("aligned columns", func(t *testing.T) {
		t.Parallel()
		got := RenderTable([]string{"EVENT", "STATE"}, [][]string{
			{"pre-commit", "current"},
			{"commit-msg", "stale"},
		})
		lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
		if len(lines) != 3 {
			t.Fatalf("got %d lines, want 3:\n%s", len(lines), got)
		}
		col := strings.Index(lines[1], "current")
		if col < 0 || strings.Index(lines[2], "stale") != col {
			t.Errorf("STATE column not aligned:\n%s", got)
		}
	})

	t.Run("rows end without trailing blanks", func(t *testing.T) {
		t.Parallel()
		got := RenderTable([]string{"EVENT", "COMMAND"}, [][]string{
			{"pre-commit", "make lint"},
			{"pre-push", "go test ./..."},
		})
		if !strings.HasSuffix(got, "\n") || strings.HasSuffix(got, "\n\n") {
			t.Errorf("want exactly one trailing newline: %q", got)
		}
		for _, line := range strings.Split(strings.TrimRight(got, "\n"), "\n")[1:] {
			if strings.TrimRight(line, " ") != line {
				t.Errorf("line %q has trailing blanks", line)
			}
		}
	})
}

func TestStatusRow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   githook.Status
		wantExec string
	}{
		{"current", githook.Status{Event: githook.PreCommit, State: githook.StateCurrent, Command: "make lint", Executable: true}, "yes"},
		{"not executable", githook.Status{Event: githook.PreCommit, State: githook.StateStale, Command: "make lint"}, "no"},
		{"missing", githook.Status{Event: githook.PrePush, State: githook.StateMissing, Command: "make test"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			row := StatusRow(tt.status)
			if len(row) != len(StatusHeaders) {
				t.Fatalf("row has %d columns, want %d", len(row), len(StatusHeaders))
			}
			if row[1] != tt.status.Event.String() {
				t.Errorf("EVENT = %q", row[1])
			}
			if row[2] != string(tt.status.State) {
				t.Errorf("STATE = %q", row[2])
			}
			if row[3] != tt.wantExec {
				t.Errorf("EXEC = %q, want %q", row[3], tt.wantExec)
			}
			if row[4] != tt.status.Command {
				t.Errorf("COMMAND = %q", row[4])
			}
			if row[0] == "" {
				t.Error("symbol column is empty")
			}
		})
	}
}

func TestRenderStatus_HidesAbsent(t *testing.T) {
	t.Parallel()

	statuses := []githook.Status{
		{Event: githook.ApplypatchMsg, State: githook.StateAbsent},
		{Event: githook.PreCommit, State: githook.StateCurrent, Command: "make lint", Executable: true},
	}

	got := RenderStatus(statuses, false)
	if strings.Contains(got, "applypatch-msg") {
		t.Errorf("absent event listed without all:\n%s", got)
	}
	if !strings.Contains(got, "pre-commit") {
		t.Errorf("configured event missing:\n%s", got)
	}
	if got := RenderStatus(statuses, true); !strings.Contains(got, "applypatch-msg") {
		t.Errorf("absent event missing with all:\n%s", got)
	}
}
