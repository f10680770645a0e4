package static

import (
	"github.com/raphi011/hooksmith/internal/githook"
	"github.com/raphi011/hooksmith/internal/ui/styles"
)

// StatusHeaders are the columns of the hook status table.
var StatusHeaders = []string{"", "EVENT", "STATE", "EXEC", "COMMAND"}

// StatusRow formats one hook status as a table row.
func StatusRow(s githook.Status) []string {
	exec := ""
	if s.State != githook.StateAbsent && s.State != githook.StateMissing {
		exec = "no"
		if s.Executable {
			exec = "yes"
		}
	}
	return []string{stateSymbol(s), s.Event.String(), string(s.State), exec, s.Command}
}

// RenderStatus renders the status table. Unless all is set, events that
// are neither configured nor present on disk are left out.
func RenderStatus(statuses []githook.Status, all bool) string {
	var rows [][]string
	for _, s := range statuses {
		if s.State == githook.StateAbsent && !all {
			continue
		}
		rows = append(rows, StatusRow(s))
	}
	return RenderTable(StatusHeaders, rows)
}

func stateSymbol(s githook.Status) string {
	switch s.State {
	case githook.StateCurrent:
		if s.Executable {
			return styles.OK()
		}
		return styles.Warn()
	case githook.StateStale, githook.StateForeign, githook.StateOrphaned:
		return styles.Warn()
	case githook.StateMissing:
		return styles.Fail()
	default:
		return styles.None()
	}
}
