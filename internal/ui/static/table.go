// Package static renders non-interactive terminal output such as tables.
package static

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/raphi011/hooksmith/internal/ui/styles"
)

// columnGap separates table columns.
const columnGap = 2

// RenderTable renders headers and rows as borderless, left-aligned columns
// ending in a newline. Headers use the current theme's muted bold style.
// The last column is not padded, so lines carry no trailing blanks.
// Returns "" when there are no rows.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	last := len(headers) - 1
	header := styles.MutedStyle.Bold(true)

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle()
			if row == table.HeaderRow {
				s = header
			}
			if col < last {
				s = s.PaddingRight(columnGap)
			}
			return s
		})

	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(t.String(), "\n"), "\n") {
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteByte('\n')
	}
	return b.String()
}
