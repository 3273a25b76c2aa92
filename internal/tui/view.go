package tui

import (
	"fmt"
	"strings"

	"github.com/junyuh/titlesift/internal/tui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("titlesift"))
	b.WriteString("\n")

	box := styles.RuleBox
	if m.pending {
		box = styles.RuleBoxActive
	}
	b.WriteString(box.Render(m.input.View()))
	b.WriteString("\n")

	rows := m.visibleRows()
	budget := m.rowBudget()
	start := m.scroll
	if start > len(rows) {
		start = len(rows)
	}
	end := start + budget
	if end > len(rows) {
		end = len(rows)
	}
	for _, title := range rows[start:end] {
		b.WriteString(styles.Row.Render(title))
		b.WriteString("\n")
	}
	if len(rows) == 0 {
		b.WriteString(styles.Muted.Render("(no matching titles)"))
		b.WriteString("\n")
	}

	b.WriteString(m.statusLine(len(rows), start, end))
	return b.String()
}

func (m Model) statusLine(shown, start, end int) string {
	status := fmt.Sprintf("%d/%d shown", shown, len(m.candidates))
	if shown > end-start {
		status += fmt.Sprintf("  rows %d-%d", start+1, end)
	}
	if m.err != nil {
		return styles.StatusBar.Render(status) + "  " +
			styles.Error.Render("conversion error: "+m.err.Error())
	}
	return styles.StatusBar.Render(status + "  [esc] quit")
}
