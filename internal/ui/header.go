package ui

import (
	"strings"

	"github.com/treetop-tui/treetop/internal/proc"
)

const (
	// statsWidth is the fixed width of the pid/cpu/ram column block:
	// "%8s %4.0f%% %7sMB" rendered by renderRow.
	statsWidth = 24

	// headerHeight is the label line plus the rule line.
	headerHeight = 2
)

// renderHeader renders the column labels and the horizontal rule. The label
// of the active sort column is emphasized.
func (m Model) renderHeader() string {
	var b strings.Builder

	b.WriteString(headerCell("pid", 8, m.sortKey == proc.SortPID, m.styles))
	b.WriteString(" ")
	b.WriteString(headerCell("cpu", 5, m.sortKey == proc.SortCPU, m.styles))
	b.WriteString(" ")
	b.WriteString(headerCell("ram", 9, m.sortKey == proc.SortRAM, m.styles))
	b.WriteString(" ┃ executable\n")

	rest := m.width - statsWidth - 2
	if rest < 0 {
		rest = 0
	}
	rule := strings.Repeat("━", statsWidth+1) + "╋" + strings.Repeat("━", rest)
	b.WriteString(m.styles.Rule.Render(rule))
	b.WriteString("\n")
	return b.String()
}

// headerCell right-aligns label in a cell of the given width, styling only
// the label text so the padding stays plain.
func headerCell(label string, width int, active bool, styles Styles) string {
	pad := width - len(label)
	if pad < 0 {
		pad = 0
	}
	cell := strings.Repeat(" ", pad)
	if active {
		return cell + styles.ActiveColumn.Render(label)
	}
	return cell + label
}
