package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading process table..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())

	rows := m.rows()
	height := m.listHeight()
	cursor, offset := normalizeViewport(m.cursor, m.offset, len(rows), height)
	for i := 0; i < height; i++ {
		idx := offset + i
		if idx < len(rows) {
			b.WriteString(m.renderRow(rows[idx], idx == cursor))
		}
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString(m.styles.ErrorLine.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(m.renderStatus())
	return b.String()
}

// renderStatus renders the bottom line for the current mode.
func (m Model) renderStatus() string {
	var b strings.Builder

	switch m.mode {
	case modeEditing:
		b.WriteString(m.styles.StatusEditing.Render(" search "))
		b.WriteString(" /")
		b.WriteString(m.patternInput.View())
		if m.pat.IsInvalid() {
			b.WriteString("  (invalid)")
		}
		b.WriteString("  ")
		b.WriteString(hints(m.keys.Select, m.keys.Escape))

	case modeSelected:
		b.WriteString(m.styles.StatusSelected.Render(fmt.Sprintf(" pid %d ", m.selectedPID)))
		b.WriteString("  ")
		b.WriteString(hints(m.keys.Term, m.keys.Kill, m.keys.Escape))

	default:
		b.WriteString(m.styles.StatusNormal.Render(" treetop "))
		b.WriteString("  sort: ")
		b.WriteString(m.sortKey.String())
		if text := m.pat.Text(); text != "" {
			fmt.Fprintf(&b, "  pattern: %q", text)
			if m.pat.IsInvalid() {
				b.WriteString(" (invalid)")
			}
		}
		b.WriteString("  ")
		b.WriteString(hints(m.keys.Search, m.keys.CycleSort, m.keys.Select, m.keys.Quit))
	}

	if m.stale {
		b.WriteString("  ")
		b.WriteString(m.styles.Stale.Render("stale"))
	}
	return b.String()
}

func hints(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
