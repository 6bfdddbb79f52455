package ui

import "github.com/charmbracelet/lipgloss"

// Styles collects the Lipgloss styles the renderer uses. Kept in one place
// so tests and the renderer agree on how matches and selection look.
type Styles struct {
	// ActiveColumn marks the sort column in the header.
	ActiveColumn lipgloss.Style
	// Rule draws the vertical and horizontal separators of the header area.
	Rule lipgloss.Style
	// TreePrefix styles the tree-drawing glyphs in front of each command.
	TreePrefix lipgloss.Style
	// Selected styles the command of the process the operator has selected.
	Selected lipgloss.Style
	// Highlight is overlaid onto pattern-match ranges.
	Highlight lipgloss.Style
	// Cursor marks the row under the selection cursor.
	Cursor lipgloss.Style

	StatusNormal   lipgloss.Style
	StatusEditing  lipgloss.Style
	StatusSelected lipgloss.Style
	ErrorLine      lipgloss.Style
	Stale          lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		ActiveColumn: lipgloss.NewStyle().Reverse(true),
		Rule:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		TreePrefix:   lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		Selected:     lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Reverse(true),
		Highlight:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Underline(true),
		Cursor:       lipgloss.NewStyle().Bold(true),

		StatusNormal:   lipgloss.NewStyle().Reverse(true),
		StatusEditing:  lipgloss.NewStyle().Reverse(true).Foreground(lipgloss.Color("3")),
		StatusSelected: lipgloss.NewStyle().Reverse(true).Foreground(lipgloss.Color("4")),
		ErrorLine:      lipgloss.NewStyle().Reverse(true).Bold(true).Foreground(lipgloss.Color("1")),
		Stale:          lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}
