package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/charmbracelet/lipgloss"

	"github.com/treetop-tui/treetop/internal/proc"
	"github.com/treetop-tui/treetop/internal/tree"
)

// renderRow renders one process line: stats block, separator, cursor
// marker, tree prefix, and the command with match and selection styling.
func (m Model) renderRow(row tree.Row[*proc.Record, int32], isCursor bool) string {
	r := row.Node.Value

	var b strings.Builder
	b.WriteString(m.renderPID(r))
	b.WriteString(fmt.Sprintf(" %4.0f%% ", r.CPUPercent))
	b.WriteString(fmt.Sprintf("%7sMB", humanize.Comma(int64(r.MemoryBytes>>20))))
	b.WriteString(" ┃ ")

	if isCursor {
		b.WriteString(m.styles.Cursor.Render(" ▶ "))
	} else {
		b.WriteString("   ")
	}
	b.WriteString(m.styles.TreePrefix.Render(row.Prefix))

	consumed := statsWidth + 3 + 3 + runewidth.StringWidth(row.Prefix)
	b.WriteString(renderSpans(m.commandSpans(r), m.width-consumed))
	return b.String()
}

// renderPID right-aligns the pid to 8 columns, overlaying match ranges on
// the decimal digits themselves.
func (m Model) renderPID(r *proc.Record) string {
	digits := strconv.FormatInt(int64(r.PID), 10)
	spans := overlayRanges(
		[]Span{{Text: digits}},
		r.Match.RangesIn(proc.FieldPID),
		m.styles.Highlight,
	)
	pad := 8 - len(digits)
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + renderSpans(spans, len(digits))
}

// commandSpans builds the styled command text: the selected process gets
// the selection base style, match ranges get the highlight overlaid on top.
func (m Model) commandSpans(r *proc.Record) []Span {
	var base lipgloss.Style
	if m.mode == modeSelected && r.PID == m.selectedPID {
		base = m.styles.Selected
	}
	spans := []Span{{Text: r.Command(), Style: base}}
	return overlayRanges(spans, r.Match.RangesIn(proc.FieldCommand), m.styles.Highlight)
}

// renderSpans renders spans left to right, truncating at maxWidth columns.
func renderSpans(spans []Span, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	var b strings.Builder
	remaining := maxWidth
	for _, sp := range spans {
		text := runewidth.Truncate(sp.Text, remaining, "")
		if text == "" {
			break
		}
		b.WriteString(sp.Style.Render(text))
		remaining -= runewidth.StringWidth(text)
		if remaining <= 0 {
			break
		}
	}
	return b.String()
}
