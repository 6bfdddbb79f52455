package ui

import "github.com/charmbracelet/lipgloss"

// Span is a run of text carrying one style. A row is rendered as an ordered
// sequence of spans whose concatenated text forms the logical line.
type Span struct {
	Text  string
	Style lipgloss.Style
}

// overlayRanges returns a new span sequence in which every byte range
// (expressed against the concatenation of the input spans) additionally
// carries the highlight style. Ranges are applied sequentially, each against
// the spans produced by the previous pass, so multiple ranges compose even
// when they touch different spans or overlap. Ranges reaching past the
// content are clamped; ranges fully outside it change nothing. Content,
// span order, and pre-existing styles are preserved: the highlight style is
// merged onto a matched sub-span, never substituted for its style.
func overlayRanges(spans []Span, ranges [][2]int, highlight lipgloss.Style) []Span {
	out := spans
	for _, rng := range ranges {
		total := 0
		for _, sp := range out {
			total += len(sp.Text)
		}
		start, end := rng[0], rng[1]
		if end > total {
			end = total
		}
		if start < 0 || start >= end {
			continue
		}
		out = applyRange(out, start, end, highlight)
	}
	return out
}

// applyRange walks the spans once, splitting any span intersecting
// [start, end) into up to three sub-spans and dropping empty ones.
func applyRange(spans []Span, start, end int, highlight lipgloss.Style) []Span {
	out := make([]Span, 0, len(spans)+2)
	pos := 0
	for _, sp := range spans {
		spStart, spEnd := pos, pos+len(sp.Text)
		pos = spEnd
		if spEnd <= start || spStart >= end {
			out = append(out, sp)
			continue
		}
		lo := max(start, spStart) - spStart
		hi := min(end, spEnd) - spStart
		if lo > 0 {
			out = append(out, Span{Text: sp.Text[:lo], Style: sp.Style})
		}
		out = append(out, Span{Text: sp.Text[lo:hi], Style: highlight.Inherit(sp.Style)})
		if hi < len(sp.Text) {
			out = append(out, Span{Text: sp.Text[hi:], Style: sp.Style})
		}
	}
	return out
}

// spanText concatenates the content of a span sequence.
func spanText(spans []Span) string {
	var out string
	for _, sp := range spans {
		out += sp.Text
	}
	return out
}
