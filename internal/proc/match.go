package proc

// MatchField names the search subject a match range points into.
type MatchField int

const (
	// FieldPID means the range is relative to the PID rendered as decimal text.
	FieldPID MatchField = iota
	// FieldCommand means the range is relative to Record.Command().
	FieldCommand
)

// MatchRange is a half-open byte range [Start, End) within one search subject.
type MatchRange struct {
	Field      MatchField
	Start, End int
}

// MatchState is the outcome of matching one record against the current
// pattern: not searching at all (empty pattern), hidden (searching, no
// matches), or visible with the ranges to highlight.
type MatchState struct {
	searching bool
	ranges    []MatchRange
}

// NotSearching is the state under the empty pattern: the record is visible
// and nothing is highlighted. It is also the zero value.
func NotSearching() MatchState { return MatchState{} }

// Hidden is the state of a record a non-empty pattern did not match.
func Hidden() MatchState { return MatchState{searching: true} }

// VisibleMatches is the state of a matched record.
func VisibleMatches(ranges []MatchRange) MatchState {
	return MatchState{searching: true, ranges: ranges}
}

// Visible reports whether the record should appear in the filtered forest.
func (s MatchState) Visible() bool { return !s.searching || len(s.ranges) > 0 }

// Ranges returns the highlight ranges, nil unless the state is visible with
// matches.
func (s MatchState) Ranges() []MatchRange { return s.ranges }

// RangesIn returns the highlight ranges pointing into the given field.
func (s MatchState) RangesIn(field MatchField) [][2]int {
	var out [][2]int
	for _, r := range s.ranges {
		if r.Field == field {
			out = append(out, [2]int{r.Start, r.End})
		}
	}
	return out
}
