// Package proc defines the process snapshot record, its pattern-match state,
// the sort keys of the process table, and the two OS collaborators: the
// gopsutil-backed process source and signal delivery.
package proc

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/treetop-tui/treetop/internal/pattern"
)

// Record is a point-in-time snapshot of one OS process. Records are rebuilt
// wholesale on every refresh; PIDs must never be correlated across refreshes.
type Record struct {
	PID         int32
	Name        string
	Args        []string
	ParentPID   int32 // 0 when the process has no parent in this snapshot
	CPUPercent  float64
	MemoryBytes uint64
	Match       MatchState
}

// ID implements tree.Item.
func (r *Record) ID() int32 { return r.PID }

// ParentID implements tree.Item. The returned PID may be absent from the
// snapshot; the forest treats such records as roots.
func (r *Record) ParentID() (int32, bool) { return r.ParentPID, r.ParentPID > 0 }

// AccumulateFrom implements tree.Item: a duplicate-identity record folds its
// resource metrics into the first-seen one. Duplicates are a defensive case
// for malformed enumerations, not something /proc normally produces.
func (r *Record) AccumulateFrom(other *Record) {
	r.CPUPercent += other.CPUPercent
	r.MemoryBytes += other.MemoryBytes
}

// Command returns the display name followed by each argument, space-joined.
// This is the subject string command matches are expressed against, and also
// exactly what the row renderer prints.
func (r *Record) Command() string {
	if len(r.Args) == 0 {
		return r.Name
	}
	var b strings.Builder
	b.WriteString(r.Name)
	for _, arg := range r.Args {
		b.WriteByte(' ')
		b.WriteString(arg)
	}
	return b.String()
}

// UpdateMatch recomputes the record's match state against pat. selfPID is the
// viewer's own PID, passed in explicitly so matching stays pure and testable.
//
// By default the viewer hides its own row when the match only touches its
// arguments: the search term is usually also the viewer's own command-line
// argument, and matching on it would pin the viewer into every filtered
// view. dontHideSelf disables that policy. Matches confined to the display
// name, and PID matches, always count.
func (r *Record) UpdateMatch(pat pattern.Pattern, selfPID int32, dontHideSelf bool) {
	if pat.IsEmpty() {
		r.Match = NotSearching()
		return
	}
	ranges := r.findMatches(pat, selfPID, dontHideSelf)
	if len(ranges) == 0 {
		r.Match = Hidden()
		return
	}
	r.Match = VisibleMatches(ranges)
}

func (r *Record) findMatches(pat pattern.Pattern, selfPID int32, dontHideSelf bool) []MatchRange {
	var ranges []MatchRange
	if start, end, ok := pat.FindFirst(strconv.Itoa(int(r.PID))); ok {
		ranges = append(ranges, MatchRange{Field: FieldPID, Start: start, End: end})
	}
	if start, end, ok := pat.FindFirst(r.Command()); ok {
		hideSelf := r.PID == selfPID && !dontHideSelf && end > len(r.Name)
		if !hideSelf {
			ranges = append(ranges, MatchRange{Field: FieldCommand, Start: start, End: end})
		}
	}
	return ranges
}

// Compare orders two records by the given sort key: PID ascending, CPU and
// memory descending. Ties always break by ascending PID so every key yields
// a total, deterministic order.
func (r *Record) Compare(other *Record, key SortKey) int {
	switch key {
	case SortCPU:
		if c := cmp.Compare(other.CPUPercent, r.CPUPercent); c != 0 {
			return c
		}
	case SortRAM:
		if c := cmp.Compare(other.MemoryBytes, r.MemoryBytes); c != 0 {
			return c
		}
	}
	return cmp.Compare(r.PID, other.PID)
}
