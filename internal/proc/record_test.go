package proc

import (
	"testing"

	"github.com/treetop-tui/treetop/internal/pattern"
)

func testRecord(pid int32, name string, args ...string) *Record {
	return &Record{PID: pid, Name: name, Args: args}
}

func TestCommandJoinsNameAndArguments(t *testing.T) {
	if got := testRecord(1, "nginx").Command(); got != "nginx" {
		t.Fatalf("Command() = %q, want nginx", got)
	}
	if got := testRecord(1, "sh", "-c", "sleep 1").Command(); got != "sh -c sleep 1" {
		t.Fatalf("Command() = %q, want sh -c sleep 1", got)
	}
}

func TestUpdateMatchEmptyPattern(t *testing.T) {
	r := testRecord(42, "name")
	r.UpdateMatch(pattern.FromText(""), 1, false)
	if !r.Match.Visible() {
		t.Fatal("empty pattern should leave the record visible")
	}
	if len(r.Match.Ranges()) != 0 {
		t.Fatalf("empty pattern should carry no ranges, got %v", r.Match.Ranges())
	}
}

func TestUpdateMatchConsidersArguments(t *testing.T) {
	tests := []struct {
		name    string
		record  *Record
		text    string
		visible bool
	}{
		{"argument match", testRecord(1, "name", "foo"), "foo", true},
		{"no match", testRecord(1, "name", "foo"), "bar", false},
		{"substring", testRecord(1, "name", "foobarbaz"), "bar", true},
		{"regex across arguments", testRecord(1, "name", "foo", "bar"), "fo.*ar", true},
		{"space joins arguments", testRecord(1, "name", "foo", "bar"), "foo bar", true},
		{"space joins name and argument", testRecord(1, "foo", "bar"), "foo bar", true},
		{"invalid pattern matches nothing", testRecord(1, "a(b"), "a(b", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.record.UpdateMatch(pattern.FromText(tt.text), 0, false)
			if got := tt.record.Match.Visible(); got != tt.visible {
				t.Errorf("Visible() = %v, want %v", got, tt.visible)
			}
		})
	}
}

func TestUpdateMatchByPID(t *testing.T) {
	r := testRecord(1234, "name")
	r.UpdateMatch(pattern.FromText("23"), 0, false)
	ranges := r.Match.Ranges()
	if len(ranges) != 1 || ranges[0].Field != FieldPID {
		t.Fatalf("ranges = %v, want one FieldPID range", ranges)
	}
	if ranges[0].Start != 1 || ranges[0].End != 3 {
		t.Fatalf("range = [%d, %d), want [1, 3)", ranges[0].Start, ranges[0].End)
	}
}

func TestUpdateMatchHidesSelfForArgumentMatches(t *testing.T) {
	const selfPID = 42
	record := func() *Record { return testRecord(selfPID, "treetop", "foo") }

	// Matched only via its own argument: hidden.
	r := record()
	r.UpdateMatch(pattern.FromText("foo"), selfPID, false)
	if r.Match.Visible() {
		t.Fatal("self record matched on arguments should be hidden")
	}

	// Same match on a different process: visible.
	r = record()
	r.UpdateMatch(pattern.FromText("foo"), selfPID+1, false)
	if !r.Match.Visible() {
		t.Fatal("other processes are never self-hidden")
	}

	// Match confined to the display name: visible.
	r = record()
	r.UpdateMatch(pattern.FromText("treetop"), selfPID, false)
	if !r.Match.Visible() {
		t.Fatal("name-confined match should show the self record")
	}
	ranges := r.Match.Ranges()
	if len(ranges) != 1 || ranges[0].Field != FieldCommand || ranges[0].Start != 0 || ranges[0].End != len("treetop") {
		t.Fatalf("ranges = %v, want a command range covering the name", ranges)
	}

	// PID match: visible.
	r = record()
	r.UpdateMatch(pattern.FromText("42"), selfPID, false)
	if !r.Match.Visible() {
		t.Fatal("pid match should show the self record")
	}

	// Policy disabled: visible even on argument matches.
	r = record()
	r.UpdateMatch(pattern.FromText("foo"), selfPID, true)
	if !r.Match.Visible() {
		t.Fatal("dont-hide-self should show the self record")
	}
}

func TestCompare(t *testing.T) {
	a := &Record{PID: 1, CPUPercent: 1.0, MemoryBytes: 10}
	b := &Record{PID: 2, CPUPercent: 4.0, MemoryBytes: 10}

	if a.Compare(b, SortPID) >= 0 || b.Compare(a, SortPID) <= 0 {
		t.Fatal("SortPID should order ascending by pid")
	}
	if b.Compare(a, SortCPU) >= 0 {
		t.Fatal("SortCPU should order descending by cpu")
	}
	// Equal memory: ties break by ascending pid.
	if a.Compare(b, SortRAM) >= 0 {
		t.Fatal("SortRAM ties should break by ascending pid")
	}
	if a.Compare(a, SortCPU) != 0 {
		t.Fatal("a record compares equal to itself")
	}
}

func TestSortKeyCycle(t *testing.T) {
	if SortPID.Next() != SortCPU || SortCPU.Next() != SortRAM || SortRAM.Next() != SortPID {
		t.Fatal("sort keys should cycle pid → cpu → ram → pid")
	}
}

func TestAccumulateFrom(t *testing.T) {
	a := &Record{PID: 5, Name: "first", CPUPercent: 1.5, MemoryBytes: 100}
	a.AccumulateFrom(&Record{PID: 5, Name: "second", CPUPercent: 0.5, MemoryBytes: 20})
	if a.CPUPercent != 2.0 || a.MemoryBytes != 120 {
		t.Fatalf("metrics = (%v, %d), want (2.0, 120)", a.CPUPercent, a.MemoryBytes)
	}
	if a.Name != "first" {
		t.Fatalf("first-seen name should be kept, got %q", a.Name)
	}
}

func TestRangesIn(t *testing.T) {
	s := VisibleMatches([]MatchRange{
		{Field: FieldPID, Start: 0, End: 2},
		{Field: FieldCommand, Start: 3, End: 7},
	})
	if got := s.RangesIn(FieldCommand); len(got) != 1 || got[0] != [2]int{3, 7} {
		t.Fatalf("RangesIn(FieldCommand) = %v, want [[3 7]]", got)
	}
	if got := s.RangesIn(FieldPID); len(got) != 1 || got[0] != [2]int{0, 2} {
		t.Fatalf("RangesIn(FieldPID) = %v, want [[0 2]]", got)
	}
}
