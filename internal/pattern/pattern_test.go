package pattern

import "testing"

func TestFromTextStates(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		empty   bool
		invalid bool
	}{
		{"empty", "", true, false},
		{"plain text", "firefox", false, false},
		{"regex", "fo.*ar", false, false},
		{"unclosed group", "a(b", false, true},
		{"bad repetition", "*", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := FromText(tt.text)
			if p.IsEmpty() != tt.empty {
				t.Errorf("IsEmpty() = %v, want %v", p.IsEmpty(), tt.empty)
			}
			if p.IsInvalid() != tt.invalid {
				t.Errorf("IsInvalid() = %v, want %v", p.IsInvalid(), tt.invalid)
			}
			if p.Text() != tt.text {
				t.Errorf("Text() = %q, want %q", p.Text(), tt.text)
			}
		})
	}
}

func TestFindFirst(t *testing.T) {
	start, end, ok := FromText("bar").FindFirst("foobarbaz")
	if !ok || start != 3 || end != 6 {
		t.Fatalf("FindFirst = (%d, %d, %v), want (3, 6, true)", start, end, ok)
	}
	if _, _, ok := FromText("bar").FindFirst("qux"); ok {
		t.Fatal("FindFirst should not match qux")
	}
	if _, _, ok := FromText("").FindFirst("anything"); ok {
		t.Fatal("empty pattern should match nothing")
	}
	if _, _, ok := FromText("a(b").FindFirst("a(b"); ok {
		t.Fatal("invalid pattern should match nothing")
	}
}

func TestFindFirstIsLeftmost(t *testing.T) {
	start, end, ok := FromText("o").FindFirst("foo")
	if !ok || start != 1 || end != 2 {
		t.Fatalf("FindFirst = (%d, %d, %v), want leftmost (1, 2, true)", start, end, ok)
	}
}

func TestEditTransitions(t *testing.T) {
	p := FromText("")
	p = p.Edit(func(s string) string { return s + "a(" })
	if !p.IsInvalid() {
		t.Fatalf("pattern %q should be invalid", p.Text())
	}
	p = p.Edit(func(s string) string { return s + "b)" })
	if p.IsInvalid() || p.IsEmpty() {
		t.Fatalf("pattern %q should be compiled", p.Text())
	}
	if p.Text() != "a(b)" {
		t.Fatalf("Text() = %q, want a(b)", p.Text())
	}
	p = p.Edit(func(string) string { return "" })
	if !p.IsEmpty() {
		t.Fatal("editing to empty text should yield the empty pattern")
	}
}
