// Package pattern wraps the regular-expression search term that drives
// process filtering. A pattern is always in one of three states: empty,
// compiled, or invalid. Invalid text is kept verbatim so interactive editing
// can continue; until corrected it simply matches nothing.
package pattern

import "regexp"

type state int

const (
	stateEmpty state = iota
	stateCompiled
	stateInvalid
)

// Pattern is an immutable search term. The zero value is the empty pattern.
type Pattern struct {
	state state
	text  string
	re    *regexp.Regexp
}

// FromText builds a Pattern from raw text. Empty text yields the empty
// pattern; text that does not compile as a regular expression yields an
// invalid pattern. FromText never fails.
func FromText(text string) Pattern {
	if text == "" {
		return Pattern{}
	}
	re, err := regexp.Compile(text)
	if err != nil {
		return Pattern{state: stateInvalid, text: text}
	}
	return Pattern{state: stateCompiled, text: text, re: re}
}

// IsEmpty reports whether the pattern has no text at all.
func (p Pattern) IsEmpty() bool { return p.state == stateEmpty }

// IsInvalid reports whether the pattern text failed to compile.
func (p Pattern) IsInvalid() bool { return p.state == stateInvalid }

// Text returns the pattern's textual representation, valid or not.
func (p Pattern) Text() string { return p.text }

// FindFirst returns the byte range of the leftmost match in s. Empty and
// invalid patterns match nothing.
func (p Pattern) FindFirst(s string) (start, end int, ok bool) {
	if p.state != stateCompiled {
		return 0, 0, false
	}
	loc := p.re.FindStringIndex(s)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}

// Edit applies a text transform to the pattern's textual representation and
// recompiles, transitioning between states as needed.
func (p Pattern) Edit(transform func(string) string) Pattern {
	return FromText(transform(p.text))
}
