// Package outline turns a flat, ordered list of document headings into a
// navigable hierarchy: depths, numbers, visibility under collapse, and the
// heading nearest a document position.
//
// Every function is a pure function of its inputs. Callers recompute the
// whole outline whenever the heading list changes.
package outline

import "fmt"

// Heading is a single document heading.
type Heading struct {
	Level     int    // 1-6
	Text      string // display text, opaque to this package
	StartLine int    // 0-based source line
}

// Validate reports the first heading that breaks the list invariants:
// levels in 1..6 and strictly increasing start lines. The other functions in
// this package do not call it and never panic on invalid input.
func Validate(headings []Heading) error {
	for i, h := range headings {
		if h.Level < 1 || h.Level > 6 {
			return fmt.Errorf("heading %d: level %d out of range", i, h.Level)
		}
		if h.StartLine < 0 {
			return fmt.Errorf("heading %d: negative start line %d", i, h.StartLine)
		}
		if i > 0 && h.StartLine <= headings[i-1].StartLine {
			return fmt.Errorf("heading %d: start line %d not after %d", i, h.StartLine, headings[i-1].StartLine)
		}
	}
	return nil
}

// Levels builds a heading list from levels alone, one line per heading.
// Mostly useful in tests and for quick previews.
func Levels(levels ...int) []Heading {
	hs := make([]Heading, len(levels))
	for i, l := range levels {
		hs[i] = Heading{Level: l, Text: fmt.Sprintf("h%d", i), StartLine: i}
	}
	return hs
}

// FilterLevels keeps the headings whose level lies in lo..hi. A bound of
// zero or less leaves that side open. The input is returned as is when
// nothing falls outside the range.
func FilterLevels(headings []Heading, lo, hi int) []Heading {
	if lo <= 1 && (hi <= 0 || hi >= 6) {
		return headings
	}
	if hi <= 0 {
		hi = 6
	}
	out := make([]Heading, 0, len(headings))
	for _, h := range headings {
		if h.Level >= lo && h.Level <= hi {
			out = append(out, h)
		}
	}
	return out
}
