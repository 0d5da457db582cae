package outline

import (
	"strconv"
	"strings"
)

// Numbers returns the dotted outline number for every heading, e.g. "1.2.1.".
//
// With skipLevel1 set, H1 headings get an empty number and do not affect the
// numbering of anything else, so the H2s of a titled document become the
// top-level entries.
//
// A deeper heading opens one counter no matter how many levels it skips. A
// shallower one closes as many counters as its level is above the previous
// heading's, then counts on from the counter left on top, or starts a new
// one at 1 when none is left.
func Numbers(headings []Heading, skipLevel1 bool) []string {
	numbers := make([]string, len(headings))
	var stack []int
	prev := 0
	parts := make([]string, 0, 6)

	for i, h := range headings {
		if skipLevel1 && h.Level == 1 {
			continue
		}

		switch {
		case len(stack) == 0 || h.Level > prev:
			stack = append(stack, 1)
		case h.Level == prev:
			stack[len(stack)-1]++
		default:
			stack = stack[:max(len(stack)-(prev-h.Level), 0)]
			if len(stack) == 0 {
				stack = append(stack, 1)
			} else {
				stack[len(stack)-1]++
			}
		}
		prev = h.Level

		parts = parts[:0]
		for _, c := range stack {
			parts = append(parts, strconv.Itoa(c))
		}
		numbers[i] = strings.Join(parts, ".") + "."
	}
	return numbers
}
