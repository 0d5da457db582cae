package outline

import "math"

// ClosestAtOrBefore returns the index of the last heading starting at or
// before line, or -1 when line precedes every heading.
func ClosestAtOrBefore(headings []Heading, line int) int {
	left, right := 0, len(headings)-1
	for left <= right {
		mid := left + (right-left)/2
		switch s := headings[mid].StartLine; {
		case s == line:
			return mid
		case s < line:
			left = mid + 1
		default:
			right = mid - 1
		}
	}
	return right
}

// LastAtOrBefore scans forward for the last heading starting at or before
// cursor. It agrees with ClosestAtOrBefore and is used for cursor-driven
// hosts where the list is short and already in cache.
func LastAtOrBefore(headings []Heading, cursor int) int {
	idx := -1
	for i, h := range headings {
		if h.StartLine > cursor {
			break
		}
		idx = i
	}
	return idx
}

// NextAfter returns the first heading starting after line, wrapping to the
// first heading.
func NextAfter(headings []Heading, line int) int {
	if len(headings) == 0 {
		return -1
	}
	for i, h := range headings {
		if h.StartLine > line {
			return i
		}
	}
	return 0
}

// PrevBefore returns the last heading starting before line, wrapping to the
// last heading.
func PrevBefore(headings []Heading, line int) int {
	if len(headings) == 0 {
		return -1
	}
	for i := len(headings) - 1; i >= 0; i-- {
		if headings[i].StartLine < line {
			return i
		}
	}
	return len(headings) - 1
}

// StepFrom moves delta headings from current among n, wrapping around both
// ends. With no current heading, stepping forward lands on the first heading
// and stepping back on the last.
func StepFrom(n, current, delta int) int {
	if n == 0 {
		return -1
	}
	if current < 0 {
		current = -1
		if delta < 0 {
			current = 0
		}
	}
	next := (current + delta) % n
	if next < 0 {
		next += n
	}
	return next
}

// Progress returns how far through a document of lines lines the position
// is, as a whole percentage clamped to 0..100. A document of at most one
// line counts as read.
func Progress(position float64, lines int) int {
	if lines <= 1 {
		return 100
	}
	p := position / float64(lines-1) * 100
	return int(math.Round(math.Min(math.Max(p, 0), 100)))
}
