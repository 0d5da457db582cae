package outline

// ActualDepth returns the nesting depth of headings[i], counting only the
// shallower levels that actually open above it. An H1 followed directly by an
// H4 puts the H4 at depth 1, not 3.
//
// The scan walks backwards from i-1, counting each new minimum level below
// the heading's own level.
func ActualDepth(i int, headings []Heading) int {
	if i <= 0 || i >= len(headings) {
		return 0
	}
	level := headings[i].Level
	minLevel := level
	depth := 0
	for j := i - 1; j >= 0; j-- {
		l := headings[j].Level
		if l < level && l < minLevel {
			depth++
			minLevel = l
		}
	}
	return depth
}

// Depths returns ActualDepth for every heading in a single pass.
func Depths(headings []Heading) []int {
	depths := make([]int, len(headings))
	// Levels of the open ancestors, strictly increasing from bottom to top.
	var stack []int
	for i, h := range headings {
		for len(stack) > 0 && stack[len(stack)-1] >= h.Level {
			stack = stack[:len(stack)-1]
		}
		depths[i] = len(stack)
		stack = append(stack, h.Level)
	}
	return depths
}
