package outline

// Visibility returns whether each heading is shown under the given collapse
// state. A heading is hidden exactly when one of its ancestors is collapsed;
// collapsing a heading never hides the heading itself. With skipLevel1 set,
// H1 headings are hidden and ignored for ancestry.
func Visibility(headings []Heading, collapsed map[int]bool, skipLevel1 bool) []bool {
	visible := make([]bool, len(headings))
	// Levels of collapsed ancestors still open at the current position.
	var stack []int
	for i, h := range headings {
		if skipLevel1 && h.Level == 1 {
			continue
		}
		for len(stack) > 0 && stack[len(stack)-1] >= h.Level {
			stack = stack[:len(stack)-1]
		}
		visible[i] = len(stack) == 0
		if collapsed[i] {
			stack = append(stack, h.Level)
		}
	}
	return visible
}

// ShouldShow reports whether an outline is worth displaying at all.
func ShouldShow(headings []Heading, skipLevel1, showWhenSingle bool) bool {
	if len(headings) == 0 {
		return false
	}
	count := len(headings)
	if skipLevel1 {
		count = 0
		for _, h := range headings {
			if h.Level != 1 {
				count++
			}
		}
		if count == 0 {
			return false
		}
	}
	if !showWhenSingle && count <= 1 {
		return false
	}
	return true
}

// Collapsible returns the indices of headings that have children.
func Collapsible(headings []Heading) []int {
	var idx []int
	for i := range headings {
		if HasChildren(i, headings) {
			idx = append(idx, i)
		}
	}
	return idx
}
