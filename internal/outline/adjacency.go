package outline

// HasChildren reports whether the heading right after i is deeper than i.
func HasChildren(i int, headings []Heading) bool {
	if i < 0 || i >= len(headings)-1 {
		return false
	}
	return headings[i+1].Level > headings[i].Level
}

// ChildIndices returns the indices of every descendant of i: the run of
// headings after i that are deeper than it. Out-of-range i returns nil.
func ChildIndices(i int, headings []Heading) []int {
	if i < 0 || i >= len(headings) {
		return nil
	}
	level := headings[i].Level
	var children []int
	for j := i + 1; j < len(headings) && headings[j].Level > level; j++ {
		children = append(children, j)
	}
	return children
}

// Parent returns the index of the nearest heading before i that is shallower
// than it, or -1. With skipLevel1 set, H1 headings never count as parents.
func Parent(i int, headings []Heading, skipLevel1 bool) int {
	if i <= 0 || i >= len(headings) {
		return -1
	}
	return parentBelow(i, headings[i].Level, headings, skipLevel1)
}

func parentBelow(i, level int, headings []Heading, skipLevel1 bool) int {
	for j := i - 1; j >= 0; j-- {
		l := headings[j].Level
		if skipLevel1 && l == 1 {
			continue
		}
		if l < level {
			return j
		}
	}
	return -1
}

// SameParent reports whether i and j hang off the same ancestor, measured at
// the level of i. Two top-level headings share the (absent) root.
func SameParent(i, j int, headings []Heading, skipLevel1 bool) bool {
	if i < 0 || j < 0 || i >= len(headings) || j >= len(headings) {
		return false
	}
	level := headings[i].Level
	return parentBelow(i, level, headings, skipLevel1) == parentBelow(j, level, headings, skipLevel1)
}
