package app

// Layout computes the dimensions for each panel.
type Layout struct {
	OutlineWidth int
	DocWidth     int
	Height       int
	StatusHeight int
}

// ComputeLayout calculates panel dimensions based on total width/height
// and whether the document panel is visible. Without it the outline takes
// the full width.
func ComputeLayout(totalWidth, totalHeight int, showDoc bool, outlineWidth int) Layout {
	// During live resizes some terminals momentarily report 0 (or even negative)
	// dimensions; clamp to avoid propagating invalid sizes into panels.
	if totalWidth < 1 {
		totalWidth = 1
	}
	if totalHeight < 2 { // need at least 1 row for content + 1 for status
		totalHeight = 2
	}

	l := Layout{
		StatusHeight: 1,
		Height:       totalHeight - 1, // reserve 1 row for status bar
	}

	if !showDoc {
		l.OutlineWidth = totalWidth
		return l
	}

	l.OutlineWidth = outlineWidth
	if l.OutlineWidth > totalWidth/2 {
		l.OutlineWidth = totalWidth / 2
	}
	l.DocWidth = totalWidth - l.OutlineWidth
	if l.DocWidth < 1 {
		l.DocWidth = 1
	}

	return l
}
