package theme

import "github.com/charmbracelet/lipgloss"

// FromExtracted maps raw Neovim highlight group colors onto a Theme.
// The colors map uses highlight group names as keys and [fg, bg] hex strings
// as values (empty string means the group didn't define that attribute).
// Any field without a corresponding extracted color keeps the base value.
func FromExtracted(colors map[string][2]string, base Theme) Theme {
	t := base

	if c := bg(colors, "Normal"); isSet(c) {
		t.Bg = lipgloss.Color(c)
	}
	if c := fg(colors, "Normal"); isSet(c) {
		t.Text = lipgloss.Color(c)
	}

	// Accent: prefer Title, fall back to Directory
	if c := fg(colors, "Title"); isSet(c) {
		t.Accent = lipgloss.Color(c)
	} else if c := fg(colors, "Directory"); isSet(c) {
		t.Accent = lipgloss.Color(c)
	}

	if c := fg(colors, "Directory"); isSet(c) {
		t.Marker = lipgloss.Color(c)
	}

	if c := fg(colors, "CursorLineNr"); isSet(c) {
		t.Number = lipgloss.Color(c)
	}

	if c := fg(colors, "Comment"); isSet(c) {
		t.Subtle = lipgloss.Color(c)
	}
	if c := fg(colors, "LineNr"); isSet(c) {
		t.Dim = lipgloss.Color(c)
	}

	if c := fg(colors, "WinSeparator"); isSet(c) {
		t.Border = lipgloss.Color(c)
	}

	if c := bg(colors, "Visual"); isSet(c) {
		t.Selection = lipgloss.Color(c)
	}

	if c := bg(colors, "StatusLine"); isSet(c) {
		t.StatusBg = lipgloss.Color(c)
	}
	if c := fg(colors, "StatusLine"); isSet(c) {
		t.StatusFg = lipgloss.Color(c)
	}

	if c := fg(colors, "DiagnosticError"); isSet(c) {
		t.Error = lipgloss.Color(c)
	}

	// Mode colors derived from the palette
	t.SourceMode = t.Accent
	if c := bg(colors, "Search"); isSet(c) {
		t.PreviewMode = lipgloss.Color(c)
	}

	return t
}

// isSet returns true when the color string represents an explicitly set color.
// Neovim returns fg/bg = 0 for groups that inherit from the default, which
// intToHex converts to "#000000". We treat both empty and pure-black as unset.
func isSet(c string) bool {
	return c != "" && c != "#000000"
}

func fg(colors map[string][2]string, group string) string {
	if pair, ok := colors[group]; ok {
		return pair[0]
	}
	return ""
}

func bg(colors map[string][2]string, group string) string {
	if pair, ok := colors[group]; ok {
		return pair[1]
	}
	return ""
}
