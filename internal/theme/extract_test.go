package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFromExtracted_OverridesBase(t *testing.T) {
	base := DefaultTheme()

	colors := map[string][2]string{
		"Normal":          {"#ffffff", "#1a1b26"},
		"Title":           {"#ff0000", ""},
		"Directory":       {"#0000ff", ""},
		"CursorLineNr":    {"#ffaa00", ""},
		"Comment":         {"#888888", ""},
		"LineNr":          {"#444444", ""},
		"WinSeparator":    {"#333333", ""},
		"Visual":          {"", "#553399"},
		"StatusLine":      {"#aaaaaa", "#222222"},
		"DiagnosticError": {"#ff5555", ""},
		"Search":          {"", "#00ff00"},
	}

	th := FromExtracted(colors, base)

	tests := []struct {
		name string
		got  lipgloss.Color
		want string
	}{
		{"Bg", th.Bg, "#1a1b26"},
		{"Text", th.Text, "#ffffff"},
		{"Accent", th.Accent, "#ff0000"},
		{"Marker", th.Marker, "#0000ff"},
		{"Number", th.Number, "#ffaa00"},
		{"Subtle", th.Subtle, "#888888"},
		{"Dim", th.Dim, "#444444"},
		{"Border", th.Border, "#333333"},
		{"Selection", th.Selection, "#553399"},
		{"StatusBg", th.StatusBg, "#222222"},
		{"StatusFg", th.StatusFg, "#aaaaaa"},
		{"Error", th.Error, "#ff5555"},
		{"SourceMode", th.SourceMode, "#ff0000"}, // derived from Accent
		{"PreviewMode", th.PreviewMode, "#00ff00"},
	}

	for _, tt := range tests {
		if string(tt.got) != tt.want {
			t.Errorf("FromExtracted %s = %q, want %q", tt.name, string(tt.got), tt.want)
		}
	}
}

func TestFromExtracted_KeepsBaseWhenEmpty(t *testing.T) {
	base := DefaultTheme()
	th := FromExtracted(map[string][2]string{}, base)

	if th.Accent != base.Accent {
		t.Errorf("expected Accent to stay %q, got %q", string(base.Accent), string(th.Accent))
	}
	if th.Text != base.Text {
		t.Errorf("expected Text to stay %q, got %q", string(base.Text), string(th.Text))
	}
	if th.PreviewMode != base.PreviewMode {
		t.Errorf("expected PreviewMode to stay %q, got %q", string(base.PreviewMode), string(th.PreviewMode))
	}
}

func TestFromExtracted_SkipsBlackAsUnset(t *testing.T) {
	base := DefaultTheme()

	// #000000 means "no explicit color" from Neovim's default colorscheme.
	colors := map[string][2]string{
		"Normal":  {"#000000", ""},
		"Title":   {"#000000", ""},
		"Comment": {"#000000", ""},
	}
	th := FromExtracted(colors, base)

	if th.Text != base.Text {
		t.Errorf("expected Text to stay %q (base), got %q", string(base.Text), string(th.Text))
	}
	if th.Accent != base.Accent {
		t.Errorf("expected Accent to stay %q (base), got %q", string(base.Accent), string(th.Accent))
	}
	if th.Subtle != base.Subtle {
		t.Errorf("expected Subtle to stay %q (base), got %q", string(base.Subtle), string(th.Subtle))
	}
}

func TestFromExtracted_AccentFallsBackToDirectory(t *testing.T) {
	th := FromExtracted(map[string][2]string{"Directory": {"#abcdef", ""}}, DefaultTheme())
	if string(th.Accent) != "#abcdef" {
		t.Errorf("expected Accent fallback to Directory #abcdef, got %q", string(th.Accent))
	}
	if th.SourceMode != th.Accent {
		t.Errorf("SourceMode = %q, want Accent %q", string(th.SourceMode), string(th.Accent))
	}
}
