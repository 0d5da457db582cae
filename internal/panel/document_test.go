package panel

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pfassina/tocnav/internal/navigator"
	"github.com/pfassina/tocnav/internal/outline"
	"github.com/pfassina/tocnav/internal/theme"
)

func TestDocumentKeys(t *testing.T) {
	th := theme.DefaultTheme()
	d := NewDocument(&th)
	d.SetSize(40, 11)
	d.SetFocused(true)
	d.SetContent("a.md", make([]string, 30), 0, navigator.Outline{Active: -1})

	tests := []struct {
		key  tea.KeyMsg
		want tea.Msg
	}{
		{runes("j"), ScrollMsg{Delta: 1}},
		{runes("k"), ScrollMsg{Delta: -1}},
		{tea.KeyMsg{Type: tea.KeyCtrlD}, ScrollMsg{Delta: 5}},
		{runes("g"), EdgeMsg{}},
		{runes("G"), EdgeMsg{Bottom: true}},
		{runes("r"), ReturnMsg{}},
		{runes("n"), NavigateMsg{Dir: navigator.Next}},
	}
	for _, tt := range tests {
		_, cmd := d.Update(tt.key)
		if cmd == nil {
			t.Fatalf("%s: expected a command", tt.key)
		}
		if got := cmd(); got != tt.want {
			t.Errorf("%s: msg = %#v, want %#v", tt.key, got, tt.want)
		}
	}

	if _, cmd := d.Update(runes("z")); cmd != nil {
		t.Error("unbound key produced a command")
	}
}

func TestDocumentView(t *testing.T) {
	th := theme.DefaultTheme()
	d := NewDocument(&th)
	d.SetSize(40, 4)

	lines := []string{"# Title", "intro", "## Usage", "text", "more"}
	data := navigator.Outline{
		Headings: []outline.Heading{{Level: 1, Text: "Title", StartLine: 0}, {Level: 2, Text: "Usage", StartLine: 2}},
		Active:   1,
	}
	d.SetContent("a.md", lines, 1, data)

	view := d.View()
	if !strings.Contains(view, "## Usage") || !strings.Contains(view, "intro") {
		t.Errorf("view missing lines:\n%s", view)
	}
	if strings.Contains(view, "# Title") {
		t.Errorf("line above offset rendered:\n%s", view)
	}
	if strings.Contains(view, "more") {
		t.Errorf("line past height rendered:\n%s", view)
	}
}
