package panel

import (
	"strings"
	"testing"

	"github.com/pfassina/tocnav/internal/navigator"
	"github.com/pfassina/tocnav/internal/theme"
)

func TestStatusView(t *testing.T) {
	th := theme.DefaultTheme()
	s := NewStatus(&th)
	if s.View() != "" {
		t.Error("zero-width status should render nothing")
	}

	s.SetWidth(80)
	s.SetMode(navigator.ModePreview)
	s.SetFile("notes/a.md")
	s.SetHeading("1.2. Usage")
	s.SetReading("About 3 minutes")

	view := s.View()
	for _, want := range []string{"PREVIEW", "notes/a.md", "1.2. Usage", "About 3 minutes"} {
		if !strings.Contains(view, want) {
			t.Errorf("status missing %q: %q", want, view)
		}
	}
	if strings.Contains(view, "%") {
		t.Errorf("progress shown before it was set: %q", view)
	}

	s.SetProgress(42)
	if view := s.View(); !strings.Contains(view, "42%") {
		t.Errorf("status missing progress: %q", view)
	}
	s.SetProgress(-1)
	if strings.Contains(s.View(), "42%") {
		t.Error("progress not hidden")
	}

	s.SetError("read failed")
	if view := s.View(); !strings.Contains(view, "read failed") || strings.Contains(view, "notes/a.md") {
		t.Errorf("error not shown in place of file: %q", view)
	}
	s.ClearError()
	if !strings.Contains(s.View(), "notes/a.md") {
		t.Error("file not restored after ClearError")
	}
}
