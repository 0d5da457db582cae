package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pfassina/tocnav/internal/navigator"
	"github.com/pfassina/tocnav/internal/theme"
)

// Status is the status bar at the bottom.
type Status struct {
	theme    *theme.Theme
	width    int
	mode     navigator.Mode
	file     string
	heading  string
	reading  string
	progress int // -1 hides it
	errMsg   string
}

func NewStatus(th *theme.Theme) Status {
	return Status{theme: th, progress: -1}
}

func (s *Status) SetMode(mode navigator.Mode) {
	s.mode = mode
}

func (s *Status) SetFile(file string) {
	s.file = file
}

// SetHeading shows the active heading's number and text.
func (s *Status) SetHeading(heading string) {
	s.heading = heading
}

func (s *Status) SetReading(label string) {
	s.reading = label
}

// SetProgress shows how far through the document the view is. A negative
// percentage hides it.
func (s *Status) SetProgress(percent int) {
	s.progress = percent
}

func (s *Status) SetWidth(width int) {
	s.width = width
}

func (s *Status) SetError(msg string) {
	s.errMsg = msg
}

func (s *Status) ClearError() {
	s.errMsg = ""
}

func (s Status) View() string {
	if s.width == 0 {
		return ""
	}

	bgStyle := lipgloss.NewStyle().Background(s.theme.StatusBg)

	color := s.theme.SourceMode
	if s.mode == navigator.ModePreview {
		color = s.theme.PreviewMode
	}
	modeStyle := lipgloss.NewStyle().
		Background(color).
		Foreground(s.theme.Bg).
		Bold(true).
		Padding(0, 1)

	textStyle := lipgloss.NewStyle().
		Background(s.theme.StatusBg).
		Foreground(s.theme.StatusFg).
		Padding(0, 1)

	mode := modeStyle.Render(strings.ToUpper(s.mode.String()))

	var middle string
	if s.errMsg != "" {
		middle = textStyle.Foreground(s.theme.Error).Render(s.errMsg)
	} else {
		middle = textStyle.Render(s.file)
		if s.heading != "" {
			middle += textStyle.Foreground(s.theme.Accent).Render(s.heading)
		}
	}

	left := mode + middle

	right := ""
	if s.progress >= 0 {
		right = textStyle.Foreground(s.theme.Accent).Render(fmt.Sprintf("%d%%", s.progress))
	}
	if s.reading != "" {
		right += textStyle.Foreground(s.theme.Subtle).Render(s.reading)
	}

	padLen := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padLen < 0 {
		padLen = 0
	}
	padding := bgStyle.Render(strings.Repeat(" ", padLen))

	return left + padding + right
}
