package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines a color palette used by all TUI panels.
// Panels hold a *Theme pointer so in-place mutations (e.g. after extracting
// colors from Neovim) are visible on the next View() call.
type Theme struct {
	Bg          lipgloss.Color
	Text        lipgloss.Color
	Accent      lipgloss.Color // active heading, titles
	Selection   lipgloss.Color // cursor row background
	Number      lipgloss.Color
	Marker      lipgloss.Color // collapse markers
	Subtle      lipgloss.Color
	Dim         lipgloss.Color
	Border      lipgloss.Color
	StatusBg    lipgloss.Color
	StatusFg    lipgloss.Color
	Error       lipgloss.Color
	SourceMode  lipgloss.Color
	PreviewMode lipgloss.Color
}

// DefaultTheme returns the default color palette (catppuccin-inspired).
func DefaultTheme() Theme {
	return Theme{
		Bg:          lipgloss.Color("#1e1e2e"),
		Text:        lipgloss.Color("#cdd6f4"),
		Accent:      lipgloss.Color("#cba6f7"),
		Selection:   lipgloss.Color("#313244"),
		Number:      lipgloss.Color("#fab387"),
		Marker:      lipgloss.Color("#89b4fa"),
		Subtle:      lipgloss.Color("#6c7086"),
		Dim:         lipgloss.Color("#585b70"),
		Border:      lipgloss.Color("#45475a"),
		StatusBg:    lipgloss.Color("#313244"),
		StatusFg:    lipgloss.Color("#cdd6f4"),
		Error:       lipgloss.Color("#f38ba8"),
		SourceMode:  lipgloss.Color("#89b4fa"),
		PreviewMode: lipgloss.Color("#a6e3a1"),
	}
}

// Styles are the lipgloss styles shared by the panels.
type Styles struct {
	Title    lipgloss.Style
	Hint     lipgloss.Style
	Normal   lipgloss.Style
	Active   lipgloss.Style
	Selected lipgloss.Style
	Number   lipgloss.Style
	Marker   lipgloss.Style
	Dim      lipgloss.Style
	Error    lipgloss.Style
	Box      lipgloss.Style
}

// Styles builds the panel styles for t.
func (t *Theme) Styles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Hint:     lipgloss.NewStyle().Foreground(t.Subtle),
		Normal:   lipgloss.NewStyle().Foreground(t.Text),
		Active:   lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Selected: lipgloss.NewStyle().Background(t.Selection),
		Number:   lipgloss.NewStyle().Foreground(t.Number),
		Marker:   lipgloss.NewStyle().Foreground(t.Marker),
		Dim:      lipgloss.NewStyle().Foreground(t.Dim),
		Error:    lipgloss.NewStyle().Foreground(t.Error),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
	}
}
