package config

// Keybind represents a key binding configuration.
type Keybind struct {
	Keys   []string
	Help   string
	Action string
}

// DefaultKeybinds returns the outline panel key bindings.
func DefaultKeybinds() []Keybind {
	return []Keybind{
		{Keys: []string{"j", "down"}, Help: "j/↓", Action: "down"},
		{Keys: []string{"k", "up"}, Help: "k/↑", Action: "up"},
		{Keys: []string{"g", "home"}, Help: "g", Action: "top"},
		{Keys: []string{"G", "end"}, Help: "G", Action: "bottom"},
		{Keys: []string{"enter"}, Help: "enter", Action: "jump"},
		{Keys: []string{" ", "tab"}, Help: "space", Action: "toggle"},
		{Keys: []string{"C"}, Help: "C", Action: "collapse_all"},
		{Keys: []string{"E"}, Help: "E", Action: "expand_all"},
		{Keys: []string{"n"}, Help: "n", Action: "next_heading"},
		{Keys: []string{"p"}, Help: "p", Action: "prev_heading"},
		{Keys: []string{"t"}, Help: "t", Action: "doc_top"},
		{Keys: []string{"b"}, Help: "b", Action: "doc_bottom"},
		{Keys: []string{"r"}, Help: "r", Action: "return"},
		{Keys: []string{"f"}, Help: "f", Action: "follow"},
		{Keys: []string{"?"}, Help: "?", Action: "help"},
		{Keys: []string{"q", "ctrl+c"}, Help: "q", Action: "quit"},
	}
}

// ActionHelp maps keybind actions to their help text.
var ActionHelp = map[string]string{
	"down":         "Move down",
	"up":           "Move up",
	"top":          "Go to first heading",
	"bottom":       "Go to last heading",
	"jump":         "Jump to heading",
	"toggle":       "Collapse/expand heading",
	"collapse_all": "Collapse all",
	"expand_all":   "Expand all",
	"next_heading": "Next heading in document",
	"prev_heading": "Previous heading in document",
	"doc_top":      "Return to top",
	"doc_bottom":   "Return to bottom",
	"return":       "Return to cursor",
	"follow":       "Toggle follow cursor",
	"help":         "Toggle help",
	"quit":         "Quit",
}
