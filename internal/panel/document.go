package panel

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/pfassina/tocnav/internal/navigator"
	"github.com/pfassina/tocnav/internal/theme"
)

// ScrollMsg asks the host to scroll by Delta lines.
type ScrollMsg struct {
	Delta float64
}

// Document is a read-only view of the document text beside the outline.
type Document struct {
	theme   *theme.Theme
	title   string
	lines   []string
	offset  int
	heading map[int]int // start line -> heading index
	active  int
	width   int
	height  int
	focused bool
}

func NewDocument(th *theme.Theme) Document {
	return Document{theme: th, active: -1}
}

// SetContent updates the text, the top line and the outline used for
// heading highlights.
func (d *Document) SetContent(title string, lines []string, offset int, data navigator.Outline) {
	d.title = title
	d.lines = lines
	d.offset = offset
	d.heading = make(map[int]int, data.Len())
	for i, h := range data.Headings {
		d.heading[h.StartLine] = i
	}
	d.active = data.Active
}

func (d Document) Update(msg tea.Msg) (Document, tea.Cmd) {
	if !d.focused {
		return d, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	half := float64(max(d.height/2, 1))
	var out tea.Msg
	switch keyMsg.String() {
	case "j", "down":
		out = ScrollMsg{Delta: 1}
	case "k", "up":
		out = ScrollMsg{Delta: -1}
	case "ctrl+d", "pgdown":
		out = ScrollMsg{Delta: half}
	case "ctrl+u", "pgup":
		out = ScrollMsg{Delta: -half}
	case "g", "home":
		out = EdgeMsg{}
	case "G", "end":
		out = EdgeMsg{Bottom: true}
	case "r":
		out = ReturnMsg{}
	case "n":
		out = NavigateMsg{Dir: navigator.Next}
	case "p":
		out = NavigateMsg{Dir: navigator.Prev}
	default:
		return d, nil
	}
	return d, func() tea.Msg { return out }
}

func (d Document) View() string {
	if d.width == 0 || d.height == 0 {
		return ""
	}
	st := d.theme.Styles()

	var b strings.Builder
	titleStyle := st.Title.Padding(0, 1)
	if !d.focused {
		titleStyle = titleStyle.Foreground(d.theme.Dim)
	}
	b.WriteString(titleStyle.Render(d.title))
	b.WriteByte('\n')

	gutter := len(fmt.Sprint(len(d.lines)))
	textWidth := max(d.width-gutter-2, 1)

	for row := 0; row < d.height-1; row++ {
		n := d.offset + row
		if n >= len(d.lines) {
			break
		}
		num := st.Dim.Render(fmt.Sprintf("%*d ", gutter, n+1))
		text := ansi.Truncate(d.lines[n], textWidth, "…")

		if i, ok := d.heading[n]; ok {
			if i == d.active {
				text = st.Active.Render(text)
			} else {
				text = st.Title.Foreground(d.theme.Text).Render(text)
			}
		}
		line := num + text
		if pad := d.width - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String()
}

func (d *Document) SetSize(width, height int) {
	d.width = width
	d.height = height
}

func (d *Document) SetFocused(focused bool) {
	d.focused = focused
}
