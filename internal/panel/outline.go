package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/pfassina/tocnav/internal/config"
	"github.com/pfassina/tocnav/internal/navigator"
	"github.com/pfassina/tocnav/internal/theme"
)

// JumpMsg asks the host to move to a heading.
type JumpMsg struct {
	Index int
}

// ToggleMsg asks for a heading's collapse state to flip.
type ToggleMsg struct {
	Index int
}

// CollapseAllMsg asks for every heading with children to collapse.
type CollapseAllMsg struct{}

// ExpandAllMsg asks for the collapsed set to be cleared.
type ExpandAllMsg struct{}

// NavigateMsg asks the host to step to the next or previous heading.
type NavigateMsg struct {
	Dir navigator.Direction
}

// EdgeMsg asks the host to move to the first or last line.
type EdgeMsg struct {
	Bottom bool
}

// ReturnMsg asks the host to go back to where it was before the last jump.
type ReturnMsg struct{}

type keyMap map[string]key.Binding

func newKeyMap(binds []config.Keybind) keyMap {
	km := make(keyMap, len(binds))
	for _, b := range binds {
		km[b.Action] = key.NewBinding(
			key.WithKeys(b.Keys...),
			key.WithHelp(b.Help, config.ActionHelp[b.Action]),
		)
	}
	return km
}

func (km keyMap) matches(msg tea.KeyMsg, action string) bool {
	b, ok := km[action]
	return ok && key.Matches(msg, b)
}

// Outline is the heading outline panel.
type Outline struct {
	theme  *theme.Theme
	binds  []config.Keybind
	keys   keyMap
	data   navigator.Outline
	rows   []int // heading indices of visible rows
	cursor int   // index into rows
	offset int
	width  int
	height int

	focused  bool
	showHelp bool
	follow   bool
}

func NewOutline(th *theme.Theme) Outline {
	binds := config.DefaultKeybinds()
	return Outline{
		theme:  th,
		binds:  binds,
		keys:   newKeyMap(binds),
		follow: true,
		data:   navigator.Outline{Active: -1},
	}
}

// SetOutline replaces the rendered outline. While following, the cursor
// moves to the active heading, or to its nearest visible ancestor when the
// active heading is folded away.
func (o *Outline) SetOutline(data navigator.Outline) {
	prev := o.Selected()
	o.data = data
	o.rows = data.VisibleIndices()

	target := prev
	if o.follow {
		target = data.Active
	}
	o.cursor = o.rowAtOrBefore(target)
	o.clamp()
}

// rowAtOrBefore returns the last row showing heading idx or one before it.
func (o *Outline) rowAtOrBefore(idx int) int {
	row := 0
	for r, i := range o.rows {
		if i > idx {
			break
		}
		row = r
	}
	return row
}

func (o *Outline) clamp() {
	if o.cursor >= len(o.rows) {
		o.cursor = len(o.rows) - 1
	}
	if o.cursor < 0 {
		o.cursor = 0
	}
	visible := o.listHeight()
	if o.cursor < o.offset {
		o.offset = o.cursor
	}
	if visible > 0 && o.cursor-o.offset >= visible {
		o.offset = o.cursor - visible + 1
	}
	if o.offset < 0 {
		o.offset = 0
	}
}

// Selected returns the heading index under the cursor, or -1.
func (o Outline) Selected() int {
	if o.cursor < 0 || o.cursor >= len(o.rows) {
		return -1
	}
	return o.rows[o.cursor]
}

// Following reports whether the cursor tracks the active heading.
func (o Outline) Following() bool { return o.follow }

func (o Outline) Init() tea.Cmd {
	return nil
}

func (o Outline) Update(msg tea.Msg) (Outline, tea.Cmd) {
	if !o.focused {
		return o, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	// When help is shown, any key dismisses it
	if o.showHelp {
		o.showHelp = false
		return o, nil
	}

	switch {
	case o.keys.matches(keyMsg, "down"):
		if o.cursor < len(o.rows)-1 {
			o.cursor++
			o.follow = false
		}
	case o.keys.matches(keyMsg, "up"):
		if o.cursor > 0 {
			o.cursor--
			o.follow = false
		}
	case o.keys.matches(keyMsg, "top"):
		o.cursor = 0
		o.follow = false
	case o.keys.matches(keyMsg, "bottom"):
		o.cursor = len(o.rows) - 1
		o.follow = false
	case o.keys.matches(keyMsg, "jump"):
		if idx := o.Selected(); idx >= 0 {
			o.follow = true
			return o, func() tea.Msg { return JumpMsg{Index: idx} }
		}
	case o.keys.matches(keyMsg, "toggle"):
		if idx := o.Selected(); idx >= 0 {
			return o, func() tea.Msg { return ToggleMsg{Index: idx} }
		}
	case o.keys.matches(keyMsg, "collapse_all"):
		return o, func() tea.Msg { return CollapseAllMsg{} }
	case o.keys.matches(keyMsg, "expand_all"):
		return o, func() tea.Msg { return ExpandAllMsg{} }
	case o.keys.matches(keyMsg, "next_heading"):
		o.follow = true
		return o, func() tea.Msg { return NavigateMsg{Dir: navigator.Next} }
	case o.keys.matches(keyMsg, "prev_heading"):
		o.follow = true
		return o, func() tea.Msg { return NavigateMsg{Dir: navigator.Prev} }
	case o.keys.matches(keyMsg, "doc_top"):
		o.follow = true
		return o, func() tea.Msg { return EdgeMsg{} }
	case o.keys.matches(keyMsg, "doc_bottom"):
		o.follow = true
		return o, func() tea.Msg { return EdgeMsg{Bottom: true} }
	case o.keys.matches(keyMsg, "return"):
		o.follow = true
		return o, func() tea.Msg { return ReturnMsg{} }
	case o.keys.matches(keyMsg, "follow"):
		o.follow = !o.follow
		if o.follow {
			o.cursor = o.rowAtOrBefore(o.data.Active)
		}
	case o.keys.matches(keyMsg, "help"):
		o.showHelp = true
	}
	o.clamp()

	return o, nil
}

func (o Outline) listHeight() int {
	h := o.height - 2 // title + bottom padding
	if o.showHelp {
		h -= len(o.binds) + 2 // help box height
	}
	if h < 0 {
		h = 0
	}
	return h
}

func (o Outline) View() string {
	if o.width == 0 || o.height == 0 {
		return ""
	}
	st := o.theme.Styles()

	var b strings.Builder
	b.WriteString(o.renderTitle(st))
	b.WriteByte('\n')

	switch {
	case !o.data.Show:
		b.WriteString(st.Dim.Render(" No headings"))
		b.WriteByte('\n')
	case o.data.Expanded:
		o.renderRows(&b, st)
	default:
		o.renderIndicator(&b, st)
	}

	if o.showHelp {
		b.WriteString(o.renderHelp(st))
	}

	return b.String()
}

func (o Outline) renderTitle(st theme.Styles) string {
	titleStyle := st.Title.Padding(0, 1)
	if o.focused {
		titleStyle = titleStyle.Underline(true)
	} else {
		titleStyle = titleStyle.Foreground(o.theme.Dim)
	}
	title := titleStyle.Render("Outline")

	if !o.focused || o.showHelp {
		return title
	}
	hint := "?"
	if !o.follow {
		hint = "f ?"
	}
	hint = st.Hint.Render(hint)
	gap := o.width - 2 - lipgloss.Width(title) - lipgloss.Width(hint)
	if gap <= 0 {
		return title
	}
	return title + strings.Repeat(" ", gap) + hint
}

func (o Outline) renderRows(b *strings.Builder, st theme.Styles) {
	inner := o.width - 2
	visible := o.listHeight()

	for r := o.offset; r < len(o.rows) && r-o.offset < visible; r++ {
		i := o.rows[r]
		indent := strings.Repeat("  ", o.data.Depth[i])

		marker := "  "
		if o.data.HasChildren[i] {
			if o.data.Collapsed[i] {
				marker = "▸ "
			} else {
				marker = "▾ "
			}
		}

		num := o.data.Number[i]
		text := o.data.Headings[i].Text
		plainWidth := lipgloss.Width(indent + marker + num)
		if num != "" {
			plainWidth++
		}
		text = ansi.Truncate(text, max(inner-plainWidth, 1), "…")

		textStyle := st.Normal
		if i == o.data.Active {
			textStyle = st.Active
		}
		line := indent + st.Marker.Render(marker)
		if num != "" {
			line += st.Number.Render(num) + " "
		}
		line += textStyle.Render(text)

		if pad := inner - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		if r == o.cursor && o.focused {
			line = st.Selected.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

// renderIndicator draws one bar per visible heading, shorter the deeper it
// sits, with the active heading highlighted.
func (o Outline) renderIndicator(b *strings.Builder, st theme.Styles) {
	visible := o.listHeight()
	for r := o.offset; r < len(o.rows) && r-o.offset < visible; r++ {
		i := o.rows[r]
		depth := o.data.Depth[i]
		length := max(8-2*depth, 2)

		if i == o.data.Active {
			b.WriteString(" " + strings.Repeat(" ", depth) + st.Active.Render(strings.Repeat("━", length)))
		} else {
			b.WriteString(" " + strings.Repeat(" ", depth) + st.Dim.Render(strings.Repeat("─", length)))
		}
		b.WriteByte('\n')
	}
}

func (o Outline) renderHelp(st theme.Styles) string {
	keyStyle := st.Active
	box := st.Box.Width(max(o.width-6, 10))

	var sb strings.Builder
	for _, bind := range o.binds {
		h := o.keys[bind.Action].Help()
		sb.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-5s", h.Key)), st.Dim.Render(h.Desc)))
	}

	return box.Render(strings.TrimRight(sb.String(), "\n"))
}

func (o *Outline) SetSize(width, height int) {
	o.width = width
	o.height = height
	o.clamp()
}

func (o *Outline) SetFocused(focused bool) {
	o.focused = focused
}

func (o Outline) ShowingHelp() bool {
	return o.showHelp
}
