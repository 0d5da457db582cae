package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"github.com/pfassina/tocnav/internal/config"
	"github.com/pfassina/tocnav/internal/editor"
	"github.com/pfassina/tocnav/internal/markdown"
	"github.com/pfassina/tocnav/internal/navigator"
	"github.com/pfassina/tocnav/internal/panel"
	"github.com/pfassina/tocnav/internal/theme"
	"github.com/pfassina/tocnav/internal/vault"
	"github.com/pfassina/tocnav/internal/watch"
)

const (
	minWidth  = 20
	minHeight = 5
)

// FocusedPanel tracks which panel receives keys.
type FocusedPanel int

const (
	FocusOutline FocusedPanel = iota
	FocusDocument
)

type statsHost interface {
	Stats(markdown.CountOptions) markdown.WordCount
}

// App is the root Bubble Tea model.
type App struct {
	cfg     config.Config
	log     *log.Logger
	session *navigator.Session
	host    navigator.Host
	doc     *vault.Document // set when the host is a file on disk

	theme    theme.Theme
	outline  panel.Outline
	document panel.Document
	status   panel.Status

	watcher *watch.Watcher
	rpc     *editor.RPC
	events  chan tea.Msg

	data   navigator.Outline
	focus  FocusedPanel
	width  int
	height int

	closeOnce sync.Once
	closed    bool
}

// New creates the app over a host. A *vault.Document host also gets the
// document panel.
func New(cfg config.Config, host navigator.Host, logger *log.Logger) *App {
	if logger == nil {
		logger = log.Default()
	}
	a := &App{
		cfg:     cfg,
		log:     logger,
		session: navigator.New(navigator.OptionsFromConfig(cfg), logger),
		host:    host,
		theme:   theme.DefaultTheme(),
		events:  make(chan tea.Msg, 1),
		data:    navigator.Outline{Active: -1},
	}
	if doc, ok := host.(*vault.Document); ok {
		a.doc = doc
	}

	a.outline = panel.NewOutline(&a.theme)
	a.document = panel.NewDocument(&a.theme)
	a.status = panel.NewStatus(&a.theme)
	a.status.SetMode(host.Mode())
	a.status.SetFile(host.Path())
	a.setFocus(FocusOutline)
	return a
}

// EnableWatch reloads the document whenever its file changes on disk.
func (a *App) EnableWatch() error {
	if a.doc == nil {
		return errors.New("watch needs a file document")
	}
	delay := time.Duration(a.cfg.Watch.DebounceMS) * time.Millisecond
	w, err := watch.New(delay, a.log,
		func(path string) { a.send(docChangedMsg{path: path}) },
		func(err error) {
			// Must not be dropped, so block in a goroutine.
			go func() { a.events <- fatalErrorMsg{err: err} }()
		},
	)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(a.doc.AbsPath()); err != nil {
		return errors.Join(fmt.Errorf("watch %s: %w", a.doc.Path(), err), w.Stop())
	}
	a.watcher = w
	go w.Start()
	return nil
}

// SetRPC hands the app the Neovim connection so it can theme itself from
// the editor's colors and close the connection on exit.
func (a *App) SetRPC(rpc *editor.RPC) {
	a.rpc = rpc
}

// Notify asks for a refresh. Safe to call from any goroutine; a refresh
// already pending absorbs new ones.
func (a *App) Notify() {
	a.send(refreshMsg{})
}

func (a *App) send(msg tea.Msg) {
	select {
	case a.events <- msg:
	default:
	}
}

func (a *App) Init() tea.Cmd {
	a.send(refreshMsg{})
	cmds := []tea.Cmd{waitForEvent(a.events)}
	if a.rpc != nil {
		rpc := a.rpc
		cmds = append(cmds, func() tea.Msg {
			colors, err := rpc.ExtractColors()
			return colorsReadyMsg{colors: colors, err: err}
		})
	}
	return tea.Batch(cmds...)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Some terminals briefly report 0 during resize. Ignore those.
		if msg.Width <= 0 || msg.Height <= 0 {
			return a, nil
		}
		a.width = msg.Width
		a.height = msg.Height
		a.resize()
		return a, tea.ClearScreen

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case refreshMsg:
		a.refresh()
		return a, waitForEvent(a.events)

	case docChangedMsg:
		a.log.Debug("document changed", "path", msg.path)
		if a.doc != nil {
			if err := a.doc.Reload(); err != nil {
				a.status.SetError(err.Error())
				return a, waitForEvent(a.events)
			}
		}
		a.refresh()
		return a, waitForEvent(a.events)

	case colorsReadyMsg:
		if msg.err != nil {
			a.status.SetError(msg.err.Error())
			return a, nil
		}
		a.theme = theme.FromExtracted(msg.colors, a.theme)
		return a, nil

	case fatalErrorMsg:
		a.Close()
		return a, fatalCmd(msg.err)

	case panel.JumpMsg:
		if err := a.session.JumpTo(a.host, msg.Index); err != nil {
			a.status.SetError(err.Error())
			return a, nil
		}
		a.refresh()
		return a, nil

	case panel.NavigateMsg:
		if _, err := a.session.Navigate(a.host, msg.Dir); err != nil {
			a.status.SetError(err.Error())
			return a, nil
		}
		a.refresh()
		return a, nil

	case panel.ToggleMsg:
		a.session.Toggle(msg.Index)
		a.refresh()
		return a, nil

	case panel.CollapseAllMsg:
		a.session.CollapseAll()
		a.refresh()
		return a, nil

	case panel.ExpandAllMsg:
		a.session.ExpandAll()
		a.refresh()
		return a, nil

	case panel.ScrollMsg:
		if a.doc != nil {
			a.doc.Scroll(msg.Delta)
			a.refresh()
		}
		return a, nil

	case panel.EdgeMsg:
		move := a.session.Top
		if msg.Bottom {
			move = a.session.Bottom
		}
		if err := move(a.host); err != nil {
			a.status.SetError(err.Error())
			return a, nil
		}
		a.refresh()
		return a, nil

	case panel.ReturnMsg:
		if err := a.session.ReturnToCursor(a.host); err != nil {
			a.status.SetError(err.Error())
			return a, nil
		}
		a.refresh()
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		a.Close()
		return tea.Quit
	case "q":
		if !a.outline.ShowingHelp() {
			a.Close()
			return tea.Quit
		}
	case "ctrl+w":
		if a.focus == FocusOutline {
			a.setFocus(FocusDocument)
		} else {
			a.setFocus(FocusOutline)
		}
		return nil
	case "ctrl+h":
		a.setFocus(FocusOutline)
		return nil
	case "ctrl+l":
		a.setFocus(FocusDocument)
		return nil
	}

	a.status.ClearError()
	var cmd tea.Cmd
	if a.focus == FocusDocument {
		a.document, cmd = a.document.Update(msg)
	} else {
		a.outline, cmd = a.outline.Update(msg)
	}
	return cmd
}

func (a *App) setFocus(f FocusedPanel) {
	if f == FocusDocument && a.doc == nil {
		f = FocusOutline
	}
	a.focus = f
	a.outline.SetFocused(f == FocusOutline)
	a.document.SetFocused(f == FocusDocument)
}

// refresh re-reads the host and pushes the new outline into the panels.
func (a *App) refresh() {
	data, err := a.session.Refresh(a.host)
	if err != nil {
		a.log.Warn("refresh outline", "path", a.host.Path(), "err", err)
		a.status.SetError(err.Error())
		return
	}
	a.data = data
	a.outline.SetOutline(data)

	a.status.SetFile(data.Path)
	a.status.SetHeading(activeLabel(data))
	if sh, ok := a.host.(statsHost); ok {
		wc := sh.Stats(navigator.CountOptions(a.cfg))
		minutes := markdown.ReadingTime(wc, a.cfg.Reading.CJKPerMinute, a.cfg.Reading.LatinPerMinute)
		a.status.SetReading(markdown.ReadingLabel(minutes))
	}
	if data.Lines > 0 {
		a.status.SetProgress(data.Progress)
	} else {
		a.status.SetProgress(-1)
	}

	if a.doc != nil {
		off, _ := a.doc.ScrollOffset()
		a.document.SetContent(data.Path, a.doc.Lines(), int(off), data)
	}
}

func activeLabel(data navigator.Outline) string {
	if data.Active < 0 || data.Active >= data.Len() {
		return ""
	}
	text := data.Headings[data.Active].Text
	if n := data.Number[data.Active]; n != "" {
		return n + " " + text
	}
	return text
}

func (a *App) resize() {
	l := ComputeLayout(a.width, a.height, a.doc != nil, a.cfg.TOC.Width)
	if a.doc != nil {
		a.outline.SetSize(max(l.OutlineWidth-1, 0), l.Height) // -1 for border
	} else {
		a.outline.SetSize(l.OutlineWidth, l.Height)
	}
	a.document.SetSize(l.DocWidth, l.Height)
	a.status.SetWidth(a.width)
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	if a.width < minWidth || a.height < minHeight {
		msg := fmt.Sprintf("Window too small (%dx%d)\nMinimum supported: %dx%d", a.width, a.height, minWidth, minHeight)
		// Use the terminal's default background so the placeholder matches whatever
		// theme the user is running.
		style := lipgloss.NewStyle().
			Foreground(a.theme.Text).
			Padding(1, 2)
		box := style.Render(msg)
		base := strings.Repeat("\n", a.height)
		return overlayCenter(base, box, a.width, a.height)
	}

	l := ComputeLayout(a.width, a.height, a.doc != nil, a.cfg.TOC.Width)

	var main string
	if a.doc == nil {
		main = lipgloss.NewStyle().
			Width(l.OutlineWidth).
			Height(l.Height).
			Render(a.outline.View())
	} else {
		left := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), false, true, false, false).
			BorderForeground(a.theme.Border).
			Width(max(l.OutlineWidth-1, 0)).
			Height(l.Height).
			Render(a.outline.View())
		right := lipgloss.NewStyle().
			Width(l.DocWidth).
			Height(l.Height).
			Render(a.document.View())
		main = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}

	return main + "\n" + a.status.View()
}

// Outline returns the last computed outline.
func (a *App) Outline() navigator.Outline { return a.data }

// Focus returns the panel receiving keys.
func (a *App) Focus() FocusedPanel { return a.focus }

// Close releases the watcher and the editor connection. Safe to call more
// than once and from other goroutines.
func (a *App) Close() {
	a.closeOnce.Do(a.close)
}

func (a *App) close() {
	a.closed = true
	if a.watcher != nil {
		if err := a.watcher.Stop(); err != nil {
			fmt.Fprintln(os.Stderr, "fatal: stop watcher:", err)
		}
	}
	if a.rpc != nil {
		if err := a.rpc.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "fatal: close nvim rpc:", err)
		}
	}
}

// overlayCenter draws overlay centered on top of base.
func overlayCenter(base, overlay string, width, height int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	overlayWidth := 0
	for _, line := range overlayLines {
		overlayWidth = max(overlayWidth, lipgloss.Width(line))
	}

	startRow := max((height-len(overlayLines))/2, 0)
	startCol := max((width-overlayWidth)/2, 0)

	for i, overlayLine := range overlayLines {
		row := startRow + i
		if row >= len(baseLines) {
			break
		}

		baseLine := baseLines[row]
		if w := lipgloss.Width(baseLine); w < startCol {
			baseLine += strings.Repeat(" ", startCol-w)
		}

		// Overlay by columns without breaking ANSI sequences.
		left := ansi.Truncate(baseLine, startCol, "")
		right := ansi.Cut(baseLine, startCol+lipgloss.Width(overlayLine), lipgloss.Width(baseLine))
		baseLines[row] = left + overlayLine + right
	}

	return strings.Join(baseLines, "\n")
}
