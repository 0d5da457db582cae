package editor

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/neovim/go-client/nvim"
)

const changedEvent = "tocnav:changed"

// RPC manages the Neovim RPC connection.
type RPC struct {
	client *nvim.Nvim
	log    *log.Logger
	notify *coalescer
}

// ConnectRPC dials the Neovim socket and subscribes to buffer, cursor and
// scroll events. onChange runs at most once per window no matter how many
// events arrive in it. It retries briefly since Neovim may not have the
// socket ready immediately.
func ConnectRPC(socketPath string, window time.Duration, logger *log.Logger, onChange func()) (*RPC, error) {
	var client *nvim.Nvim
	var err error

	for i := 0; i < 50; i++ {
		client, err = nvim.Dial(socketPath)
		if err == nil {
			break
		}
		time.Sleep(100 * time.Millisecond)
	}
	if err != nil {
		return nil, fmt.Errorf("connect to nvim socket: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}

	rpc := &RPC{
		client: client,
		log:    logger,
		notify: newCoalescer(window, onChange),
	}

	if err := rpc.setupChangeEvents(); err != nil {
		return nil, errors.Join(fmt.Errorf("setup change events: %w", err), client.Close())
	}

	return rpc, nil
}

func (r *RPC) setupChangeEvents() error {
	if err := r.client.RegisterHandler(changedEvent, func(args ...interface{}) {
		if len(args) > 0 {
			r.log.Debug("nvim event", "event", args[0])
		}
		r.notify.trigger()
	}); err != nil {
		return err
	}

	if err := r.client.Subscribe(changedEvent); err != nil {
		return err
	}

	cid := r.client.ChannelID()
	_, err := r.client.Exec(fmt.Sprintf(`
		augroup TocnavSync
			autocmd!
			autocmd CursorMoved,CursorMovedI,TextChanged,TextChangedI,BufEnter,WinScrolled * call rpcnotify(%d, '%s', expand('<amatch>'))
		augroup END
	`, cid, changedEvent), false)
	return err
}

// CurrentFile returns the current buffer's file path.
func (r *RPC) CurrentFile() (string, error) {
	buf, err := r.client.CurrentBuffer()
	if err != nil {
		return "", err
	}
	return r.client.BufferName(buf)
}

// BufferContent returns all lines of the current buffer.
func (r *RPC) BufferContent() ([][]byte, error) {
	buf, err := r.client.CurrentBuffer()
	if err != nil {
		return nil, err
	}
	return r.client.BufferLines(buf, 0, -1, false)
}

// LineCount returns the number of lines in the current buffer.
func (r *RPC) LineCount() (int, error) {
	buf, err := r.client.CurrentBuffer()
	if err != nil {
		return 0, err
	}
	return r.client.BufferLineCount(buf)
}

// CursorPosition returns the current cursor position as (line, col).
// Line is 1-based, col is 0-based (matching Neovim convention).
func (r *RPC) CursorPosition() (int, int, error) {
	var pos [2]int
	err := r.client.ExecLua("return vim.api.nvim_win_get_cursor(0)", &pos)
	if err != nil {
		return 0, 0, err
	}
	return pos[0], pos[1], nil
}

// SetCursorPosition sets the current window cursor position.
// Line is 1-based, col is 0-based.
func (r *RPC) SetCursorPosition(line, col int) error {
	return r.client.ExecLua("vim.api.nvim_win_set_cursor(0, {...})", nil, line, col)
}

// TopLine returns the first line visible in the current window, 1-based.
func (r *RPC) TopLine() (int, error) {
	var top int
	if err := r.client.ExecLua("return vim.fn.line('w0')", &top); err != nil {
		return 0, err
	}
	return top, nil
}

// ExecCommand runs an Ex command in Neovim.
func (r *RPC) ExecCommand(cmd string) error {
	return r.client.Command(cmd)
}

// ExtractColors queries Neovim highlight groups and returns a map of
// group name → [fg, bg] hex color strings. Empty string means the group
// did not define that attribute.
func (r *RPC) ExtractColors() (map[string][2]string, error) {
	groups := []string{
		"Normal", "Title", "Comment", "Directory",
		"LineNr", "CursorLineNr", "WinSeparator",
		"StatusLine", "DiagnosticError",
		"Visual", "Search",
	}

	result := make(map[string][2]string, len(groups))

	for _, g := range groups {
		var raw map[string]interface{}
		err := r.client.ExecLua(
			"return vim.api.nvim_get_hl(0, {name=..., link=false})",
			&raw, g,
		)
		if err != nil {
			continue // group may not exist in this colorscheme
		}
		var pair [2]string
		if fg, ok := raw["fg"]; ok {
			pair[0] = intToHex(fg)
		}
		if bg, ok := raw["bg"]; ok {
			pair[1] = intToHex(bg)
		}
		if pair[0] != "" || pair[1] != "" {
			result[g] = pair
		}
	}

	return result, nil
}

// intToHex converts an integer-typed color value to a #rrggbb hex string.
func intToHex(v interface{}) string {
	switch n := v.(type) {
	case int64:
		return fmt.Sprintf("#%06x", n)
	case uint64:
		return fmt.Sprintf("#%06x", n)
	case int:
		return fmt.Sprintf("#%06x", n)
	case float64:
		return fmt.Sprintf("#%06x", int64(n))
	default:
		return ""
	}
}

// Close removes the autocmds and closes the RPC connection.
func (r *RPC) Close() error {
	if r.client == nil {
		return nil
	}
	r.notify.stop()
	// The editor may already be gone.
	r.client.Command("silent! autocmd! TocnavSync") //nolint:errcheck // shutdown
	return r.client.Close()
}

// coalescer runs fn once per window after the first trigger in it.
type coalescer struct {
	window time.Duration
	fn     func()

	mu      sync.Mutex
	pending bool
	stopped bool
	timer   *time.Timer
}

func newCoalescer(window time.Duration, fn func()) *coalescer {
	if window <= 0 {
		window = 30 * time.Millisecond
	}
	return &coalescer{window: window, fn: fn}
}

func (c *coalescer) trigger() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending || c.stopped || c.fn == nil {
		return
	}
	c.pending = true
	c.timer = time.AfterFunc(c.window, func() {
		c.mu.Lock()
		c.pending = false
		stopped := c.stopped
		c.mu.Unlock()
		if !stopped {
			c.fn()
		}
	})
}

func (c *coalescer) stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopped = true
	if c.timer != nil {
		c.timer.Stop()
	}
}
