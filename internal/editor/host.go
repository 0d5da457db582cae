package editor

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/pfassina/tocnav/internal/markdown"
	"github.com/pfassina/tocnav/internal/navigator"
	"github.com/pfassina/tocnav/internal/outline"
	"github.com/pfassina/tocnav/internal/vault"
)

// Host follows the current buffer of a running Neovim.
type Host struct {
	rpc    *RPC
	vault  *vault.Vault
	parser *markdown.Parser

	mu   sync.Mutex
	last *markdown.Document
}

func NewHost(rpc *RPC, v *vault.Vault, parser *markdown.Parser) *Host {
	return &Host{rpc: rpc, vault: v, parser: parser}
}

// Path returns the buffer's path relative to the vault, or "" for unnamed
// buffers and RPC failures.
func (h *Host) Path() string {
	name, err := h.rpc.CurrentFile()
	if err != nil || name == "" {
		return ""
	}
	return h.vault.Rel(name)
}

// Headings parses the live buffer, including unsaved edits.
func (h *Host) Headings() ([]outline.Heading, error) {
	lines, err := h.rpc.BufferContent()
	if err != nil {
		return nil, fmt.Errorf("read buffer: %w", err)
	}
	doc := h.parser.Parse(bytes.Join(lines, []byte("\n")))

	h.mu.Lock()
	h.last = doc
	h.mu.Unlock()
	return doc.Headings, nil
}

// Frontmatter returns the frontmatter seen by the last Headings call.
func (h *Host) Frontmatter() *markdown.Frontmatter {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.last == nil {
		return nil
	}
	return h.last.Frontmatter
}

// Stats returns word counts for the last parsed buffer.
func (h *Host) Stats(opts markdown.CountOptions) markdown.WordCount {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.last == nil {
		return markdown.WordCount{}
	}
	return markdown.CountWords(h.last.Body(), opts)
}

func (h *Host) LineCount() (int, error) {
	return h.rpc.LineCount()
}

// CursorLine returns the 0-based cursor line.
func (h *Host) CursorLine() (int, error) {
	line, _, err := h.rpc.CursorPosition()
	if err != nil {
		return 0, err
	}
	return line - 1, nil
}

// ScrollOffset returns the 0-based first visible line.
func (h *Host) ScrollOffset() (float64, error) {
	top, err := h.rpc.TopLine()
	if err != nil {
		return 0, err
	}
	return float64(top - 1), nil
}

func (h *Host) Mode() navigator.Mode { return navigator.ModeSource }

// NavigateTo puts the cursor on line and centres it in the window.
func (h *Host) NavigateTo(line int) error {
	if err := h.rpc.SetCursorPosition(line+1, 0); err != nil {
		return err
	}
	return h.rpc.ExecCommand("normal! zz")
}
