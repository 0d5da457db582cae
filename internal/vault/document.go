package vault

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pfassina/tocnav/internal/markdown"
	"github.com/pfassina/tocnav/internal/navigator"
	"github.com/pfassina/tocnav/internal/outline"
)

// Document is a markdown file on disk viewed through a scrolling window. It
// reports its position as a scroll offset, the way a rendered preview does.
// A Document is not safe for concurrent use.
type Document struct {
	vault  *Vault
	abs    string
	rel    string
	parser *markdown.Parser

	parsed *markdown.Document
	lines  []string
	offset float64
}

// Open reads and parses the document at path.
func (v *Vault) Open(path string, parser *markdown.Parser) (*Document, error) {
	d := &Document{
		vault:  v,
		abs:    v.Abs(path),
		parser: parser,
	}
	d.rel = v.Rel(d.abs)
	if err := d.Reload(); err != nil {
		return nil, err
	}
	return d, nil
}

// Reload re-reads the file. The scroll offset is kept, clamped to the new
// length.
func (d *Document) Reload() error {
	data, err := os.ReadFile(d.abs)
	if err != nil {
		return fmt.Errorf("read %s: %w", d.rel, err)
	}
	d.parsed = d.parser.Parse(data)
	d.lines = splitLines(data)
	d.offset = d.clamp(d.offset)
	return nil
}

func splitLines(data []byte) []string {
	data = bytes.TrimSuffix(data, []byte("\n"))
	if len(data) == 0 {
		return nil
	}
	parts := bytes.Split(data, []byte("\n"))
	lines := make([]string, len(parts))
	for i, p := range parts {
		lines[i] = string(bytes.TrimSuffix(p, []byte("\r")))
	}
	return lines
}

func (d *Document) clamp(off float64) float64 {
	maxOff := float64(len(d.lines) - 1)
	if off > maxOff {
		off = maxOff
	}
	if off < 0 {
		off = 0
	}
	return off
}

// AbsPath returns the file path on disk.
func (d *Document) AbsPath() string { return d.abs }

// Path returns the vault-relative path.
func (d *Document) Path() string { return d.rel }

func (d *Document) Headings() ([]outline.Heading, error) {
	return d.parsed.Headings, nil
}

func (d *Document) Frontmatter() *markdown.Frontmatter {
	return d.parsed.Frontmatter
}

// Lines returns the document lines.
func (d *Document) Lines() []string { return d.lines }

func (d *Document) LineCount() (int, error) { return len(d.lines), nil }

// CursorLine returns the top line of the view.
func (d *Document) CursorLine() (int, error) { return int(d.offset), nil }

func (d *Document) ScrollOffset() (float64, error) { return d.offset, nil }

func (d *Document) Mode() navigator.Mode { return navigator.ModePreview }

// NavigateTo scrolls the view so line is at the top.
func (d *Document) NavigateTo(line int) error {
	if line < 0 || (len(d.lines) > 0 && line >= len(d.lines)) {
		return fmt.Errorf("line %d outside %s (%d lines)", line, d.rel, len(d.lines))
	}
	d.offset = d.clamp(float64(line))
	return nil
}

// Scroll moves the view by delta lines.
func (d *Document) Scroll(delta float64) {
	d.offset = d.clamp(d.offset + delta)
}

// Stats returns the word count of the body.
func (d *Document) Stats(opts markdown.CountOptions) markdown.WordCount {
	return markdown.CountWords(d.parsed.Body(), opts)
}
