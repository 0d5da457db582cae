// Package navigator keeps an outline in step with a live document: it owns
// the collapse state, combines the outline computations into one render
// snapshot, and moves the host to headings on request.
package navigator

import (
	"fmt"

	"github.com/pfassina/tocnav/internal/markdown"
	"github.com/pfassina/tocnav/internal/outline"
)

// Mode says how a host reports its position.
type Mode int

const (
	// ModeSource hosts report an integer cursor line.
	ModeSource Mode = iota
	// ModePreview hosts report a fractional scroll offset in line units.
	ModePreview
)

func (m Mode) String() string {
	switch m {
	case ModeSource:
		return "source"
	case ModePreview:
		return "preview"
	default:
		return "unknown"
	}
}

// ParseMode parses "source" or "preview".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "source", "":
		return ModeSource, nil
	case "preview":
		return ModePreview, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}

// Host is the document the outline follows.
type Host interface {
	// Path is the document path used for blacklist lookups.
	Path() string
	Headings() ([]outline.Heading, error)
	CursorLine() (int, error)
	ScrollOffset() (float64, error)
	Mode() Mode
	// NavigateTo moves the host's cursor or view to a 0-based line.
	NavigateTo(line int) error
}

// LengthHost is implemented by hosts that know how many lines the document
// has. It enables reading progress and jumping to the bottom.
type LengthHost interface {
	LineCount() (int, error)
}

// FrontmatterHost is implemented by hosts that can expose the document's
// frontmatter, which may pin the outline expanded or compact.
type FrontmatterHost interface {
	Frontmatter() *markdown.Frontmatter
}
