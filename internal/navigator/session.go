package navigator

import (
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"github.com/pfassina/tocnav/internal/blacklist"
	"github.com/pfassina/tocnav/internal/config"
	"github.com/pfassina/tocnav/internal/markdown"
	"github.com/pfassina/tocnav/internal/outline"
)

// Options are the policy flags that shape an outline.
type Options struct {
	SkipHeading1          bool
	UseHeadingNumber      bool
	ShowWhenSingleHeading bool
	AlwaysExpand          bool
	CollapseKeying        string
	NumberBlacklist       []string
	OutlineBlacklist      []string
	// MinLevel and MaxLevel drop headings outside the range before anything
	// else sees them. Zero leaves a side open.
	MinLevel int
	MaxLevel int
}

// OptionsFromConfig picks the outline options out of a config.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		SkipHeading1:          cfg.Render.SkipHeading1,
		UseHeadingNumber:      cfg.Render.UseHeadingNumber,
		ShowWhenSingleHeading: cfg.TOC.ShowWhenSingleHeading,
		AlwaysExpand:          cfg.TOC.AlwaysExpand,
		CollapseKeying:        cfg.TOC.CollapseKeying,
		NumberBlacklist:       cfg.Blacklist.HeadingNumber,
		OutlineBlacklist:      cfg.Blacklist.Outline,
		MinLevel:              cfg.TOC.MinLevel,
		MaxLevel:              cfg.TOC.MaxLevel,
	}
}

// CountOptions picks the word count options out of a config.
func CountOptions(cfg config.Config) markdown.CountOptions {
	return markdown.CountOptions{
		RemoveCodeBlocks: cfg.Reading.RemoveCodeBlocks,
		RemoveImageLinks: cfg.Reading.RemoveImageLinks,
	}
}

// ErrNoMark is returned by ReturnToCursor before any jump.
var ErrNoMark = errors.New("no position to return to")

// Outline is everything a renderer needs for one frame. All slices are
// indexed like Headings.
type Outline struct {
	Path        string
	Headings    []outline.Heading
	Depth       []int
	Number      []string
	Visible     []bool
	HasChildren []bool
	Collapsed   []bool
	Active      int
	Show        bool
	Expanded    bool
	// Lines is the document length, or 0 when the host cannot tell.
	Lines int
	// Progress is the position as a percentage of Lines.
	Progress int
}

// Len returns the number of headings.
func (o Outline) Len() int { return len(o.Headings) }

// VisibleIndices returns the indices of visible headings in order.
func (o Outline) VisibleIndices() []int {
	var idx []int
	for i, v := range o.Visible {
		if v {
			idx = append(idx, i)
		}
	}
	return idx
}

// Session holds the collapse state for the document currently shown.
// It is not safe for concurrent use.
type Session struct {
	opts Options
	log  *log.Logger

	path     string
	headings []outline.Heading
	keys     []outline.Key
	expanded bool
	lines    int

	// mark is the position before the last jump.
	mark    int
	hasMark bool

	collapsed    map[int]bool
	collapsedKey map[outline.Key]bool
}

// New returns a session with no document.
func New(opts Options, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	if opts.CollapseKeying == "" {
		opts.CollapseKeying = config.KeyByIndex
	}
	return &Session{
		opts:         opts,
		log:          logger,
		expanded:     opts.AlwaysExpand,
		collapsed:    make(map[int]bool),
		collapsedKey: make(map[outline.Key]bool),
	}
}

// Headings returns the current heading list.
func (s *Session) Headings() []outline.Heading { return s.headings }

func (s *Session) byIdentity() bool {
	return s.opts.CollapseKeying == config.KeyByIdentity
}

// SetDocument replaces the heading list. Collapse state survives when the
// document is the same one with only line shifts; with identity keying it
// also survives edits, minus headings that disappeared. Reports whether the
// collapse state was reset.
func (s *Session) SetDocument(path string, headings []outline.Heading) bool {
	headings = outline.FilterLevels(headings, s.opts.MinLevel, s.opts.MaxLevel)
	samePath := path == s.path
	if !samePath {
		s.hasMark = false
	}
	old := s.headings
	s.path = path
	s.headings = headings

	if s.byIdentity() {
		s.keys = outline.Keys(headings)
		if !samePath {
			clear(s.collapsedKey)
			return true
		}
		live := make(map[outline.Key]bool, len(s.keys))
		for _, k := range s.keys {
			live[k] = true
		}
		for k := range s.collapsedKey {
			if !live[k] {
				delete(s.collapsedKey, k)
			}
		}
		return false
	}

	if samePath && outline.SameShape(old, headings) {
		return false
	}
	if len(s.collapsed) > 0 {
		s.log.Debug("collapse state reset", "path", path, "headings", len(headings))
	}
	clear(s.collapsed)
	return true
}

// SetLineCount sets the document length used for reading progress.
func (s *Session) SetLineCount(n int) { s.lines = n }

// SetExpanded sets the expansion used when the host has no frontmatter.
func (s *Session) SetExpanded(expanded bool) { s.expanded = expanded }

// IsCollapsed reports whether heading i is collapsed.
func (s *Session) IsCollapsed(i int) bool {
	if i < 0 || i >= len(s.headings) {
		return false
	}
	if s.byIdentity() {
		return s.collapsedKey[s.keys[i]]
	}
	return s.collapsed[i]
}

func (s *Session) setCollapsed(i int, v bool) {
	if s.byIdentity() {
		if v {
			s.collapsedKey[s.keys[i]] = true
		} else {
			delete(s.collapsedKey, s.keys[i])
		}
		return
	}
	if v {
		s.collapsed[i] = true
	} else {
		delete(s.collapsed, i)
	}
}

// Collapsed returns the collapsed set by index.
func (s *Session) Collapsed() map[int]bool {
	out := make(map[int]bool)
	for i := range s.headings {
		if s.IsCollapsed(i) {
			out[i] = true
		}
	}
	return out
}

// Toggle flips the collapse state of heading i. Out-of-range indices are
// ignored.
func (s *Session) Toggle(i int) {
	if i < 0 || i >= len(s.headings) {
		return
	}
	s.setCollapsed(i, !s.IsCollapsed(i))
}

// CollapseAll collapses every heading that has children.
func (s *Session) CollapseAll() {
	for _, i := range outline.Collapsible(s.headings) {
		s.setCollapsed(i, true)
	}
}

// ExpandAll clears the collapsed set.
func (s *Session) ExpandAll() {
	clear(s.collapsed)
	clear(s.collapsedKey)
}

// AnyCollapsed reports whether any heading is collapsed.
func (s *Session) AnyCollapsed() bool {
	for i := range s.headings {
		if s.IsCollapsed(i) {
			return true
		}
	}
	return false
}

// FindClosest returns the last heading starting at or before position.
func (s *Session) FindClosest(position int) int {
	return outline.ClosestAtOrBefore(s.headings, position)
}

// ActiveAt returns the active heading for a host position.
func (s *Session) ActiveAt(mode Mode, position float64) int {
	if mode == ModePreview {
		return s.FindClosest(int(math.Ceil(position)))
	}
	return outline.LastAtOrBefore(s.headings, int(position))
}

// Compute builds the render snapshot for the given host position.
func (s *Session) Compute(mode Mode, position float64) Outline {
	hs := s.headings
	o := Outline{
		Path:        s.path,
		Headings:    hs,
		Depth:       outline.Depths(hs),
		Visible:     outline.Visibility(hs, s.Collapsed(), s.opts.SkipHeading1),
		HasChildren: make([]bool, len(hs)),
		Collapsed:   make([]bool, len(hs)),
		Active:      s.ActiveAt(mode, position),
		Expanded:    s.expanded,
		Lines:       s.lines,
	}
	if s.lines > 0 {
		o.Progress = outline.Progress(position, s.lines)
	}

	if blacklist.UseHeadingNumber(s.opts.UseHeadingNumber, s.path, s.opts.NumberBlacklist) {
		o.Number = outline.Numbers(hs, s.opts.SkipHeading1)
	} else {
		o.Number = make([]string, len(hs))
	}
	for i := range hs {
		o.HasChildren[i] = outline.HasChildren(i, hs)
		o.Collapsed[i] = s.IsCollapsed(i)
	}

	o.Show = outline.ShouldShow(hs, s.opts.SkipHeading1, s.opts.ShowWhenSingleHeading) &&
		!blacklist.Contains(s.path, s.opts.OutlineBlacklist)
	return o
}

// sync pulls the host's headings and frontmatter into the session.
func (s *Session) sync(host Host) error {
	headings, err := host.Headings()
	if err != nil {
		return fmt.Errorf("read headings: %w", err)
	}
	s.SetDocument(host.Path(), headings)
	if lh, ok := host.(LengthHost); ok {
		n, err := lh.LineCount()
		if err != nil {
			return fmt.Errorf("read line count: %w", err)
		}
		s.lines = n
	}
	if fh, ok := host.(FrontmatterHost); ok {
		s.expanded = markdown.Expanded(fh.Frontmatter(), s.opts.AlwaysExpand)
	}
	return nil
}

func position(host Host) (float64, error) {
	if host.Mode() == ModePreview {
		off, err := host.ScrollOffset()
		if err != nil {
			return 0, fmt.Errorf("read scroll offset: %w", err)
		}
		return off, nil
	}
	line, err := host.CursorLine()
	if err != nil {
		return 0, fmt.Errorf("read cursor: %w", err)
	}
	return float64(line), nil
}

// Refresh re-reads the host and returns a fresh snapshot.
func (s *Session) Refresh(host Host) (Outline, error) {
	if err := s.sync(host); err != nil {
		return Outline{Active: -1}, err
	}
	pos, err := position(host)
	if err != nil {
		return Outline{Active: -1}, err
	}
	return s.Compute(host.Mode(), pos), nil
}

// Direction is a navigation step.
type Direction int

const (
	Next Direction = 1
	Prev Direction = -1
)

// Navigate moves the host to the next or previous heading relative to its
// current position, wrapping at both ends. Returns the target index, or -1
// when the document has no headings.
func (s *Session) Navigate(host Host, dir Direction) (int, error) {
	if err := s.sync(host); err != nil {
		return -1, err
	}
	if len(s.headings) == 0 {
		return -1, nil
	}
	pos, err := position(host)
	if err != nil {
		return -1, err
	}

	var target int
	if host.Mode() == ModePreview {
		active := s.ActiveAt(ModePreview, pos)
		target = outline.StepFrom(len(s.headings), active, int(dir))
	} else if dir == Next {
		target = outline.NextAfter(s.headings, int(pos))
	} else {
		target = outline.PrevBefore(s.headings, int(pos))
	}
	return target, s.jump(host, target)
}

// JumpTo moves the host to heading i.
func (s *Session) JumpTo(host Host, i int) error {
	if i < 0 || i >= len(s.headings) {
		return fmt.Errorf("heading %d out of range (%d headings)", i, len(s.headings))
	}
	return s.jump(host, i)
}

func (s *Session) jump(host Host, i int) error {
	line := s.headings[i].StartLine
	if err := s.goTo(host, line); err != nil {
		return err
	}
	s.log.Debug("navigated", "heading", s.headings[i].Text, "line", line)
	return nil
}

// goTo moves the host to line, remembering where it was.
func (s *Session) goTo(host Host, line int) error {
	pos, err := position(host)
	if err != nil {
		return err
	}
	if err := host.NavigateTo(line); err != nil {
		return fmt.Errorf("navigate to line %d: %w", line, err)
	}
	s.mark, s.hasMark = int(pos), true
	return nil
}

// Top moves the host to the first line.
func (s *Session) Top(host Host) error {
	return s.goTo(host, 0)
}

// Bottom moves the host to the last line. The host must implement
// LengthHost.
func (s *Session) Bottom(host Host) error {
	lh, ok := host.(LengthHost)
	if !ok {
		return errors.New("host cannot report its length")
	}
	n, err := lh.LineCount()
	if err != nil {
		return fmt.Errorf("read line count: %w", err)
	}
	return s.goTo(host, max(n-1, 0))
}

// ReturnToCursor moves the host back to where it was before the last jump.
// The position it leaves becomes the new mark, so calling it twice returns
// to the jump target.
func (s *Session) ReturnToCursor(host Host) error {
	if !s.hasMark {
		return ErrNoMark
	}
	line := s.mark
	if err := s.goTo(host, line); err != nil {
		return err
	}
	s.log.Debug("returned", "line", line)
	return nil
}
