package navigator

import (
	"errors"
	"reflect"
	"testing"

	"github.com/pfassina/tocnav/internal/config"
	"github.com/pfassina/tocnav/internal/markdown"
	"github.com/pfassina/tocnav/internal/outline"
)

type fakeHost struct {
	path     string
	headings []outline.Heading
	cursor   int
	scroll   float64
	mode     Mode
	fm       *markdown.Frontmatter
	err      error
	jumped   []int
}

func (h *fakeHost) Path() string                         { return h.path }
func (h *fakeHost) Headings() ([]outline.Heading, error) { return h.headings, h.err }
func (h *fakeHost) CursorLine() (int, error)             { return h.cursor, nil }
func (h *fakeHost) ScrollOffset() (float64, error)       { return h.scroll, nil }
func (h *fakeHost) Mode() Mode                           { return h.mode }
func (h *fakeHost) Frontmatter() *markdown.Frontmatter   { return h.fm }

func (h *fakeHost) NavigateTo(line int) error {
	h.jumped = append(h.jumped, line)
	h.cursor = line
	h.scroll = float64(line)
	return nil
}

func doc(levels ...int) []outline.Heading {
	hs := make([]outline.Heading, len(levels))
	for i, l := range levels {
		hs[i] = outline.Heading{Level: l, Text: string(rune('a' + i)), StartLine: i * 5}
	}
	return hs
}

func TestRefresh(t *testing.T) {
	host := &fakeHost{path: "notes/a.md", headings: doc(1, 2, 2, 3, 2), cursor: 12}
	s := New(Options{UseHeadingNumber: true, ShowWhenSingleHeading: true}, nil)

	o, err := s.Refresh(host)
	if err != nil {
		t.Fatal(err)
	}
	if o.Active != 2 {
		t.Errorf("Active = %d, want 2", o.Active)
	}
	if want := []string{"1.", "1.1.", "1.2.", "1.2.1.", "1.3."}; !reflect.DeepEqual(o.Number, want) {
		t.Errorf("Number = %q, want %q", o.Number, want)
	}
	if want := []int{0, 1, 1, 2, 1}; !reflect.DeepEqual(o.Depth, want) {
		t.Errorf("Depth = %v, want %v", o.Depth, want)
	}
	if want := []bool{true, false, true, false, false}; !reflect.DeepEqual(o.HasChildren, want) {
		t.Errorf("HasChildren = %v, want %v", o.HasChildren, want)
	}
	if !o.Show {
		t.Error("Show = false")
	}
}

func TestRefreshError(t *testing.T) {
	host := &fakeHost{err: errors.New("boom")}
	s := New(Options{}, nil)
	o, err := s.Refresh(host)
	if err == nil {
		t.Fatal("expected error")
	}
	if o.Active != -1 {
		t.Errorf("Active = %d, want -1", o.Active)
	}
}

func TestEmptyDocument(t *testing.T) {
	s := New(Options{ShowWhenSingleHeading: true}, nil)
	o, err := s.Refresh(&fakeHost{path: "empty.md"})
	if err != nil {
		t.Fatal(err)
	}
	if o.Active != -1 || o.Show || o.Len() != 0 {
		t.Errorf("empty outline = %+v", o)
	}
}

func TestToggleAndCollapseAll(t *testing.T) {
	s := New(Options{}, nil)
	s.SetDocument("a.md", doc(1, 2, 3, 2, 1))

	s.Toggle(0)
	o := s.Compute(ModeSource, 0)
	if want := []bool{true, false, false, false, true}; !reflect.DeepEqual(o.Visible, want) {
		t.Errorf("Visible = %v, want %v", o.Visible, want)
	}

	s.Toggle(0)
	if s.AnyCollapsed() {
		t.Error("toggle twice left headings collapsed")
	}

	s.Toggle(99)
	s.Toggle(-1)
	if s.AnyCollapsed() {
		t.Error("out-of-range toggle changed state")
	}

	s.CollapseAll()
	if want := map[int]bool{0: true, 1: true}; !reflect.DeepEqual(s.Collapsed(), want) {
		t.Errorf("Collapsed = %v, want %v", s.Collapsed(), want)
	}
	s.ExpandAll()
	if s.AnyCollapsed() {
		t.Error("ExpandAll left headings collapsed")
	}
}

func TestCollapseStateByIndex(t *testing.T) {
	s := New(Options{CollapseKeying: config.KeyByIndex}, nil)
	hs := doc(1, 2, 3)
	s.SetDocument("a.md", hs)
	s.Toggle(1)

	shifted := make([]outline.Heading, len(hs))
	copy(shifted, hs)
	for i := range shifted {
		shifted[i].StartLine += 3
	}
	if s.SetDocument("a.md", shifted) {
		t.Error("line shift reset collapse state")
	}
	if !s.IsCollapsed(1) {
		t.Error("collapse lost after line shift")
	}

	if !s.SetDocument("a.md", doc(1, 2, 3, 3)) {
		t.Error("structural change kept collapse state")
	}
	if s.AnyCollapsed() {
		t.Error("collapse state not cleared")
	}

	s.Toggle(1)
	if !s.SetDocument("b.md", doc(1, 2, 3, 3)) || s.AnyCollapsed() {
		t.Error("path change kept collapse state")
	}
}

func TestCollapseStateByIdentity(t *testing.T) {
	s := New(Options{CollapseKeying: config.KeyByIdentity}, nil)
	hs := []outline.Heading{
		{Level: 1, Text: "Title", StartLine: 0},
		{Level: 2, Text: "Usage", StartLine: 2},
		{Level: 3, Text: "Flags", StartLine: 4},
	}
	s.SetDocument("a.md", hs)
	s.Toggle(1)

	inserted := []outline.Heading{
		{Level: 1, Text: "Title", StartLine: 0},
		{Level: 2, Text: "Intro", StartLine: 2},
		{Level: 2, Text: "Usage", StartLine: 4},
		{Level: 3, Text: "Flags", StartLine: 6},
	}
	s.SetDocument("a.md", inserted)
	if !s.IsCollapsed(2) || s.IsCollapsed(1) {
		t.Errorf("collapsed = %v, want Usage (2) only", s.Collapsed())
	}

	s.SetDocument("a.md", inserted[:2])
	s.SetDocument("a.md", inserted)
	if s.AnyCollapsed() {
		t.Error("removed heading kept its collapse state")
	}
}

func TestNumberAndOutlineBlacklist(t *testing.T) {
	s := New(Options{
		UseHeadingNumber:      true,
		ShowWhenSingleHeading: true,
		NumberBlacklist:       []string{"drafts/*"},
		OutlineBlacklist:      []string{"private.md"},
	}, nil)

	s.SetDocument("drafts/x.md", doc(1, 2))
	o := s.Compute(ModeSource, 0)
	if !reflect.DeepEqual(o.Number, []string{"", ""}) {
		t.Errorf("Number = %q for blacklisted path", o.Number)
	}
	if !o.Show {
		t.Error("Show = false")
	}

	s.SetDocument("private.md", doc(1, 2))
	if s.Compute(ModeSource, 0).Show {
		t.Error("outline shown for blacklisted path")
	}
}

func TestExpandedFromFrontmatter(t *testing.T) {
	host := &fakeHost{
		path:     "a.md",
		headings: doc(1, 2),
		fm:       &markdown.Frontmatter{CSSClasses: []string{"unpin-outline"}},
	}
	s := New(Options{AlwaysExpand: true}, nil)
	o, err := s.Refresh(host)
	if err != nil {
		t.Fatal(err)
	}
	if o.Expanded {
		t.Error("Expanded = true despite unpin-outline")
	}
}

func TestNavigateSource(t *testing.T) {
	// start lines 0 5 10 15
	host := &fakeHost{path: "a.md", headings: doc(1, 2, 2, 2), cursor: 7}
	s := New(Options{}, nil)

	tests := []struct {
		dir  Direction
		want int
	}{
		{Next, 2},
		{Next, 3},
		{Next, 0},
		{Prev, 3},
		{Prev, 2},
	}
	for i, tt := range tests {
		got, err := s.Navigate(host, tt.dir)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("step %d: Navigate = %d, want %d", i, got, tt.want)
		}
	}
	if want := []int{10, 15, 0, 15, 10}; !reflect.DeepEqual(host.jumped, want) {
		t.Errorf("jumped = %v, want %v", host.jumped, want)
	}
}

func TestNavigatePreview(t *testing.T) {
	host := &fakeHost{path: "a.md", headings: doc(1, 2, 2, 2), scroll: 4.2, mode: ModePreview}
	s := New(Options{}, nil)

	// ceil(4.2) = 5 puts heading 1 in view.
	got, err := s.Navigate(host, Next)
	if err != nil {
		t.Fatal(err)
	}
	if got != 2 {
		t.Errorf("Navigate next = %d, want 2", got)
	}

	host.scroll = 0
	got, _ = s.Navigate(host, Prev)
	if got != 3 {
		t.Errorf("Navigate prev from first = %d, want 3", got)
	}
}

func TestFindClosest(t *testing.T) {
	s := New(Options{}, nil)
	s.SetDocument("a.md", doc(1, 2, 2, 2))

	tests := []struct {
		pos  int
		want int
	}{
		{-1, -1},
		{0, 0},
		{7, 1},
		{10, 2},
		{40, 3},
	}
	for _, tt := range tests {
		if got := s.FindClosest(tt.pos); got != tt.want {
			t.Errorf("FindClosest(%d) = %d, want %d", tt.pos, got, tt.want)
		}
	}
}

func TestNavigateEmpty(t *testing.T) {
	s := New(Options{}, nil)
	got, err := s.Navigate(&fakeHost{}, Next)
	if err != nil || got != -1 {
		t.Errorf("Navigate = %d, %v", got, err)
	}
}

func TestJumpTo(t *testing.T) {
	host := &fakeHost{path: "a.md", headings: doc(1, 2, 2)}
	s := New(Options{}, nil)
	s.SetDocument(host.path, host.headings)

	if err := s.JumpTo(host, 2); err != nil {
		t.Fatal(err)
	}
	if host.cursor != 10 {
		t.Errorf("cursor = %d, want 10", host.cursor)
	}
	if err := s.JumpTo(host, 5); err == nil {
		t.Error("expected error for out-of-range jump")
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode("preview"); err != nil || m != ModePreview {
		t.Errorf("ParseMode(preview) = %v, %v", m, err)
	}
	if _, err := ParseMode("split"); err == nil {
		t.Error("expected error")
	}
}

type lengthHost struct {
	*fakeHost
	lines int
}

func (h *lengthHost) LineCount() (int, error) { return h.lines, nil }

func TestLevelFilter(t *testing.T) {
	s := New(Options{UseHeadingNumber: true, ShowWhenSingleHeading: true, MinLevel: 2, MaxLevel: 3}, nil)
	s.SetDocument("a.md", doc(1, 2, 3, 4, 2))

	o := s.Compute(ModeSource, 0)
	var levels []int
	for _, h := range o.Headings {
		levels = append(levels, h.Level)
	}
	if want := []int{2, 3, 2}; !reflect.DeepEqual(levels, want) {
		t.Errorf("levels = %v, want %v", levels, want)
	}
	if want := []string{"1.", "1.1.", "2."}; !reflect.DeepEqual(o.Number, want) {
		t.Errorf("Number = %q, want %q", o.Number, want)
	}
	// The H1 at line 0 is filtered out, so nothing is active there.
	if o.Active != -1 {
		t.Errorf("Active = %d, want -1", o.Active)
	}
}

func TestProgress(t *testing.T) {
	host := &lengthHost{fakeHost: &fakeHost{path: "a.md", headings: doc(1, 2), cursor: 25}, lines: 101}
	s := New(Options{}, nil)
	o, err := s.Refresh(host)
	if err != nil {
		t.Fatal(err)
	}
	if o.Lines != 101 || o.Progress != 25 {
		t.Errorf("Lines, Progress = %d, %d, want 101, 25", o.Lines, o.Progress)
	}

	// Hosts that cannot report a length get no progress.
	o, _ = New(Options{}, nil).Refresh(host.fakeHost)
	if o.Lines != 0 || o.Progress != 0 {
		t.Errorf("Lines, Progress = %d, %d without a length", o.Lines, o.Progress)
	}
}

func TestTopBottomAndReturn(t *testing.T) {
	host := &lengthHost{fakeHost: &fakeHost{path: "a.md", headings: doc(1, 2, 2), cursor: 7}, lines: 40}
	s := New(Options{}, nil)

	if err := s.ReturnToCursor(host); !errors.Is(err, ErrNoMark) {
		t.Fatalf("ReturnToCursor before a jump = %v, want ErrNoMark", err)
	}

	if err := s.Bottom(host); err != nil {
		t.Fatal(err)
	}
	if host.cursor != 39 {
		t.Errorf("cursor after Bottom = %d, want 39", host.cursor)
	}
	if err := s.ReturnToCursor(host); err != nil {
		t.Fatal(err)
	}
	if host.cursor != 7 {
		t.Errorf("cursor after return = %d, want 7", host.cursor)
	}
	// Returning again goes back to where the jump landed.
	if err := s.ReturnToCursor(host); err != nil {
		t.Fatal(err)
	}
	if host.cursor != 39 {
		t.Errorf("cursor after second return = %d, want 39", host.cursor)
	}

	if err := s.Top(host); err != nil {
		t.Fatal(err)
	}
	if host.cursor != 0 {
		t.Errorf("cursor after Top = %d, want 0", host.cursor)
	}

	s.SetDocument(host.path, host.headings)
	if err := s.JumpTo(host, 2); err != nil {
		t.Fatal(err)
	}
	if err := s.ReturnToCursor(host); err != nil || host.cursor != 0 {
		t.Errorf("return after JumpTo = %d, %v, want 0", host.cursor, err)
	}

	s.SetDocument("b.md", host.headings)
	if err := s.ReturnToCursor(host); !errors.Is(err, ErrNoMark) {
		t.Errorf("mark survived a document change: %v", err)
	}
}

func TestBottomNeedsLength(t *testing.T) {
	s := New(Options{}, nil)
	if err := s.Bottom(&fakeHost{}); err == nil {
		t.Error("Bottom succeeded on a host without a length")
	}
}
