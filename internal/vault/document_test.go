package vault

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pfassina/tocnav/internal/markdown"
	"github.com/pfassina/tocnav/internal/navigator"
)

const sample = `---
cssclasses: [pin-outline]
---
# Title

intro

## One

text

## Two

more
`

func writeNote(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDocumentHost(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "notes/a.md", sample)

	v := New(root)
	d, err := v.Open("notes/a.md", markdown.NewParser(true))
	if err != nil {
		t.Fatal(err)
	}

	if d.Path() != "notes/a.md" {
		t.Errorf("Path() = %q", d.Path())
	}
	if d.Mode() != navigator.ModePreview {
		t.Errorf("Mode() = %v", d.Mode())
	}
	hs, _ := d.Headings()
	if len(hs) != 3 || hs[1].Text != "One" || hs[1].StartLine != 7 {
		t.Fatalf("headings = %+v", hs)
	}
	if d.Frontmatter().Pin() != markdown.PinnedExpanded {
		t.Error("pin-outline not picked up")
	}

	if err := d.NavigateTo(11); err != nil {
		t.Fatal(err)
	}
	if off, _ := d.ScrollOffset(); off != 11 {
		t.Errorf("offset = %v, want 11", off)
	}
	if err := d.NavigateTo(500); err == nil {
		t.Error("expected error for line past the end")
	}

	d.Scroll(100)
	if off, _ := d.ScrollOffset(); off != float64(len(d.Lines())-1) {
		t.Errorf("scroll not clamped: %v", off)
	}
	d.Scroll(-1000)
	if off, _ := d.ScrollOffset(); off != 0 {
		t.Errorf("scroll not clamped at top: %v", off)
	}
}

func TestDocumentReload(t *testing.T) {
	root := t.TempDir()
	path := writeNote(t, root, "a.md", "# A\n\n## B\n")

	d, err := New(root).Open(path, markdown.NewParser(false))
	if err != nil {
		t.Fatal(err)
	}
	writeNote(t, root, "a.md", "# A\n\n## B\n\n## C\n")
	if err := d.Reload(); err != nil {
		t.Fatal(err)
	}
	hs, _ := d.Headings()
	if len(hs) != 3 {
		t.Errorf("got %d headings after reload, want 3", len(hs))
	}

	os.Remove(path)
	if err := d.Reload(); err == nil {
		t.Error("expected error after removal")
	}
}

func TestRel(t *testing.T) {
	root := t.TempDir()
	v := New(root)
	if got := v.Rel(filepath.Join(root, "a", "b.md")); got != "a/b.md" {
		t.Errorf("Rel = %q", got)
	}
	outside := filepath.Join(filepath.Dir(root), "elsewhere.md")
	if got := v.Rel(outside); got != filepath.ToSlash(outside) {
		t.Errorf("Rel(outside) = %q", got)
	}
}

func TestListNotes(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "b.md", "")
	writeNote(t, root, "a/c.md", "")
	writeNote(t, root, ".hidden/d.md", "")
	writeNote(t, root, "img.png", "")

	notes, err := New(root).ListNotes()
	if err != nil {
		t.Fatal(err)
	}
	var paths []string
	for _, n := range notes {
		paths = append(paths, n.Path)
	}
	want := []string{"a/c.md", "b.md"}
	if len(paths) != len(want) || paths[0] != want[0] || paths[1] != want[1] {
		t.Errorf("ListNotes = %v, want %v", paths, want)
	}
}

func TestDocumentLengthAndStats(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "a.md", "# Code\n\n```\nx := 1\n```\n\nsome prose\n")

	d, err := New(root).Open("a.md", markdown.NewParser(true))
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := d.LineCount(); n != 7 {
		t.Errorf("LineCount() = %d, want 7", n)
	}

	all := d.Stats(markdown.CountOptions{})
	prose := d.Stats(markdown.CountOptions{RemoveCodeBlocks: true})
	if all.Latin <= prose.Latin {
		t.Errorf("code not counted by default: all=%d prose=%d", all.Latin, prose.Latin)
	}
}
