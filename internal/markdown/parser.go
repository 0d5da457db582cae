// Package markdown extracts the outline-relevant parts of a markdown
// document: headings with their source lines, frontmatter, and reading
// statistics.
package markdown

import (
	"bytes"
	"strings"

	"github.com/pfassina/tocnav/internal/outline"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Parser wraps goldmark for heading extraction.
type Parser struct {
	md    goldmark.Markdown
	clean bool
}

// NewParser returns a parser. With clean set, heading text goes through
// CleanHeading before it is returned.
func NewParser(clean bool) *Parser {
	return &Parser{
		md:    goldmark.New(),
		clean: clean,
	}
}

// Document is a parsed markdown document.
type Document struct {
	Content     []byte
	Frontmatter *Frontmatter
	Headings    []outline.Heading
}

// Parse parses content and returns its frontmatter and headings.
func (p *Parser) Parse(content []byte) *Document {
	doc := &Document{Content: content}
	doc.Frontmatter = ExtractFrontmatter(content)
	doc.Headings = p.Headings(content)
	return doc
}

// Body returns the content without frontmatter.
func (d *Document) Body() string {
	if d.Frontmatter != nil && d.Frontmatter.EndLine > 0 {
		lines := bytes.Split(d.Content, []byte("\n"))
		if d.Frontmatter.EndLine < len(lines) {
			return string(bytes.Join(lines[d.Frontmatter.EndLine:], []byte("\n")))
		}
		return ""
	}
	return string(d.Content)
}

// Headings returns every ATX and setext heading in content with its 0-based
// start line. Headings inside frontmatter or code blocks are ignored, as are
// headings with no text.
func (p *Parser) Headings(content []byte) []outline.Heading {
	src := blankFrontmatter(content)
	root := p.md.Parser().Parse(text.NewReader(src))

	lines := newLineIndex(src)
	var headings []outline.Heading

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if h.Lines().Len() == 0 {
			return ast.WalkSkipChildren, nil
		}

		var sb strings.Builder
		for i := 0; i < h.Lines().Len(); i++ {
			if i > 0 {
				sb.WriteByte(' ')
			}
			seg := h.Lines().At(i)
			sb.Write(seg.Value(src))
		}
		txt := strings.TrimSpace(sb.String())
		if p.clean {
			txt = CleanHeading(txt)
		}
		if txt == "" {
			return ast.WalkSkipChildren, nil
		}

		headings = append(headings, outline.Heading{
			Level:     h.Level,
			Text:      txt,
			StartLine: lines.lineOf(h.Lines().At(0).Start),
		})
		return ast.WalkSkipChildren, nil
	})

	return headings
}

// lineIndex maps byte offsets to 0-based line numbers.
type lineIndex []int

func newLineIndex(src []byte) lineIndex {
	idx := lineIndex{0}
	for i, b := range src {
		if b == '\n' {
			idx = append(idx, i+1)
		}
	}
	return idx
}

func (idx lineIndex) lineOf(offset int) int {
	lo, hi := 0, len(idx)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if idx[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// blankFrontmatter replaces frontmatter with empty lines so that line
// numbers stay put and "key: value\n---" is not read as a setext heading.
func blankFrontmatter(content []byte) []byte {
	end := frontmatterEnd(content)
	if end == 0 {
		return content
	}
	out := make([]byte, 0, len(content))
	line := 0
	for i, b := range content {
		if line >= end {
			return append(out, content[i:]...)
		}
		if b == '\n' {
			out = append(out, '\n')
			line++
		}
	}
	return out
}
