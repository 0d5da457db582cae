package markdown

import (
	"bufio"
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	pinClass   = "pin-outline"
	unpinClass = "unpin-outline"
)

// Frontmatter holds the YAML frontmatter fields the outline cares about.
type Frontmatter struct {
	Title      string
	Tags       []string
	CSSClasses []string
	Raw        map[string]any
	EndLine    int // number of lines taken by the frontmatter, delimiters included
}

// frontmatterEnd returns the line count of a leading --- delimited block, or
// 0 when there is none or it is unclosed.
func frontmatterEnd(content []byte) int {
	scanner := bufio.NewScanner(bytes.NewReader(content))
	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "---" {
		return 0
	}
	lineNum := 1
	for scanner.Scan() {
		lineNum++
		if strings.TrimSpace(scanner.Text()) == "---" {
			return lineNum
		}
	}
	return 0
}

// ExtractFrontmatter parses a leading --- delimited YAML block. It returns
// nil when there is no closed block. Invalid YAML yields a frontmatter with
// only EndLine set so callers still skip the block.
func ExtractFrontmatter(content []byte) *Frontmatter {
	end := frontmatterEnd(content)
	if end == 0 {
		return nil
	}
	lines := bytes.SplitN(content, []byte("\n"), end)
	body := bytes.Join(lines[1:end-1], []byte("\n"))

	fm := &Frontmatter{EndLine: end, Raw: map[string]any{}}
	if err := yaml.Unmarshal(body, &fm.Raw); err != nil || fm.Raw == nil {
		fm.Raw = map[string]any{}
		return fm
	}

	if s, ok := fm.Raw["title"].(string); ok {
		fm.Title = s
	}
	fm.Tags = stringList(fm.Raw["tags"])
	fm.CSSClasses = stringList(fm.Raw["cssclasses"])
	if len(fm.CSSClasses) == 0 {
		fm.CSSClasses = stringList(fm.Raw["cssclass"])
	}
	return fm
}

// stringList accepts a YAML list or a comma/space separated string.
func stringList(v any) []string {
	var out []string
	switch v := v.(type) {
	case string:
		out = strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ' ' })
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
	}
	return out
}

// PinState is a per-document override of the outline expansion setting.
type PinState int

const (
	Unpinned PinState = iota
	PinnedExpanded
	PinnedCompact
)

// Pin reports the override set through cssclasses. Expanded wins when both
// classes are present.
func (fm *Frontmatter) Pin() PinState {
	if fm == nil {
		return Unpinned
	}
	state := Unpinned
	for _, c := range fm.CSSClasses {
		switch c {
		case pinClass:
			return PinnedExpanded
		case unpinClass:
			state = PinnedCompact
		}
	}
	return state
}

// Expanded decides whether the outline renders in full or as the compact
// indicator.
func Expanded(fm *Frontmatter, alwaysExpand bool) bool {
	switch fm.Pin() {
	case PinnedExpanded:
		return true
	case PinnedCompact:
		return false
	default:
		return alwaysExpand
	}
}
