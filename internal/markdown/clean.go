package markdown

import (
	"regexp"
	"strings"
)

type rewrite struct {
	re   *regexp.Regexp
	repl string
}

// Applied in order; links before emphasis so link labels keep their markup
// until the emphasis passes run.
var headingRewrites = []rewrite{
	{regexp.MustCompile(`^#+\s+`), ""},
	{regexp.MustCompile(`\[\[([^\]]+)\]\]`), "$1"},
	{regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`), "$1"},
	{regexp.MustCompile(`\$\$([^$]*)\$\$`), "$1"},
	{regexp.MustCompile(`\$([^$]*)\$`), "$1"},
	{regexp.MustCompile(`==([^=]+)==`), "$1"},
	{regexp.MustCompile(`~~([^~]+)~~`), "$1"},
	{regexp.MustCompile(`<[^>]+>`), ""},
	{regexp.MustCompile(`\^([^^]+)\^`), "$1"},
	{regexp.MustCompile(`%%[^%]*%%`), ""},
	{regexp.MustCompile(`\*\*([^*]+)\*\*`), "$1"},
	{regexp.MustCompile(`__([^_]+)__`), "$1"},
	{regexp.MustCompile(`\*([^*]+)\*`), "$1"},
	{regexp.MustCompile("`([^`]+)`"), "$1"},
}

// CleanHeading strips inline markup from heading text, keeping the visible
// words: link labels, math source, emphasised text.
func CleanHeading(s string) string {
	for _, rw := range headingRewrites {
		s = rw.re.ReplaceAllString(s, rw.repl)
	}
	return strings.TrimSpace(s)
}

// CleanAll returns a copy of texts with CleanHeading applied to each.
func CleanAll(texts []string) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = CleanHeading(t)
	}
	return out
}
