package markdown

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

const (
	DefaultCJKPerMinute   = 300
	DefaultLatinPerMinute = 200
)

var (
	codeFenceRe = regexp.MustCompile("(?s)```.*?```")
	embedRe     = regexp.MustCompile(`!\[\[.*?\]\]`)
)

// WordCount splits a document into CJK characters and space separated
// words of everything else.
type WordCount struct {
	CJK   int
	Latin int
}

func isCJK(r rune) bool {
	return r >= 0x4e00 && r <= 0x9fff
}

// CountOptions picks what CountWords leaves out. The zero value counts
// everything.
type CountOptions struct {
	RemoveCodeBlocks bool
	RemoveImageLinks bool
}

// CountWords counts words in body text.
func CountWords(body string, opts CountOptions) WordCount {
	if opts.RemoveCodeBlocks {
		body = codeFenceRe.ReplaceAllString(body, "")
	}
	if opts.RemoveImageLinks {
		body = embedRe.ReplaceAllString(body, "")
	}

	var wc WordCount
	var rest strings.Builder
	for _, r := range body {
		switch {
		case isCJK(r):
			wc.CJK++
		case unicode.IsPunct(r):
			rest.WriteByte(' ')
		default:
			rest.WriteRune(r)
		}
	}
	wc.Latin = len(strings.Fields(rest.String()))
	return wc
}

// ReadingTime estimates minutes to read wc at the given rates, rounding each
// script up separately. Non-positive rates fall back to the defaults.
func ReadingTime(wc WordCount, cjkPerMin, latinPerMin int) int {
	if cjkPerMin <= 0 {
		cjkPerMin = DefaultCJKPerMinute
	}
	if latinPerMin <= 0 {
		latinPerMin = DefaultLatinPerMinute
	}
	return ceilDiv(wc.CJK, cjkPerMin) + ceilDiv(wc.Latin, latinPerMin)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// ReadingLabel renders a reading time in minutes.
func ReadingLabel(minutes int) string {
	switch {
	case minutes <= 0:
		return "Less than a minute"
	case minutes == 1:
		return "About a minute"
	case minutes < 60:
		return fmt.Sprintf("About %d minutes", minutes)
	}
	hours, mins := minutes/60, minutes%60
	label := fmt.Sprintf("About %d hour%s", hours, plural(hours))
	if mins > 0 {
		label += fmt.Sprintf(" %d minute%s", mins, plural(mins))
	}
	return label
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
