package vault

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pfassina/tocnav/internal/outline"
)

// Slugify converts heading text to an anchor slug. Letters and digits of
// any script are kept, so CJK headings still get usable anchors.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))

	var buf strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			buf.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			buf.WriteRune('-')
		}
	}

	result := buf.String()
	// Clean up multiple consecutive hyphens
	for strings.Contains(result, "--") {
		result = strings.ReplaceAll(result, "--", "-")
	}
	return strings.Trim(result, "-")
}

// Anchors returns a unique slug per heading. Repeats get -1, -2, ... in
// document order.
func Anchors(headings []outline.Heading) []string {
	anchors := make([]string, len(headings))
	seen := make(map[string]int, len(headings))
	for i, h := range headings {
		slug := Slugify(h.Text)
		n, dup := seen[slug]
		seen[slug] = n + 1
		if dup {
			slug += "-" + strconv.Itoa(n)
		}
		anchors[i] = slug
	}
	return anchors
}
