package outline

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Key identifies a heading across edits that shift its line.
type Key uint64

// Keys returns a key per heading derived from its level, its text and how
// many identical (level, text) pairs precede it. Inserting text above a
// heading keeps its key; renaming it does not.
func Keys(headings []Heading) []Key {
	keys := make([]Key, len(headings))
	seen := make(map[Key]int, len(headings))
	var d xxhash.Digest
	for i, h := range headings {
		d.Reset()
		_, _ = d.WriteString(strconv.Itoa(h.Level))
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(h.Text)
		base := Key(d.Sum64())

		n := seen[base]
		seen[base] = n + 1

		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(strconv.Itoa(n))
		keys[i] = Key(d.Sum64())
	}
	return keys
}

// SameShape reports whether two heading lists have the same levels and text
// in the same order, ignoring start lines.
func SameShape(a, b []Heading) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Level != b[i].Level || a[i].Text != b[i].Text {
			return false
		}
	}
	return true
}
