package blacklist

import (
	"path"
	"slices"
)

// Outcome describes what a list mutation did.
type Outcome int

const (
	Added Outcome = iota
	Removed
	AlreadyCovered
	CoveredByPattern
	NotListed
)

func (o Outcome) String() string {
	switch o {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case AlreadyCovered:
		return "already covered"
	case CoveredByPattern:
		return "covered by pattern"
	case NotListed:
		return "not listed"
	default:
		return "unknown"
	}
}

// Changed reports whether the outcome produced a new list.
func (o Outcome) Changed() bool {
	return o == Added || o == Removed
}

// Add appends pattern unless it is redundant, dropping any existing entries
// it subsumes. A nil result means the list is unchanged.
func Add(pattern string, list []string) ([]string, Outcome) {
	if IsRedundant(pattern, list) {
		return nil, AlreadyCovered
	}
	subsumed := FindSubsumed(pattern, list)
	out := make([]string, 0, len(list)+1)
	for _, e := range list {
		if !slices.Contains(subsumed, e) {
			out = append(out, e)
		}
	}
	return append(out, pattern), Added
}

// Remove drops exact occurrences of entry. A nil result means the list is
// unchanged.
func Remove(entry string, list []string) ([]string, Outcome) {
	if !slices.Contains(list, entry) {
		return nil, NotListed
	}
	out := make([]string, 0, len(list))
	for _, e := range list {
		if e != entry {
			out = append(out, e)
		}
	}
	return out, Removed
}

// Toggle removes p when it is listed verbatim and adds it when nothing covers
// it. A path covered only by some other pattern is left alone and reported
// as CoveredByPattern. A nil result means the list is unchanged.
func Toggle(p string, list []string) ([]string, Outcome) {
	if slices.Contains(list, p) {
		return Remove(p, list)
	}
	if Contains(p, list) {
		return nil, CoveredByPattern
	}
	return Add(p, list)
}

// FolderPattern returns the pattern covering every markdown file directly in
// the folder holding p.
func FolderPattern(p string) string {
	dir := path.Dir(p)
	if dir == "." || dir == "/" || dir == "" {
		return "*.md"
	}
	return dir + "/*.md"
}

// ToggleFolder removes the folder pattern for the folder holding p when it
// is listed verbatim and adds it otherwise. A broader pattern already
// covering the folder makes the add report AlreadyCovered.
func ToggleFolder(p string, list []string) ([]string, Outcome) {
	pattern := FolderPattern(p)
	if slices.Contains(list, pattern) {
		return Remove(pattern, list)
	}
	return Add(pattern, list)
}

// UseHeadingNumber reports whether headings in p should be numbered.
func UseHeadingNumber(enabled bool, p string, list []string) bool {
	return enabled && !Contains(p, list)
}
