// Package blacklist matches document paths against glob patterns and keeps
// pattern lists free of redundant entries.
//
// Patterns use two wildcards: '*' matches any run of characters, including
// '/', and '?' matches exactly one character. Everything else is literal.
package blacklist

import (
	"regexp"
	"strings"
	"sync"
)

var (
	cacheMu sync.Mutex
	cache   = map[string]*regexp.Regexp{}
)

// compile turns a glob into an anchored regexp. Escaping first means the
// result always compiles.
func compile(pattern string) *regexp.Regexp {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if re, ok := cache[pattern]; ok {
		return re
	}
	expr := regexp.QuoteMeta(pattern)
	expr = strings.ReplaceAll(expr, `\*`, `.*`)
	expr = strings.ReplaceAll(expr, `\?`, `.`)
	re := regexp.MustCompile("^" + expr + "$")
	cache[pattern] = re
	return re
}

// Match reports whether path matches the glob pattern.
func Match(path, pattern string) bool {
	return compile(pattern).MatchString(path)
}

// Contains reports whether path equals or matches any of the patterns.
func Contains(path string, patterns []string) bool {
	return Matching(path, patterns) != ""
}

// Matching returns the first pattern that path equals or matches, or "".
func Matching(path string, patterns []string) string {
	for _, p := range patterns {
		if p == path || Match(path, p) {
			return p
		}
	}
	return ""
}

// IsRedundant reports whether pattern is already covered by existing: either
// listed verbatim or matched, as a literal string, by an existing glob.
func IsRedundant(pattern string, existing []string) bool {
	for _, e := range existing {
		if e == pattern || Match(pattern, e) {
			return true
		}
	}
	return false
}

// FindSubsumed returns the existing patterns that pattern would cover.
func FindSubsumed(pattern string, existing []string) []string {
	var out []string
	for _, e := range existing {
		if e != pattern && Match(e, pattern) {
			out = append(out, e)
		}
	}
	return out
}
