package slug

import (
	"regexp"
	"strings"
)

var (
	nonWord    = regexp.MustCompile(`[^\w\s]`)
	whitespace = regexp.MustCompile(`\s+`)
)

// Derive builds a URL-safe slug from a post title: lowercased, every
// non-word character removed, every run of whitespace collapsed to a single
// hyphen. "¡Mi Show #1!" becomes "mi-show-1".
func Derive(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = nonWord.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	return s
}
