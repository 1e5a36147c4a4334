package plagiarism

import (
	"regexp"
	"strings"
)

var (
	nonWordPattern    = regexp.MustCompile(`[^\w\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize converts text to its canonical comparable form: lowercase,
// punctuation collapsed to spaces, whitespace runs collapsed to a
// single space, trimmed. \w and \s are Go's ASCII regexp classes, so
// accented letters collapse to spaces the same way punctuation does.
// Normalizing an already-normalized string is a no-op.
func Normalize(text string) string {
	clean := strings.ToLower(text)
	clean = nonWordPattern.ReplaceAllString(clean, " ")
	clean = whitespacePattern.ReplaceAllString(clean, " ")
	return strings.TrimSpace(clean)
}
