package resume

import (
	"regexp"
	"strings"
)

var (
	reWhitespaceRun = regexp.MustCompile(`\s+`)
	reDisallowed    = regexp.MustCompile(`[^a-zA-Z0-9\s.,@+#-]`)
)

// Normalize strips every character outside letters, digits, whitespace and
// ".,@+#-", collapses whitespace runs to single spaces and trims the ends.
// Stripping happens before the collapse so removed characters cannot leave
// double spaces behind; that keeps Normalize idempotent. Empty input yields
// empty output.
func Normalize(text string) string {
	text = reDisallowed.ReplaceAllString(text, "")
	text = reWhitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
