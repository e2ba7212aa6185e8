// Package slug derives URL-safe tokens from free-text labels.
package slug

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	invalidRe    = regexp.MustCompile(`[^\w-]`)
)

// Make lower-cases the label, collapses each whitespace run into a single
// hyphen and strips every remaining character that is not a word character or
// a hyphen. Make is idempotent; it guarantees nothing about uniqueness, so
// callers that need unique slugs must handle collisions themselves.
func Make(label string) string {
	token := strings.ToLower(strings.TrimSpace(label))
	token = whitespaceRe.ReplaceAllString(token, "-")
	return invalidRe.ReplaceAllString(token, "")
}
