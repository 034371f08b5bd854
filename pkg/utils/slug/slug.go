// Package slug turns display labels into URL path segments.
package slug

import (
	"regexp"
	"strings"
)

// unsafeRe matches anything that would need escaping in a path segment.
var unsafeRe = regexp.MustCompile(`[^a-z0-9\-_.~]+`)

// multiDash collapses runs of dashes.
var multiDash = regexp.MustCompile(`-{2,}`)

// Make lowercases label and replaces whitespace with dashes, so
// "Team Runs Comparison" becomes "team-runs-comparison". Characters outside
// the unreserved URL set are dropped.
func Make(label string) string {
	s := strings.ToLower(strings.TrimSpace(label))
	if s == "" {
		return ""
	}

	s = strings.Join(strings.Fields(s), "-")
	s = unsafeRe.ReplaceAllString(s, "")
	s = multiDash.ReplaceAllString(s, "-")

	return strings.Trim(s, "-.")
}
