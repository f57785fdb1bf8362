package intake

import "strings"

// Matches reports whether contentType matches any of the accepted patterns.
func Matches(patterns []string, contentType string) bool {
	for _, p := range patterns {
		if MatchType(p, contentType) {
			return true
		}
	}
	return false
}

// MatchType reports whether contentType matches a single accepted pattern.
// A pattern is either an exact MIME type ("image/png") or a prefix wildcard
// ("image/*"). "*/*" matches everything. Matching is case-insensitive, and
// any media-type parameters on contentType ("; charset=...") are ignored.
func MatchType(pattern, contentType string) bool {
	ct, _, _ := strings.Cut(contentType, ";")
	ct = strings.TrimSpace(ct)
	if ct == "" {
		return false
	}
	if strings.EqualFold(pattern, ct) {
		return true
	}
	category, ok := strings.CutSuffix(pattern, "/*")
	if !ok {
		return false
	}
	if category == "*" {
		return true
	}
	got, _, found := strings.Cut(ct, "/")
	return found && strings.EqualFold(got, category)
}
