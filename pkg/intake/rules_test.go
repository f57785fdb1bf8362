package intake

import "testing"

func TestMatchType(t *testing.T) {
	tests := []struct {
		name        string
		pattern     string
		contentType string
		want        bool
	}{
		{"exact", "image/png", "image/png", true},
		{"exact_mismatch", "image/png", "image/jpeg", false},
		{"wildcard", "image/*", "image/webp", true},
		{"wildcard_other_category", "image/*", "video/mp4", false},
		{"wildcard_all", "*/*", "application/pdf", true},
		{"case_insensitive", "image/*", "IMAGE/PNG", true},
		{"parameters_ignored", "text/plain", "text/plain; charset=utf-8", true},
		{"empty_content_type", "image/*", "", false},
		{"bare_category_is_not_wildcard", "image", "image/png", false},
		{"no_slash_content_type", "image/*", "image", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := MatchType(tc.pattern, tc.contentType); got != tc.want {
				t.Errorf("MatchType(%q, %q) = %v, want %v", tc.pattern, tc.contentType, got, tc.want)
			}
		})
	}
}

func TestMatches(t *testing.T) {
	patterns := []string{"image/*", "video/mp4"}

	if !Matches(patterns, "image/gif") {
		t.Error("image/gif should match image/*")
	}
	if !Matches(patterns, "video/mp4") {
		t.Error("video/mp4 should match exactly")
	}
	if Matches(patterns, "video/webm") {
		t.Error("video/webm should not match")
	}
	if Matches(nil, "image/png") {
		t.Error("no patterns should match nothing")
	}
}
