package slug

import (
	"regexp"
	"strings"
)

var reSlug = regexp.MustCompile(`^[a-z0-9_]{2,40}$`)

// IsSlug returns true if s matches ^[a-z0-9_]{2,40}$
func IsSlug(s string) bool {
	return reSlug.MatchString(s)
}

// Slugify converts s to a slug: lowercase, non [a-z0-9_] -> '_', collapse
// repeats, trim to 40, and trim leading/trailing '_'.
func Slugify(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	prevUnderscore := false
	for _, r := range strings.ToLower(s) {
		ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		switch {
		case ok:
			b.WriteRune(r)
			prevUnderscore = false
		case prevUnderscore:
			// collapse
		default:
			b.WriteByte('_')
			prevUnderscore = true
		}
		if b.Len() >= 40 {
			break
		}
	}
	return strings.Trim(b.String(), "_")
}
