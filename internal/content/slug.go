package content

import "strings"

// Slugify converts a title to a URL-safe slug: lowercase ASCII letters and
// digits with single hyphens between runs. Text that slugifies to nothing,
// like titles written entirely in a non-Latin script, yields "" and the
// caller must ask for an explicit slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	hyphenated := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			hyphenated = false
		default:
			if !hyphenated && b.Len() > 0 {
				b.WriteByte('-')
				hyphenated = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
