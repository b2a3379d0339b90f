package season

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Slugify canonicalizes a free-text display name into a comparable
// identifier: lowercase, any run of non-alphanumeric characters becomes a
// single hyphen, leading and trailing hyphens are trimmed. It is total
// (empty input yields "") and idempotent, and it is the only slug
// normalization in the repository; every component that produces or
// compares slugs goes through it.
func Slugify(text string) string {
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	pendingHyphen := false
	for _, r := range text {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

var titleCaser = cases.Title(language.English)

// DisplayNameFromSlug derives a human-readable name from a slug when the
// roster has no entry for it: hyphen-separated segments are title-cased and
// joined with spaces ("max-verstappen" -> "Max Verstappen"). Malformed
// slugs never fail; empty segments are dropped.
func DisplayNameFromSlug(slug string) string {
	parts := strings.Split(slug, "-")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		out = append(out, titleCaser.String(p))
	}
	return strings.Join(out, " ")
}
