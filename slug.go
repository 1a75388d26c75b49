package inkling

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Slugify normalizes arbitrary heading text into a stable, URL-safe
// identifier: entities are decoded, the text is lowercased and normalized to
// composed form (NFC), every run of characters that is not a Unicode letter,
// number, or mark becomes a single hyphen, and leading/trailing hyphens are
// trimmed. Letters in any script are preserved, not transliterated.
//
// Slugs address editions on the web surface and in static-site file paths,
// so the same function must be used both when building pages and when
// resolving a requested title.
func Slugify(text string) string {
	text = norm.NFC.String(strings.ToLower(DecodeEntities(text)))

	var b strings.Builder
	b.Grow(len(text))
	hyphen := false
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r) {
			b.WriteRune(r)
			hyphen = false
		} else if !hyphen {
			b.WriteRune('-')
			hyphen = true
		}
	}

	return strings.Trim(b.String(), "-")
}

// NormalizeSpace collapses internal whitespace runs (including non-breaking
// spaces) to single spaces and trims the ends.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
