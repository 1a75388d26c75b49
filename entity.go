package inkling

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// namedEntities is the fixed table of named character references the word
// processor export is known to emit. Spacing references decode to a plain
// space so downstream whitespace normalization and slugging behave uniformly.
var namedEntities = map[string]string{
	"amp":    "&",
	"lt":     "<",
	"gt":     ">",
	"quot":   `"`,
	"apos":   "'",
	"nbsp":   " ",
	"ensp":   " ",
	"emsp":   " ",
	"ndash":  "–",
	"mdash":  "—",
	"hellip": "…",
	"lsquo":  "‘",
	"rsquo":  "’",
	"ldquo":  "“",
	"rdquo":  "”",
}

var (
	decimalEntityRe = regexp.MustCompile(`&#([0-9]+);`)
	hexEntityRe     = regexp.MustCompile(`&#[xX]([0-9a-fA-F]+);`)
	namedEntityRe   = regexp.MustCompile(`&([a-zA-Z][a-zA-Z0-9]+);`)
)

// DecodeEntities replaces numeric (decimal and hex) character references and
// a fixed table of common named references with their literal characters.
// Unrecognized named references and invalid code points pass through
// unchanged; the function never fails.
func DecodeEntities(s string) string {
	s = decimalEntityRe.ReplaceAllStringFunc(s, func(m string) string {
		digits := m[2 : len(m)-1]
		n, err := strconv.ParseInt(digits, 10, 32)
		if err != nil || !utf8.ValidRune(rune(n)) {
			return m
		}
		return string(rune(n))
	})
	s = hexEntityRe.ReplaceAllStringFunc(s, func(m string) string {
		digits := m[3 : len(m)-1]
		n, err := strconv.ParseInt(digits, 16, 32)
		if err != nil || !utf8.ValidRune(rune(n)) {
			return m
		}
		return string(rune(n))
	})
	return namedEntityRe.ReplaceAllStringFunc(s, func(m string) string {
		name := strings.ToLower(m[1 : len(m)-1])
		if lit, ok := namedEntities[name]; ok {
			return lit
		}
		return m
	})
}
