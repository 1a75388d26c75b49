package inkling

import "context"

// Edition represents one newsletter issue: a top-level heading and its
// following content up to the next such heading. Editions are not persisted;
// they are recomputed from the source document on every extraction.
type Edition struct {
	Title string
	Slug  string
	HTML  string
}

// Auxiliary block names recognized before the first top-level heading.
const (
	BlockIntro  = "intro"
	BlockFooter = "footer"
)

// DocumentSource returns the raw exported HTML of the source document.
// The document is re-fetched on every operation; no caching across calls.
type DocumentSource interface {
	// Export fetches the current document markup.
	// The context controls timeout and cancellation.
	Export(ctx context.Context) (html string, err error)
}

// Extractor locates and extracts content from raw document HTML.
// Implementations parse a real tree and traverse element siblings; matching
// is slug-based so titles differing only in punctuation, whitespace, or case
// still resolve.
type Extractor interface {
	// Section returns the fragment for the top-level heading whose slug
	// matches the requested title: the heading element plus every following
	// sibling up to, but excluding, the next top-level heading.
	// Returns ENOTFOUND if the document has no top-level headings or no
	// heading matches. An empty section (heading immediately followed by
	// another heading) is valid and returns the heading alone.
	Section(doc, title string) (string, error)

	// Titles returns the ordered, de-duplicated top-level heading texts.
	// Texts are whitespace-normalized and entity-decoded; headings that are
	// empty after normalization are skipped. First occurrence wins.
	Titles(doc string) []string

	// NamedBlock returns the sanitized content of the first second-level
	// heading before the first top-level heading whose normalized,
	// case-folded text equals name. Returns "" (not an error) when no such
	// block exists; callers treat empty as "no block configured".
	NamedBlock(doc, name string) (string, error)

	// PageStyle returns the concatenated <style> contents from the
	// document head, for carrying document-supplied styling into page
	// shells. Returns "" when the document has none.
	PageStyle(doc string) string

	// BodyWidth reports the fixed pixel width the document specifies for
	// its body, if any. Used to normalize image widths to percentages.
	BodyWidth(doc string) (px float64, ok bool)
}

// Sanitizer strips dangerous or unwanted markup from an HTML fragment while
// preserving structural intent. Sanitize is idempotent.
type Sanitizer interface {
	Sanitize(fragment string) (string, error)
}

// TextRenderer renders an HTML document to a readable plain-text
// representation, used as the email fallback body.
type TextRenderer interface {
	RenderText(html string) (string, error)
}
