// Package goquery provides tree-based extraction of editions and auxiliary
// blocks from raw exported document HTML. Sections are delimited by sibling
// heading boundaries in a parsed tree; regex boundary splitting is fragile
// against nested or malformed markup and is deliberately not used.
package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/inkling"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Extractor implements inkling.Extractor at compile time.
var _ inkling.Extractor = (*Extractor)(nil)

// Extractor locates sections in raw document HTML. Top-level headings (h1)
// delimit editions; second-level headings (h2) before the first h1 delimit
// auxiliary blocks.
type Extractor struct {
	sanitizer inkling.Sanitizer
}

// NewExtractor creates a new Extractor. Auxiliary block content is run
// through sanitizer before being returned; a nil sanitizer returns raw
// content.
func NewExtractor(sanitizer inkling.Sanitizer) *Extractor {
	return &Extractor{sanitizer: sanitizer}
}

// Section returns the fragment for the top-level heading whose slug matches
// title: the heading element plus every following sibling up to, but
// excluding, the next top-level heading. Matching is slug-based so titles
// differing only in punctuation, whitespace, or case still resolve; on slug
// collisions the first heading in document order wins.
func (e *Extractor) Section(doc, title string) (string, error) {
	d, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		return "", inkling.Errorf(inkling.EINVALID, "failed to parse document: %v", err)
	}

	headings := d.Find("h1")
	if headings.Length() == 0 {
		return "", inkling.Errorf(inkling.ENOTFOUND, "document has no top-level headings")
	}

	want := inkling.Slugify(title)
	var start *html.Node
	headings.EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if inkling.Slugify(sel.Text()) == want {
			start = sel.Nodes[0]
			return false
		}
		return true
	})
	if start == nil {
		return "", inkling.Errorf(inkling.ENOTFOUND, "no top-level heading matches %q", title)
	}

	var b strings.Builder
	for n := start; n != nil; n = n.NextSibling {
		if n != start && isElement(n, atom.H1) {
			break
		}
		if err := html.Render(&b, n); err != nil {
			return "", inkling.Errorf(inkling.EINTERNAL, "failed to render section: %v", err)
		}
	}

	return b.String(), nil
}

// Titles returns the ordered, de-duplicated top-level heading texts.
// Character references are decoded by the parse itself; texts are
// whitespace-normalized and empty headings are skipped. De-duplication is by
// exact string equality, keeping the first occurrence. The list is
// recomputed fresh on every call.
func (e *Extractor) Titles(doc string) []string {
	d, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		return nil
	}

	var titles []string
	seen := make(map[string]bool)
	d.Find("h1").Each(func(_ int, sel *goquery.Selection) {
		text := inkling.NormalizeSpace(sel.Text())
		if text == "" || seen[text] {
			return
		}
		seen[text] = true
		titles = append(titles, text)
	})

	return titles
}

// NamedBlock returns the content of the first second-level heading before
// the first top-level heading whose normalized, case-folded text equals
// name. The heading itself is excluded; following siblings are collected
// until the next second-level heading or the end of the region. Returns ""
// when no such block exists.
func (e *Extractor) NamedBlock(doc, name string) (string, error) {
	d, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		return "", inkling.Errorf(inkling.EINVALID, "failed to parse document: %v", err)
	}

	body := d.Find("body")
	if body.Length() == 0 {
		return "", nil
	}

	var start *html.Node
	for n := body.Nodes[0].FirstChild; n != nil; n = n.NextSibling {
		if isElement(n, atom.H1) {
			break // search is restricted to the region before the first h1
		}
		if isElement(n, atom.H2) && strings.EqualFold(inkling.NormalizeSpace(nodeText(n)), name) {
			start = n
			break
		}
	}
	if start == nil {
		return "", nil
	}

	var b strings.Builder
	for n := start.NextSibling; n != nil; n = n.NextSibling {
		if isElement(n, atom.H1) || isElement(n, atom.H2) {
			break
		}
		if err := html.Render(&b, n); err != nil {
			return "", inkling.Errorf(inkling.EINTERNAL, "failed to render block: %v", err)
		}
	}

	fragment := strings.TrimSpace(b.String())
	if fragment == "" || e.sanitizer == nil {
		return fragment, nil
	}
	return e.sanitizer.Sanitize(fragment)
}

// PageStyle returns the concatenated <style> contents from the document
// head, so document-supplied styling can be carried into page shells.
func (e *Extractor) PageStyle(doc string) string {
	d, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		return ""
	}

	var styles []string
	d.Find("head style").Each(func(_ int, sel *goquery.Selection) {
		if s := strings.TrimSpace(sel.Text()); s != "" {
			styles = append(styles, s)
		}
	})

	return strings.Join(styles, "\n")
}

// bodyWidthRe matches a width or max-width declaration with a px or pt unit.
var bodyWidthRe = regexp.MustCompile(`(?i)(?:^|;)\s*(?:max-)?width\s*:\s*([0-9.]+)(px|pt)`)

// BodyWidth reports the fixed pixel width the document specifies for its
// body, if any. Point units are converted at 96/72.
func (e *Extractor) BodyWidth(doc string) (float64, bool) {
	d, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		return 0, false
	}

	style, ok := d.Find("body").Attr("style")
	if !ok {
		return 0, false
	}
	m := bodyWidthRe.FindStringSubmatch(style)
	if m == nil {
		return 0, false
	}
	px, err := strconv.ParseFloat(m[1], 64)
	if err != nil || px <= 0 {
		return 0, false
	}
	if strings.EqualFold(m[2], "pt") {
		px = px * 96 / 72
	}
	return px, true
}

// isElement reports whether n is an element node with the given atom.
func isElement(n *html.Node, a atom.Atom) bool {
	return n.Type == html.ElementNode && n.DataAtom == a
}

// nodeText returns the concatenated text content of n's subtree.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
