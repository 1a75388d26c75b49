// Package bluemonday provides the HTML fragment sanitizer. A bluemonday
// allowlist policy strips dangerous elements and attributes; a tree
// post-pass then neutralizes inline font styling and recovers semantic
// structure the word processor export loses.
package bluemonday

import (
	"bytes"
	"strings"

	"github.com/fwojciec/inkling"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Sanitizer implements inkling.Sanitizer at compile time.
var _ inkling.Sanitizer = (*Sanitizer)(nil)

// Sanitizer strips dangerous or unwanted markup from self-contained HTML
// fragments while preserving structural intent. Sanitize is idempotent.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a Sanitizer.
//
// The policy removes script, style, meta, and link elements together with
// their content, and drops every attribute that is not explicitly allowed,
// which covers on* event handlers and data-* attributes. The style attribute
// itself is allowed through; its declarations are filtered in the post-pass.
func NewSanitizer() *Sanitizer {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"a", "b", "blockquote", "br", "caption", "code", "div", "em",
		"figcaption", "figure", "h1", "h2", "h3", "h4", "h5", "h6", "hr",
		"i", "img", "kbd", "li", "ol", "p", "pre", "s", "span", "strong",
		"sub", "sup", "table", "tbody", "td", "tfoot", "th", "thead", "tr",
		"u", "ul",
	)
	p.AllowAttrs(
		"align", "alt", "bgcolor", "border", "cellpadding", "cellspacing",
		"class", "colspan", "height", "href", "id", "rel", "role", "rowspan",
		"src", "start", "style", "target", "title", "type", "valign", "width",
	).Globally()
	p.AllowURLSchemes("http", "https", "mailto", "cid", "data")
	p.AllowRelativeURLs(true)

	return &Sanitizer{policy: p}
}

// Sanitize applies, in order: element/attribute stripping, font declaration
// removal from style attributes, empty p/div/span collapse, promotion of
// bold-only paragraphs to level-3 headings, and non-breaking-space
// replacement. Element ordering and remaining content are preserved.
func (s *Sanitizer) Sanitize(fragment string) (string, error) {
	cleaned := s.policy.Sanitize(fragment)

	doc, err := html.Parse(strings.NewReader(cleaned))
	if err != nil {
		return "", inkling.Errorf(inkling.EINVALID, "failed to parse fragment: %v", err)
	}

	body := findBody(doc)
	if body == nil {
		return "", nil
	}
	transform(body)

	var b bytes.Buffer
	for n := body.FirstChild; n != nil; n = n.NextSibling {
		if err := html.Render(&b, n); err != nil {
			return "", inkling.Errorf(inkling.EINTERNAL, "failed to render fragment: %v", err)
		}
	}

	return b.String(), nil
}

// transform rewrites n's subtree bottom-up so that collapses cascade in a
// single pass, which keeps the whole sanitizer idempotent.
func transform(n *html.Node) {
	// Children first; collect to survive mutation during iteration.
	var children []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, c)
	}
	for _, c := range children {
		transform(c)
	}

	switch n.Type {
	case html.TextNode:
		n.Data = strings.ReplaceAll(n.Data, " ", " ")
	case html.ElementNode:
		filterFontStyle(n)
		if parent := n.Parent; parent != nil {
			if isCollapsible(n) && !hasContent(n) {
				parent.RemoveChild(n)
				return
			}
			if bold := soleBoldRun(n); bold != nil {
				parent.InsertBefore(promoteToHeading(bold), n)
				parent.RemoveChild(n)
			}
		}
	}
}

// filterFontStyle removes font-family and font-size declarations from the
// element's style attribute, dropping the attribute entirely when nothing
// remains.
func filterFontStyle(n *html.Node) {
	for i, attr := range n.Attr {
		if attr.Namespace != "" || attr.Key != "style" {
			continue
		}

		var kept []string
		for _, decl := range strings.Split(attr.Val, ";") {
			decl = strings.TrimSpace(decl)
			if decl == "" {
				continue
			}
			prop, _, _ := strings.Cut(decl, ":")
			switch strings.ToLower(strings.TrimSpace(prop)) {
			case "font-family", "font-size":
			default:
				kept = append(kept, decl)
			}
		}

		if len(kept) == 0 {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
		} else {
			n.Attr[i].Val = strings.Join(kept, ";")
		}
		return
	}
}

// isCollapsible reports whether empty instances of the element are removed.
func isCollapsible(n *html.Node) bool {
	switch n.DataAtom {
	case atom.P, atom.Div, atom.Span:
		return true
	}
	return false
}

// hasContent reports whether n has any child element or non-whitespace text.
func hasContent(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return true
		}
		if c.Type == html.TextNode && strings.TrimSpace(c.Data) != "" {
			return true
		}
	}
	return false
}

// soleBoldRun returns the strong element when n is a paragraph whose only
// content is that single bold run, recovering headings the source document
// styled as bold paragraphs.
func soleBoldRun(n *html.Node) *html.Node {
	if n.DataAtom != atom.P {
		return nil
	}
	var bold *html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.TextNode && strings.TrimSpace(c.Data) == "":
		case c.Type == html.ElementNode && c.DataAtom == atom.Strong && bold == nil:
			bold = c
		default:
			return nil
		}
	}
	return bold
}

// promoteToHeading builds an h3 carrying the bold run's children.
func promoteToHeading(bold *html.Node) *html.Node {
	h3 := &html.Node{Type: html.ElementNode, DataAtom: atom.H3, Data: "h3"}
	for c := bold.FirstChild; c != nil; {
		next := c.NextSibling
		bold.RemoveChild(c)
		h3.AppendChild(c)
		c = next
	}
	return h3
}

// findBody locates the body element html.Parse always produces.
func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
