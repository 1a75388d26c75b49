package goquery

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/inkling"
)

// httpSrcRe matches absolute http(s) image sources; everything else (cid:,
// data:, relative paths) is left untouched by the rewriter.
var httpSrcRe = regexp.MustCompile(`(?i)^https?://`)

// CollectImages returns the http(s) image references in a fragment, indexed
// by ordinal position among such images in document order. The fragment is
// not modified; fetching and substitution happen in a separate phase so this
// logic stays independently testable.
func CollectImages(fragment string) ([]inkling.ImageRef, error) {
	d, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, inkling.Errorf(inkling.EINVALID, "failed to parse fragment: %v", err)
	}

	var refs []inkling.ImageRef
	idx := 0
	d.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src, ok := sel.Attr("src")
		if !ok || !httpSrcRe.MatchString(src) {
			return
		}
		refs = append(refs, inkling.ImageRef{Index: idx, URL: src})
		idx++
	})

	return refs, nil
}

// ApplyImages substitutes resolved image references into a fragment by mode.
// resolved maps ordinal indexes (as produced by CollectImages) to fetched
// assets; images without a resolved asset keep their original source, so a
// failed fetch degrades to a broken image rather than a broken page.
// Returned assets carry the content-id (email-inline) or site path
// (web-static) assigned during substitution, in index order.
func ApplyImages(fragment string, mode inkling.AssetMode, pageSlug string, resolved map[int]*inkling.Asset) (string, []inkling.Asset, error) {
	d, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", nil, inkling.Errorf(inkling.EINVALID, "failed to parse fragment: %v", err)
	}

	var assets []inkling.Asset
	idx := 0
	d.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src, ok := sel.Attr("src")
		if !ok || !httpSrcRe.MatchString(src) {
			return
		}
		asset := resolved[idx]
		if asset == nil {
			idx++
			return
		}

		switch mode {
		case inkling.ModeEmailInline:
			asset.ContentID = fmt.Sprintf("img%d", idx)
			sel.SetAttr("src", "cid:"+asset.ContentID)
		case inkling.ModeWebStatic:
			asset.Path = fmt.Sprintf("/images/%s-%d.%s", pageSlug, idx, extFromMIME(asset.MIME))
			sel.SetAttr("src", asset.Path)
		case inkling.ModeWebEmbedded:
			sel.SetAttr("src", "data:"+asset.MIME+";base64,"+base64.StdEncoding.EncodeToString(asset.Bytes))
		}
		assets = append(assets, *asset)
		idx++
	})

	out, err := renderBody(d)
	if err != nil {
		return "", nil, err
	}
	return out, assets, nil
}

var (
	widthPxRe  = regexp.MustCompile(`(?i)^\s*([0-9.]+)px\s*$`)
	heightPxRe = regexp.MustCompile(`(?i)^\s*[0-9.]+px\s*$`)
)

// ResponsiveWidths rewrites pixel width/height styling on images and their
// parent containers into percentages of the document's fixed body width,
// capped at 100%, so fragments render responsively. It runs once per
// extraction regardless of asset-rewrite mode. A non-positive bodyWidth
// returns the fragment unchanged.
func ResponsiveWidths(fragment string, bodyWidth float64) (string, error) {
	if bodyWidth <= 0 {
		return fragment, nil
	}

	d, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", inkling.Errorf(inkling.EINVALID, "failed to parse fragment: %v", err)
	}

	d.Find("img").Each(func(_ int, sel *goquery.Selection) {
		rescaleStyle(sel, bodyWidth)
		rescaleStyle(sel.Parent(), bodyWidth)
	})

	return renderBody(d)
}

// rescaleStyle converts a pixel width declaration on sel into a percentage
// of bodyWidth and neutralizes any pixel height so aspect ratio follows.
func rescaleStyle(sel *goquery.Selection, bodyWidth float64) {
	if sel.Length() == 0 {
		return
	}
	style, ok := sel.Attr("style")
	if !ok {
		return
	}

	changed := false
	decls := splitStyle(style)
	for i, decl := range decls {
		prop, val, found := strings.Cut(decl, ":")
		if !found {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(prop)) {
		case "width":
			m := widthPxRe.FindStringSubmatch(val)
			if m == nil {
				continue
			}
			px, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			pct := px / bodyWidth * 100
			if pct > 100 {
				pct = 100
			}
			decls[i] = fmt.Sprintf("width:%.2f%%", pct)
			changed = true
		case "height":
			if heightPxRe.MatchString(val) {
				decls[i] = "height:auto"
				changed = true
			}
		}
	}
	if changed {
		sel.SetAttr("style", strings.Join(decls, ";"))
	}
}

// splitStyle splits a style attribute into trimmed non-empty declarations.
func splitStyle(style string) []string {
	var decls []string
	for _, d := range strings.Split(style, ";") {
		if d = strings.TrimSpace(d); d != "" {
			decls = append(decls, d)
		}
	}
	return decls
}

// extFromMIME infers a file extension from an image MIME type.
func extFromMIME(mime string) string {
	_, sub, found := strings.Cut(mime, "/")
	if !found || sub == "" {
		return "png"
	}
	// image/svg+xml and friends keep only the base subtype
	if base, _, found := strings.Cut(sub, "+"); found {
		return base
	}
	return sub
}

// renderBody returns the inner HTML of the parsed fragment's body.
func renderBody(d *goquery.Document) (string, error) {
	out, err := d.Find("body").Html()
	if err != nil {
		return "", inkling.Errorf(inkling.EINTERNAL, "failed to render fragment: %v", err)
	}
	return out, nil
}
