package site

import (
	"fmt"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/inkling"
)

// feedXML renders the Atom feed of editions in document order. The document
// carries no per-edition timestamps, so every entry uses the build time.
// Without a base URL there are no resolvable locations, so link elements are
// omitted and ids fall back to urn form.
func feedXML(siteTitle, baseURL string, titles []string, updated time.Time) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	feed := doc.CreateElement("feed")
	feed.CreateAttr("xmlns", "http://www.w3.org/2005/Atom")
	feed.CreateElement("title").SetText(siteTitle)
	feed.CreateElement("id").SetText(feedID(baseURL, siteTitle))
	feed.CreateElement("updated").SetText(updated.Format(time.RFC3339))

	if baseURL != "" {
		link := feed.CreateElement("link")
		link.CreateAttr("rel", "alternate")
		link.CreateAttr("href", baseURL+"/")

		self := feed.CreateElement("link")
		self.CreateAttr("rel", "self")
		self.CreateAttr("href", baseURL+"/feed.xml")
	}

	for _, title := range titles {
		slug := inkling.Slugify(title)

		entry := feed.CreateElement("entry")
		entry.CreateElement("title").SetText(title)
		entry.CreateElement("id").SetText(entryID(baseURL, slug))
		entry.CreateElement("updated").SetText(updated.Format(time.RFC3339))

		if baseURL != "" {
			entryLink := entry.CreateElement("link")
			entryLink.CreateAttr("rel", "alternate")
			entryLink.CreateAttr("type", "text/html")
			entryLink.CreateAttr("href", fmt.Sprintf("%s/article/%s.html", baseURL, slug))
		}
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

func feedID(baseURL, siteTitle string) string {
	if baseURL != "" {
		return baseURL + "/"
	}
	return "urn:inkling:" + inkling.Slugify(siteTitle)
}

func entryID(baseURL, slug string) string {
	if baseURL != "" {
		return fmt.Sprintf("%s/article/%s.html", baseURL, slug)
	}
	return "urn:inkling:" + slug
}
