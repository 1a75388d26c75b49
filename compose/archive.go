package compose

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/inkling"
)

// ArchiveParams describes the edition archive list.
type ArchiveParams struct {
	Heading string
	Titles  []string

	// Embedded links editions by ?subject= query for the hosted viewer
	// instead of static /article/ paths.
	Embedded bool
}

// ArchiveList renders the ordered list of editions, newest-independent:
// titles appear in document order. With no editions it renders an
// explanatory paragraph instead of an empty list.
func ArchiveList(p ArchiveParams) string {
	if len(p.Titles) == 0 {
		return `<p>No editions found (no <code>Heading 1</code> in the document).</p>`
	}

	var items []string
	for _, title := range p.Titles {
		var href string
		if p.Embedded {
			href = "?subject=" + url.QueryEscape(title)
		} else {
			href = fmt.Sprintf("/article/%s.html", inkling.Slugify(title))
		}
		items = append(items, fmt.Sprintf(`  <li><a href="%s" target="_top" rel="noopener">%s</a></li>`, href, escape(title)))
	}

	return fmt.Sprintf(`
    <h1 style="margin:0 0 12px">%s</h1>
    <ol style="padding-left:20px; line-height:1.7">%s</ol>
  `, escape(p.Heading), strings.Join(items, "\n"))
}
