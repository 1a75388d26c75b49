// Package htmltomarkdown renders HTML email bodies to a readable plain-text
// representation, used as the text/plain fallback part of outgoing messages.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/inkling"
)

// Ensure Renderer implements inkling.TextRenderer at compile time.
var _ inkling.TextRenderer = (*Renderer)(nil)

// Renderer converts an HTML document to Markdown-flavored plain text.
// Markdown reads naturally as text, which beats naive tag stripping for the
// email fallback body.
type Renderer struct {
	conv *converter.Converter
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Renderer{conv: conv}
}

// RenderText renders html to plain text. Empty input yields empty output.
func (r *Renderer) RenderText(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	result, err := r.conv.ConvertString(html)
	if err != nil {
		return "", inkling.Errorf(inkling.EINTERNAL, "failed to render text: %v", err)
	}

	return strings.TrimSpace(result), nil
}
