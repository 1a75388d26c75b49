package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/inkling/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_RenderText(t *testing.T) {
	t.Parallel()

	r := htmltomarkdown.NewRenderer()

	t.Run("renders headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		got, err := r.RenderText("<h1>First Edition</h1><p>Hello <strong>world</strong>.</p>")
		require.NoError(t, err)

		assert.Contains(t, got, "First Edition")
		assert.Contains(t, got, "world")
		assert.NotContains(t, got, "<p>")
		assert.NotContains(t, got, "<h1>")
	})

	t.Run("keeps link targets readable", func(t *testing.T) {
		t.Parallel()

		got, err := r.RenderText(`<p><a href="https://example.com/a">read this</a></p>`)
		require.NoError(t, err)

		assert.Contains(t, got, "read this")
		assert.Contains(t, got, "https://example.com/a")
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		t.Parallel()

		got, err := r.RenderText("   ")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
