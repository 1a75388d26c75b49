package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/inkling"
	"github.com/fwojciec/inkling/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `<html><head><style>.doc{color:red}</style></head>
<body style="background-color:#ffffff;padding:72pt;max-width:468px">
<h2>Intro</h2>
<p>A word before we begin.</p>
<h2>Footer</h2>
<p>Unsubscribe any time.</p>
<h1>First Edition</h1>
<p>Content of the first edition.</p>
<h1>Second Edition</h1>
<p>Content of the second edition.</p>
<h1>&#10024; Edition 3 &mdash; Short &amp; Sweet</h1>
<p>Content of the third edition.</p>
</body></html>`

func TestExtractor_Section(t *testing.T) {
	t.Parallel()

	e := goquery.NewExtractor(nil)

	t.Run("returns heading plus content up to next heading", func(t *testing.T) {
		t.Parallel()

		got, err := e.Section(sampleDoc, "Second Edition")
		require.NoError(t, err)

		assert.Contains(t, got, "<h1>Second Edition</h1>")
		assert.Contains(t, got, "Content of the second edition.")
		assert.NotContains(t, got, "First Edition")
		assert.NotContains(t, got, "Edition 3")
		assert.NotContains(t, got, "third edition")
	})

	t.Run("matches slug-wise despite retyped punctuation and case", func(t *testing.T) {
		t.Parallel()

		got, err := e.Section(sampleDoc, "  SECOND edition!  ")
		require.NoError(t, err)
		assert.Contains(t, got, "Content of the second edition.")
	})

	t.Run("matches titles containing character references", func(t *testing.T) {
		t.Parallel()

		// The operator retypes the decoded heading text.
		got, err := e.Section(sampleDoc, "✨ Edition 3 — Short & Sweet")
		require.NoError(t, err)
		assert.Contains(t, got, "Content of the third edition.")
	})

	t.Run("returns not-found for unknown title", func(t *testing.T) {
		t.Parallel()

		_, err := e.Section(sampleDoc, "Nonexistent Edition")
		assert.Equal(t, inkling.ENOTFOUND, inkling.ErrorCode(err))
	})

	t.Run("returns not-found when document has no top-level headings", func(t *testing.T) {
		t.Parallel()

		_, err := e.Section("<p>just a paragraph</p>", "Anything")
		assert.Equal(t, inkling.ENOTFOUND, inkling.ErrorCode(err))
	})

	t.Run("empty section between adjacent headings is valid", func(t *testing.T) {
		t.Parallel()

		doc := "<h1>Empty One</h1><h1>Next One</h1><p>next content</p>"
		got, err := e.Section(doc, "Empty One")
		require.NoError(t, err)
		assert.Contains(t, got, "Empty One")
		assert.NotContains(t, got, "Next One")
	})

	t.Run("slug collisions resolve to first occurrence", func(t *testing.T) {
		t.Parallel()

		doc := "<h1>Release Notes!</h1><p>first body</p><h1>Release, Notes</h1><p>second body</p>"
		got, err := e.Section(doc, "release notes")
		require.NoError(t, err)
		assert.Contains(t, got, "first body")
		assert.NotContains(t, got, "second body")
	})

	t.Run("final section runs to end of document", func(t *testing.T) {
		t.Parallel()

		got, err := e.Section(sampleDoc, "✨ Edition 3 — Short & Sweet")
		require.NoError(t, err)
		assert.Contains(t, got, "Content of the third edition.")
	})
}

func TestExtractor_Titles(t *testing.T) {
	t.Parallel()

	e := goquery.NewExtractor(nil)

	t.Run("returns titles in document order", func(t *testing.T) {
		t.Parallel()

		titles := e.Titles(sampleDoc)
		require.Len(t, titles, 3)
		assert.Equal(t, "First Edition", titles[0])
		assert.Equal(t, "Second Edition", titles[1])
		assert.Equal(t, "✨ Edition 3 — Short & Sweet", titles[2])
	})

	t.Run("de-duplicates repeated titles keeping first occurrence", func(t *testing.T) {
		t.Parallel()

		doc := "<h1>A</h1><h1>B</h1><h1>A</h1>"
		assert.Equal(t, []string{"A", "B"}, e.Titles(doc))
	})

	t.Run("normalizes internal whitespace", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"Spaced Out"}, e.Titles("<h1>  Spaced \n  Out  </h1>"))
	})

	t.Run("strips markup inside headings", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"With HTML Tags"}, e.Titles("<h1>With <em>HTML</em> Tags</h1>"))
	})

	t.Run("skips headings that are empty after normalization", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, e.Titles("<h1>   </h1><p>text</p>"))
	})

	t.Run("empty document yields no titles", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, e.Titles(""))
	})
}

// upperSanitizer marks content so tests can observe sanitizer application.
type upperSanitizer struct{}

func (upperSanitizer) Sanitize(fragment string) (string, error) {
	return strings.ToUpper(fragment), nil
}

func TestExtractor_NamedBlock(t *testing.T) {
	t.Parallel()

	e := goquery.NewExtractor(nil)

	t.Run("finds block before first top-level heading", func(t *testing.T) {
		t.Parallel()

		got, err := e.NamedBlock(sampleDoc, "footer")
		require.NoError(t, err)
		assert.Contains(t, got, "Unsubscribe any time.")
		assert.NotContains(t, got, "Footer</h2>")
		assert.NotContains(t, got, "First Edition")
	})

	t.Run("matching is case-insensitive on normalized text", func(t *testing.T) {
		t.Parallel()

		got, err := e.NamedBlock("<h2>  INTRO </h2><p>hello</p><h1>Ed</h1>", "intro")
		require.NoError(t, err)
		assert.Contains(t, got, "hello")
	})

	t.Run("stops at the next second-level heading", func(t *testing.T) {
		t.Parallel()

		got, err := e.NamedBlock(sampleDoc, "intro")
		require.NoError(t, err)
		assert.Contains(t, got, "A word before we begin.")
		assert.NotContains(t, got, "Unsubscribe")
	})

	t.Run("returns empty when no block matches", func(t *testing.T) {
		t.Parallel()

		got, err := e.NamedBlock(sampleDoc, "colophon")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("ignores blocks after the first top-level heading", func(t *testing.T) {
		t.Parallel()

		doc := "<h1>Edition</h1><h2>Footer</h2><p>too late</p>"
		got, err := e.NamedBlock(doc, "footer")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("searches the whole document when no top-level heading exists", func(t *testing.T) {
		t.Parallel()

		got, err := e.NamedBlock("<p>lead</p><h2>Footer</h2><p>bye</p>", "footer")
		require.NoError(t, err)
		assert.Contains(t, got, "bye")
	})

	t.Run("result passes through the configured sanitizer", func(t *testing.T) {
		t.Parallel()

		se := goquery.NewExtractor(upperSanitizer{})
		got, err := se.NamedBlock("<h2>Footer</h2><p>bye</p><h1>Ed</h1>", "footer")
		require.NoError(t, err)
		assert.Contains(t, got, "BYE")
	})
}

func TestExtractor_PageStyle(t *testing.T) {
	t.Parallel()

	e := goquery.NewExtractor(nil)

	t.Run("returns head style contents", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, ".doc{color:red}", e.PageStyle(sampleDoc))
	})

	t.Run("returns empty without styles", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, e.PageStyle("<html><head></head><body><p>x</p></body></html>"))
	})
}

func TestExtractor_BodyWidth(t *testing.T) {
	t.Parallel()

	e := goquery.NewExtractor(nil)

	t.Run("reads pixel width from body style", func(t *testing.T) {
		t.Parallel()

		px, ok := e.BodyWidth(sampleDoc)
		require.True(t, ok)
		assert.InDelta(t, 468.0, px, 0.01)
	})

	t.Run("converts point units", func(t *testing.T) {
		t.Parallel()

		doc := `<body style="max-width:451.4pt"><p>x</p></body>`
		px, ok := e.BodyWidth(doc)
		require.True(t, ok)
		assert.InDelta(t, 451.4*96/72, px, 0.01)
	})

	t.Run("reports absence", func(t *testing.T) {
		t.Parallel()

		_, ok := e.BodyWidth("<body><p>x</p></body>")
		assert.False(t, ok)
	})
}
