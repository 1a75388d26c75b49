package compose_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/inkling/compose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage(t *testing.T) {
	t.Parallel()

	t.Run("joins page title with site title", func(t *testing.T) {
		t.Parallel()

		html := compose.Page(compose.PageParams{
			SiteTitle: "Curiosities",
			Title:     "Edition 1",
			Content:   "<h1>Edition 1</h1><p>Hello</p>",
		})

		assert.Contains(t, html, "<title>Edition 1 — Curiosities</title>")
	})

	t.Run("uses bare title when equal to site title", func(t *testing.T) {
		t.Parallel()

		html := compose.Page(compose.PageParams{
			SiteTitle: "Curiosities",
			Title:     "Curiosities",
			Content:   "<p>archive</p>",
		})

		assert.Contains(t, html, "<title>Curiosities</title>")
	})

	t.Run("escapes title markup", func(t *testing.T) {
		t.Parallel()

		html := compose.Page(compose.PageParams{
			SiteTitle: "A & B",
			Title:     "A & B",
			Content:   "<p>x</p>",
		})

		assert.Contains(t, html, "<title>A &amp; B</title>")
	})

	t.Run("includes brand header linking home", func(t *testing.T) {
		t.Parallel()

		html := compose.Page(compose.PageParams{
			SiteTitle: "Curiosities",
			Title:     "Edition 1",
			Content:   "<p>x</p>",
		})

		assert.Contains(t, html, `<div class="brand"><a href="/">Curiosities</a></div>`)
	})

	t.Run("omits footer block when blank", func(t *testing.T) {
		t.Parallel()

		html := compose.Page(compose.PageParams{
			SiteTitle: "Curiosities",
			Title:     "Edition 1",
			Content:   "<p>x</p>",
			Footer:    "   ",
		})

		assert.NotContains(t, html, `class="footer"`)
	})

	t.Run("renders footer block when present", func(t *testing.T) {
		t.Parallel()

		html := compose.Page(compose.PageParams{
			SiteTitle: "Curiosities",
			Title:     "Edition 1",
			Content:   "<p>x</p>",
			Footer:    "<p>Unsubscribe anytime.</p>",
		})

		assert.Contains(t, html, `<div class="footer"><p>Unsubscribe anytime.</p></div>`)
	})

	t.Run("adds base element for embedded navigation only", func(t *testing.T) {
		t.Parallel()

		embedded := compose.Page(compose.PageParams{
			SiteTitle:       "Curiosities",
			Title:           "Edition 1",
			Content:         "<p>x</p>",
			BaseURL:         "https://example.com/view",
			EmbedNavigation: true,
		})
		assert.Contains(t, embedded, `<base href="https://example.com/view" target="_top">`)

		plain := compose.Page(compose.PageParams{
			SiteTitle: "Curiosities",
			Title:     "Edition 1",
			Content:   "<p>x</p>",
			BaseURL:   "https://example.com/view",
		})
		assert.NotContains(t, plain, "<base")
	})

	t.Run("appends document style after base stylesheet", func(t *testing.T) {
		t.Parallel()

		html := compose.Page(compose.PageParams{
			SiteTitle: "Curiosities",
			Title:     "Edition 1",
			Style:     ".doc h1{color:teal}",
			Content:   "<p>x</p>",
		})

		basePos := strings.Index(html, ":root{")
		extraPos := strings.Index(html, ".doc h1{color:teal}")
		require.Positive(t, basePos)
		require.Positive(t, extraPos)
		assert.Less(t, basePos, extraPos, "document style must be able to override the base stylesheet")
	})
}

func TestEmail(t *testing.T) {
	t.Parallel()

	t.Run("greets recipient by name", func(t *testing.T) {
		t.Parallel()

		html := compose.Email(compose.EmailParams{
			Name: "Ada",
			Body: "<p>News</p>",
		})

		assert.Contains(t, html, "Hi Ada,")
	})

	t.Run("blank and missing names produce identical output", func(t *testing.T) {
		t.Parallel()

		body := "<p>News</p>"
		absent := compose.Email(compose.EmailParams{Body: body})
		empty := compose.Email(compose.EmailParams{Name: "", Body: body})
		blank := compose.Email(compose.EmailParams{Name: "   ", Body: body})

		assert.Equal(t, absent, empty)
		assert.Equal(t, absent, blank)
		assert.Contains(t, absent, "Hi there,")
	})

	t.Run("escapes recipient name", func(t *testing.T) {
		t.Parallel()

		html := compose.Email(compose.EmailParams{
			Name: `<b>Ada</b>`,
			Body: "<p>News</p>",
		})

		assert.Contains(t, html, "Hi &lt;b&gt;Ada&lt;/b&gt;,")
	})

	t.Run("renders browser button above greeting when URL set", func(t *testing.T) {
		t.Parallel()

		html := compose.Email(compose.EmailParams{
			Name:       "Ada",
			Body:       "<p>News</p>",
			BrowserURL: "https://example.com/article/edition-1.html",
		})

		buttonPos := strings.Index(html, "Read on the web!")
		greetPos := strings.Index(html, "Hi Ada,")
		require.Positive(t, buttonPos)
		require.Positive(t, greetPos)
		assert.Less(t, buttonPos, greetPos)
		assert.Contains(t, html, `href="https://example.com/article/edition-1.html"`)
	})

	t.Run("omits button without URL", func(t *testing.T) {
		t.Parallel()

		html := compose.Email(compose.EmailParams{Name: "Ada", Body: "<p>News</p>"})
		assert.NotContains(t, html, "Read on the web!")
	})

	t.Run("renders intro between greeting and body", func(t *testing.T) {
		t.Parallel()

		html := compose.Email(compose.EmailParams{
			Name:  "Ada",
			Intro: "<p>Welcome back.</p>",
			Body:  "<p>News</p>",
		})

		greetPos := strings.Index(html, "Hi Ada,")
		introPos := strings.Index(html, "Welcome back.")
		bodyPos := strings.Index(html, "<p>News</p>")
		require.Positive(t, greetPos)
		require.Positive(t, introPos)
		require.Positive(t, bodyPos)
		assert.Less(t, greetPos, introPos)
		assert.Less(t, introPos, bodyPos)
	})
}

func TestEnsureName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain name", "Ada", "Ada"},
		{"trims whitespace", "  Ada  ", "Ada"},
		{"empty falls back", "", "there"},
		{"whitespace falls back", "   ", "there"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, compose.EnsureName(tt.in))
		})
	}
}

func TestArchiveList(t *testing.T) {
	t.Parallel()

	t.Run("links static article pages by slug", func(t *testing.T) {
		t.Parallel()

		html := compose.ArchiveList(compose.ArchiveParams{
			Heading: "Archive",
			Titles:  []string{"Edition 1 — Curiosities", "Edition 2"},
		})

		assert.Contains(t, html, `href="/article/edition-1-curiosities.html"`)
		assert.Contains(t, html, `href="/article/edition-2.html"`)
		assert.Contains(t, html, "Edition 1 — Curiosities")
	})

	t.Run("links embedded viewer by subject query", func(t *testing.T) {
		t.Parallel()

		html := compose.ArchiveList(compose.ArchiveParams{
			Heading:  "Archive",
			Titles:   []string{"Edition 1"},
			Embedded: true,
		})

		assert.Contains(t, html, `href="?subject=Edition+1"`)
	})

	t.Run("renders empty state without editions", func(t *testing.T) {
		t.Parallel()

		html := compose.ArchiveList(compose.ArchiveParams{Heading: "Archive"})
		assert.Contains(t, html, "No editions found")
		assert.NotContains(t, html, "<ol")
	})

	t.Run("escapes titles", func(t *testing.T) {
		t.Parallel()

		html := compose.ArchiveList(compose.ArchiveParams{
			Heading: "Archive",
			Titles:  []string{"Tips & Tricks"},
		})

		assert.Contains(t, html, "Tips &amp; Tricks")
	})
}

func TestSubscribeForm(t *testing.T) {
	t.Parallel()

	html := compose.SubscribeForm("https://example.com/subscribe", "https://example.com/")

	assert.Contains(t, html, `action="https://example.com/subscribe"`)
	assert.Contains(t, html, `name="email"`)
	assert.Contains(t, html, `name="name"`)
	assert.Contains(t, html, `name="phone"`, "honeypot field must be present")
	assert.Contains(t, html, `name="return" value="https://example.com/"`)
}
