// Package compose renders the HTML shells around extracted edition content:
// the web page wrapper, the per-recipient email document, the archive list,
// and the subscription form. All functions are pure string builders; content
// fragments are assumed to be sanitized upstream.
package compose

import (
	"fmt"
	"html"
	"strings"
)

// baseStyle is the fixed page stylesheet. Light and dark palettes hang off
// CSS variables; document-supplied extra style is appended in a second
// style element so it can override these rules.
const baseStyle = `:root{--bg:#fff;--fg:#111;--muted:#666;--link:#0b66ff;--card:#fafafa;--max:760px;--code:#f6f8fa;--border:#eee}
    @media (prefers-color-scheme: dark){
      :root{--bg:#0b0d10;--fg:#e7eaee;--muted:#96a0ab;--link:#7ab0ff;--card:#0f1318;--code:#0f141a;--border:#1c222b}
    }
    body{margin:0;background:var(--bg);color:var(--fg);font:16px/1.65 system-ui,-apple-system,Segoe UI,Roboto,Helvetica,Arial}
    .wrap{max-width:var(--max);margin:0 auto;padding:24px 16px 56px}
    header{display:flex;align-items:center;justify-content:space-between;margin-bottom:16px}
    .brand{font-weight:700}
    .doc h1{font-size:1.9rem;line-height:1.2;margin:.2em 0 .6em}
    .doc h2{font-size:1.45rem;line-height:1.3;margin:1.4em 0 .6em}
    .doc h3{font-size:1.18rem;line-height:1.3;margin:1.1em 0 .5em}
    .doc p{margin:.75em 0}
    .doc a{color:var(--link)}
    .doc ol,.doc ul{padding-left:1.2em}
    .doc li{margin:.25em 0}
    .doc hr{border:0;border-top:1px solid var(--border);margin:1.5rem 0}
    .doc blockquote{margin:1em 0;padding:.6em .9em;border-left:3px solid var(--border);background:var(--card);border-radius:10px}
    .doc pre,.doc code,.doc kbd{font:.92rem/1.5 ui-monospace,SFMono-Regular,Menlo,Monaco,Consolas,"Liberation Mono",monospace}
    .doc pre{background:var(--code);border:1px solid var(--border);padding:12px;border-radius:12px;overflow:auto}
    .doc img{max-width:100%;height:auto;border-radius:10px}
    .footer{margin-top:28px;font-size:.95rem;color:var(--muted)}`

// PageParams describes one rendered web page.
type PageParams struct {
	SiteTitle string // brand name, links home from the header
	Title     string // page title; joined with SiteTitle unless equal
	Style     string // document-supplied extra style, may be empty
	Content   string // sanitized body fragment
	Footer    string // sanitized footer fragment; block omitted when blank
	BaseURL   string // base href target for embedded navigation

	// EmbedNavigation adds a <base target="_top"> element so links escape
	// sandboxed iframe viewers.
	EmbedNavigation bool
}

// Page renders a complete standalone HTML page around a content fragment.
func Page(p PageParams) string {
	pageTitle := p.Title
	if p.SiteTitle != p.Title {
		pageTitle = fmt.Sprintf("%s — %s", p.Title, p.SiteTitle)
	}

	var base string
	if p.EmbedNavigation {
		base = fmt.Sprintf("<base href=%q target=\"_top\">", p.BaseURL)
	}

	var footer string
	if strings.TrimSpace(p.Footer) != "" {
		footer = fmt.Sprintf(`<div class="footer">%s</div>`, p.Footer)
	}

	return fmt.Sprintf(`<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
  %s<title>%s</title>
  <style>
    %s
  </style>
  <style>
    %s
  </style>
</head>
<body>
  <div class="wrap">
    <header><div class="brand"><a href="/">%s</a></div></header>
    <main class="doc">
      %s
      %s
    </main>
  </div>
</body>
</html>`, base, escape(pageTitle), baseStyle, p.Style, escape(p.SiteTitle), p.Content, footer)
}

func escape(s string) string {
	return html.EscapeString(s)
}
