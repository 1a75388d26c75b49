// Package site builds the static web rendition of the newsletter: one page
// per edition, image assets, the archive index, the feed, and the optional
// subscribe page. Output goes through an inkling.SiteWriter so a failed
// build never clobbers the published site.
package site

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/inkling"
	"github.com/fwojciec/inkling/compose"
	"github.com/fwojciec/inkling/goquery"
)

// Builder orchestrates one full site build.
type Builder struct {
	Source    inkling.DocumentSource
	Extractor inkling.Extractor
	Sanitizer inkling.Sanitizer
	Assets    inkling.AssetFetcher
	Writer    inkling.SiteWriter
	Config    inkling.Config

	// Now is the clock used for feed timestamps. Defaults to time.Now.
	Now func() time.Time
}

// Result holds the outcome of a build operation.
type Result struct {
	Pages    int
	Assets   int
	Warnings []string

	// Manifest maps site paths to content digests for upload deduplication.
	Manifest map[string]string
}

// Build renders the whole site and commits it atomically. Any error after
// the first file is saved aborts the pending output before returning.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	result, err := b.build(ctx)
	if err != nil {
		_ = b.Writer.Abort()
		return nil, err
	}
	if err := b.Writer.Commit(); err != nil {
		return nil, fmt.Errorf("commit site: %w", err)
	}
	return result, nil
}

func (b *Builder) build(ctx context.Context) (*Result, error) {
	doc, err := b.Source.Export(ctx)
	if err != nil {
		return nil, fmt.Errorf("export document: %w", err)
	}

	result := &Result{Manifest: make(map[string]string)}

	titles := b.Extractor.Titles(doc)
	pageStyle := b.Extractor.PageStyle(doc)
	bodyWidth, hasWidth := b.Extractor.BodyWidth(doc)

	footer, err := b.Extractor.NamedBlock(doc, inkling.BlockFooter)
	if err != nil {
		return nil, err
	}
	if footer != "" && hasWidth {
		footer, err = goquery.ResponsiveWidths(footer, bodyWidth)
		if err != nil {
			return nil, fmt.Errorf("normalize footer widths: %w", err)
		}
	}
	footer, footerAssets, err := b.replaceImages(ctx, footer, "footer", result)
	if err != nil {
		return nil, err
	}
	if err := b.saveAssets(ctx, footerAssets, result); err != nil {
		return nil, err
	}

	// First occurrence of a slug wins; later editions whose titles collapse
	// to the same slug are skipped with a warning rather than silently
	// overwritten.
	seen := make(map[string]string)

	for _, title := range titles {
		slug := inkling.Slugify(title)
		if prev, ok := seen[slug]; ok {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("slug %q for %q already used by %q; page skipped", slug, title, prev))
			continue
		}
		seen[slug] = title

		section, err := b.Extractor.Section(doc, title)
		if err != nil {
			if inkling.ErrorCode(err) == inkling.ENOTFOUND {
				result.Warnings = append(result.Warnings, fmt.Sprintf("edition %q not found; page skipped", title))
				continue
			}
			return nil, err
		}
		section, err = b.Sanitizer.Sanitize(section)
		if err != nil {
			return nil, fmt.Errorf("sanitize %q: %w", title, err)
		}
		if hasWidth {
			section, err = goquery.ResponsiveWidths(section, bodyWidth)
			if err != nil {
				return nil, fmt.Errorf("normalize widths for %q: %w", title, err)
			}
		}

		section, assets, err := b.replaceImages(ctx, section, slug, result)
		if err != nil {
			return nil, err
		}
		if err := b.saveAssets(ctx, assets, result); err != nil {
			return nil, err
		}

		page := compose.Page(compose.PageParams{
			SiteTitle: b.Config.SiteTitle,
			Title:     title,
			Style:     pageStyle,
			Content:   section,
			Footer:    footer,
		})
		if err := b.savePage(ctx, fmt.Sprintf("/article/%s.html", slug), page, result); err != nil {
			return nil, err
		}
	}

	// Archive index
	archive := compose.ArchiveList(compose.ArchiveParams{
		Heading: b.Config.SiteTitle,
		Titles:  titles,
	})
	index := compose.Page(compose.PageParams{
		SiteTitle: b.Config.SiteTitle,
		Title:     b.Config.SiteTitle,
		Content:   archive,
		Footer:    footer,
	})
	if err := b.savePage(ctx, "/index.html", index, result); err != nil {
		return nil, err
	}

	// Subscribe page
	if b.Config.AllowSubscribe {
		form := compose.SubscribeForm(b.Config.SubscribeURL, b.Config.BaseURL+"/")
		page := compose.Page(compose.PageParams{
			SiteTitle: b.Config.SiteTitle,
			Title:     "Subscribe",
			Content:   form,
			Footer:    footer,
		})
		if err := b.savePage(ctx, "/subscribe.html", page, result); err != nil {
			return nil, err
		}
	}

	// Feed
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	feed, err := feedXML(b.Config.SiteTitle, b.Config.BaseURL, titles, now().UTC())
	if err != nil {
		return nil, fmt.Errorf("build feed: %w", err)
	}
	if err := b.save(ctx, &inkling.SiteFile{
		Path:  "/feed.xml",
		MIME:  "application/atom+xml",
		Bytes: feed,
	}, result); err != nil {
		return nil, err
	}

	return result, nil
}

// replaceImages runs the collect/fetch/apply cycle in web-static mode.
// Fetch failures keep the original remote src and record a warning.
func (b *Builder) replaceImages(ctx context.Context, fragment, slug string, result *Result) (string, []inkling.Asset, error) {
	if fragment == "" {
		return "", nil, nil
	}
	refs, err := goquery.CollectImages(fragment)
	if err != nil {
		return "", nil, fmt.Errorf("collect images for %q: %w", slug, err)
	}
	resolved := make(map[int]*inkling.Asset, len(refs))
	for _, ref := range refs {
		data, mime, err := b.Assets.FetchAsset(ctx, ref.URL)
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("image %d for %q not fetched: %s", ref.Index, slug, inkling.ErrorMessage(err)))
			continue
		}
		resolved[ref.Index] = &inkling.Asset{MIME: mime, Bytes: data}
	}
	html, assets, err := goquery.ApplyImages(fragment, inkling.ModeWebStatic, slug, resolved)
	if err != nil {
		return "", nil, fmt.Errorf("apply images for %q: %w", slug, err)
	}
	return html, assets, nil
}

func (b *Builder) saveAssets(ctx context.Context, assets []inkling.Asset, result *Result) error {
	for _, asset := range assets {
		file := &inkling.SiteFile{
			Path:  asset.Path,
			MIME:  asset.MIME,
			Bytes: asset.Bytes,
		}
		if err := b.save(ctx, file, result); err != nil {
			return err
		}
		result.Assets++
	}
	return nil
}

func (b *Builder) savePage(ctx context.Context, path, html string, result *Result) error {
	file := &inkling.SiteFile{
		Path:  path,
		MIME:  "text/html",
		Bytes: []byte(html),
	}
	if err := b.save(ctx, file, result); err != nil {
		return err
	}
	result.Pages++
	return nil
}

func (b *Builder) save(ctx context.Context, file *inkling.SiteFile, result *Result) error {
	file.Digest = digest(file.Bytes)
	if err := b.Writer.Save(ctx, file); err != nil {
		return fmt.Errorf("save %s: %w", file.Path, err)
	}
	result.Manifest[file.Path] = file.Digest
	return nil
}

// digest computes a hash of the content using xxhash.
func digest(content []byte) string {
	return fmt.Sprintf("%x", xxhash.Sum64(content))
}
