// Package send provides newsletter send orchestration.
// It coordinates document fetching, edition extraction, sanitization,
// image inlining, per-recipient composition, and paced delivery.
package send

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/inkling"
	"github.com/fwojciec/inkling/compose"
	"github.com/fwojciec/inkling/goquery"
)

// Sender orchestrates sending one edition to a list of contacts.
type Sender struct {
	Source    inkling.DocumentSource
	Extractor inkling.Extractor
	Sanitizer inkling.Sanitizer
	Renderer  inkling.TextRenderer
	Assets    inkling.AssetFetcher
	Email     inkling.EmailSender
	Contacts  inkling.ContactService
	Limiter   *IntervalLimiter
	Config    inkling.Config
}

// Result holds the outcome of a send operation.
type Result struct {
	Sent     int
	Failed   int
	Warnings []string
}

// ProgressEvent reports progress during a send operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Email     string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressSent
	ProgressFailed
	ProgressReport
	ProgressFinished
)

// ProgressFunc is a callback for reporting send progress.
type ProgressFunc func(event ProgressEvent)

// Send delivers the edition matching subject to every send-enabled contact.
// The progress callback, if provided, receives events as sending proceeds.
func (s *Sender) Send(ctx context.Context, subject string, progress ProgressFunc) (*Result, error) {
	all, err := s.Contacts.Contacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load contacts: %w", err)
	}
	contacts := make([]*inkling.Contact, 0, len(all))
	for _, c := range all {
		if c.Send {
			contacts = append(contacts, c)
		}
	}
	if len(contacts) == 0 {
		return nil, inkling.Errorf(inkling.ENOTFOUND, "no send-enabled contacts")
	}
	return s.sendTo(ctx, subject, contacts, false, progress)
}

// SendTest delivers the edition to a single recipient with the configured
// test prefix on the subject. No status is written back.
func (s *Sender) SendTest(ctx context.Context, subject, name, email string, progress ProgressFunc) (*Result, error) {
	contact := &inkling.Contact{Name: name, Email: email, Send: true}
	return s.sendTo(ctx, subject, []*inkling.Contact{contact}, true, progress)
}

// body holds the per-edition state prepared once before the contact loop.
type body struct {
	html     string
	intro    string
	inline   []inkling.Asset
	url      string
	warnings []string
}

// prepare fetches the document and builds the sendable body exactly once:
// extraction, sanitization, footer append, width normalization, and image
// inlining all happen here, not per recipient.
func (s *Sender) prepare(ctx context.Context, subject string) (*body, error) {
	doc, err := s.Source.Export(ctx)
	if err != nil {
		return nil, fmt.Errorf("export document: %w", err)
	}

	section, err := s.Extractor.Section(doc, subject)
	if err != nil {
		return nil, err
	}
	section, err = s.Sanitizer.Sanitize(section)
	if err != nil {
		return nil, fmt.Errorf("sanitize edition: %w", err)
	}

	intro, err := s.Extractor.NamedBlock(doc, inkling.BlockIntro)
	if err != nil {
		return nil, err
	}
	footer, err := s.Extractor.NamedBlock(doc, inkling.BlockFooter)
	if err != nil {
		return nil, err
	}

	full := section
	if footer != "" {
		full += "\n" + footer
	}

	if width, ok := s.Extractor.BodyWidth(doc); ok {
		full, err = goquery.ResponsiveWidths(full, width)
		if err != nil {
			return nil, fmt.Errorf("normalize widths: %w", err)
		}
	}

	slug := inkling.Slugify(subject)

	refs, err := goquery.CollectImages(full)
	if err != nil {
		return nil, fmt.Errorf("collect images: %w", err)
	}
	var warnings []string
	resolved := make(map[int]*inkling.Asset, len(refs))
	for _, ref := range refs {
		data, mime, err := s.Assets.FetchAsset(ctx, ref.URL)
		if err != nil {
			// Keep the original src; the image still resolves in clients
			// that load remote content.
			warnings = append(warnings,
				fmt.Sprintf("image %d not inlined: %s", ref.Index, inkling.ErrorMessage(err)))
			continue
		}
		resolved[ref.Index] = &inkling.Asset{MIME: mime, Bytes: data}
	}

	html, inline, err := goquery.ApplyImages(full, inkling.ModeEmailInline, slug, resolved)
	if err != nil {
		return nil, fmt.Errorf("inline images: %w", err)
	}

	var browserURL string
	if s.Config.ShowBrowserBanner && s.Config.BaseURL != "" {
		browserURL = fmt.Sprintf("%s/article/%s.html", s.Config.BaseURL, slug)
	}

	return &body{html: html, intro: intro, inline: inline, url: browserURL, warnings: warnings}, nil
}

func (s *Sender) sendTo(ctx context.Context, subject string, contacts []*inkling.Contact, test bool, progress ProgressFunc) (*Result, error) {
	prepared, err := s.prepare(ctx, subject)
	if err != nil {
		return nil, err
	}

	emailSubject := subject
	if test {
		emailSubject = s.Config.TestPrefix + subject
	}

	total := len(contacts)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	progressEvery := s.Config.ProgressEvery
	if progressEvery < 1 {
		progressEvery = inkling.DefaultProgressEvery
	}

	result := Result{Warnings: prepared.warnings}
	for i, contact := range contacts {
		if !inkling.ValidEmail(contact.Email) {
			s.writeStatus(ctx, contact, test, "Invalid email", false)
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: i + 1,
					Total:     total,
					Email:     contact.Email,
					Error:     inkling.Errorf(inkling.EINVALID, "invalid email address"),
				})
			}
			continue
		}

		html := compose.Email(compose.EmailParams{
			Name:       contact.Name,
			Intro:      prepared.intro,
			Body:       prepared.html,
			BrowserURL: prepared.url,
		})

		text, err := s.Renderer.RenderText(html)
		if err != nil {
			// The HTML part still delivers; send without a text alternative.
			text = ""
		}

		err = s.Email.Send(ctx, &inkling.Email{
			To:      contact.Email,
			Subject: emailSubject,
			HTML:    html,
			Text:    text,
			Inline:  prepared.inline,
		})
		if err != nil {
			s.writeStatus(ctx, contact, test, fmt.Sprintf("Error: %s", inkling.ErrorMessage(err)), false)
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: i + 1,
					Total:     total,
					Email:     contact.Email,
					Error:     err,
				})
			}
		} else {
			s.writeStatus(ctx, contact, test, fmt.Sprintf("Sent %s", time.Now().UTC().Format(time.RFC3339)), true)
			result.Sent++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressSent,
					Completed: i + 1,
					Total:     total,
					Email:     contact.Email,
				})
			}
		}

		if i+1 < total {
			if err := s.Limiter.Wait(ctx); err != nil {
				return &result, err
			}
		}

		if progress != nil && (i+1)%progressEvery == 0 {
			progress(ProgressEvent{Type: ProgressReport, Completed: i + 1, Total: total})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return &result, nil
}

// writeStatus records a per-contact outcome. Test sends and ad-hoc contacts
// have no store position and are skipped. Writeback failures are swallowed;
// losing a status cell must not fail the batch.
func (s *Sender) writeStatus(ctx context.Context, contact *inkling.Contact, test bool, status string, ok bool) {
	if test || contact.Position == 0 || s.Contacts == nil {
		return
	}
	_ = s.Contacts.SetStatus(ctx, contact.Position, status, ok)
}
