package inkling

import "context"

// Email is one fully composed, MIME-acceptable message for one recipient:
// a standalone HTML document, a plain-text fallback, and zero or more inline
// image attachments keyed by content-id.
type Email struct {
	To      string
	Subject string
	HTML    string
	Text    string
	Inline  []Asset
}

// EmailSender delivers composed emails. Implementations wrap the outbound
// transport; per-recipient failures are returned, recorded by the caller,
// and never abort the batch.
type EmailSender interface {
	Send(ctx context.Context, email *Email) error
}
