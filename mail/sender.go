// Package mail sends composed newsletter emails over SMTP using go-mail.
package mail

import (
	"bytes"
	"context"
	"fmt"

	"github.com/fwojciec/inkling"
	gomail "github.com/wneessen/go-mail"
)

// Ensure type implements interface.
var _ inkling.EmailSender = (*Sender)(nil)

// Sender delivers emails through a single SMTP endpoint. Each Send dials,
// delivers, and closes; batches are paced by the caller so connection reuse
// buys little here.
type Sender struct {
	client *gomail.Client
	from   string
}

// NewSender returns a Sender that submits through host:port as from.
func NewSender(host string, port int, from string, opts ...Option) (*Sender, error) {
	clientOpts := []gomail.Option{
		gomail.WithPort(port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.username != "" {
		clientOpts = append(clientOpts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(o.username),
			gomail.WithPassword(o.password),
		)
	}
	client, err := gomail.NewClient(host, clientOpts...)
	if err != nil {
		return nil, inkling.Errorf(inkling.EINTERNAL, "mail client: %v", err)
	}
	return &Sender{client: client, from: from}, nil
}

type options struct {
	username string
	password string
}

// Option configures NewSender.
type Option func(*options)

// WithAuth enables SMTP PLAIN authentication.
func WithAuth(username, password string) Option {
	return func(o *options) {
		o.username = username
		o.password = password
	}
}

// Send composes and delivers a single message.
func (s *Sender) Send(ctx context.Context, email *inkling.Email) error {
	msg, err := BuildMessage(s.from, email)
	if err != nil {
		return err
	}
	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return inkling.Errorf(inkling.EUNAVAILABLE, "send to %s: %v", email.To, err)
	}
	return nil
}

// BuildMessage assembles the MIME message for an email: plain-text body,
// HTML alternative, and inline attachments referenced by content-id from
// the HTML part.
func BuildMessage(from string, email *inkling.Email) (*gomail.Msg, error) {
	if email.To == "" {
		return nil, inkling.Errorf(inkling.EINVALID, "recipient address is required")
	}
	msg := gomail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, inkling.Errorf(inkling.EINVALID, "from address %q: %v", from, err)
	}
	if err := msg.To(email.To); err != nil {
		return nil, inkling.Errorf(inkling.EINVALID, "to address %q: %v", email.To, err)
	}
	msg.Subject(email.Subject)

	if email.Text != "" {
		msg.SetBodyString(gomail.TypeTextPlain, email.Text)
		msg.AddAlternativeString(gomail.TypeTextHTML, email.HTML)
	} else {
		msg.SetBodyString(gomail.TypeTextHTML, email.HTML)
	}

	for _, asset := range email.Inline {
		name := fmt.Sprintf("%s%s", asset.ContentID, extension(asset.MIME))
		// RFC 2392 wants a bracketed msg-id in the header; the HTML part
		// references the bare id via cid:.
		if err := msg.EmbedReader(name, bytes.NewReader(asset.Bytes),
			gomail.WithFileContentID("<"+asset.ContentID+">"),
			gomail.WithFileContentType(gomail.ContentType(asset.MIME)),
		); err != nil {
			return nil, inkling.Errorf(inkling.EINTERNAL, "embed %s: %v", asset.ContentID, err)
		}
	}
	return msg, nil
}

func extension(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	default:
		return ".png"
	}
}
