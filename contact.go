package inkling

import (
	"context"
	"regexp"
	"strings"
	"time"
)

// Contact represents a newsletter recipient sourced from the contact store.
// Position is the row position in the external store and exists purely to
// support status writeback; it plays no role in extraction.
type Contact struct {
	ID       string
	Name     string
	Email    string
	Send     bool
	Position int
}

// Validate returns an error if the contact contains invalid fields.
func (c *Contact) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "contact name required")
	}
	if !ValidEmail(c.Email) {
		return Errorf(EINVALID, "contact email %q invalid", c.Email)
	}
	return nil
}

// Subscription represents a self-service signup recorded from the web
// surface.
type Subscription struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}

// emailRe rejects empty domain labels, so "username@domain..com" is invalid.
var emailRe = regexp.MustCompile(`^[^\s@]+@([^\s@.]+\.)+[^\s@.]+$`)

// ValidEmail reports whether e, after trimming, is a plausible address.
func ValidEmail(e string) bool {
	return emailRe.MatchString(strings.TrimSpace(e))
}

// ContactService is the key-addressed read/write surface over the external
// contact store.
type ContactService interface {
	// Contacts returns all contacts in position order.
	Contacts(ctx context.Context) ([]*Contact, error)

	// CreateContact adds a contact at the next free position.
	CreateContact(ctx context.Context, contact *Contact) error

	// SetStatus records a per-contact send status against the contact's
	// position. ok distinguishes success from failure statuses.
	SetStatus(ctx context.Context, position int, status string, ok bool) error

	// Subscribe records a self-service signup.
	// Returns EINVALID if the email address is malformed.
	Subscribe(ctx context.Context, name, email string) (*Subscription, error)
}
