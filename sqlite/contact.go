package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/inkling"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ inkling.ContactService = (*ContactService)(nil)

// ContactService implements inkling.ContactService using SQLite.
type ContactService struct {
	db *DB
}

// NewContactService creates a new ContactService.
func NewContactService(db *DB) *ContactService {
	return &ContactService{db: db}
}

// Contacts returns all contacts in position order.
func (s *ContactService) Contacts(ctx context.Context) ([]*inkling.Contact, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, send, position
		FROM contacts
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*inkling.Contact
	for rows.Next() {
		var c inkling.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Send, &c.Position); err != nil {
			return nil, err
		}
		contacts = append(contacts, &c)
	}

	return contacts, rows.Err()
}

// CreateContact adds a contact at the next free position.
func (s *ContactService) CreateContact(ctx context.Context, contact *inkling.Contact) error {
	if err := contact.Validate(); err != nil {
		return err
	}

	contact.ID = uuid.New().String()
	now := time.Now().UTC().Format(time.RFC3339)

	// MAX(position)+1 is safe under the single-connection write model.
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(position), 0) + 1 FROM contacts
	`).Scan(&contact.Position)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO contacts (id, name, email, send, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, contact.ID, contact.Name, contact.Email, contact.Send, contact.Position, now, now)

	return err
}

// SetStatus records a per-contact send status against the contact's position.
func (s *ContactService) SetStatus(ctx context.Context, position int, status string, ok bool) error {
	now := time.Now().UTC().Format(time.RFC3339)

	result, err := s.db.ExecContext(ctx, `
		UPDATE contacts
		SET status = ?, status_ok = ?, updated_at = ?
		WHERE position = ?
	`, status, ok, now, position)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return inkling.Errorf(inkling.ENOTFOUND, "no contact at position %d", position)
	}

	return nil
}

// Subscribe records a self-service signup.
func (s *ContactService) Subscribe(ctx context.Context, name, email string) (*inkling.Subscription, error) {
	email = strings.TrimSpace(email)
	if !inkling.ValidEmail(email) {
		return nil, inkling.Errorf(inkling.EINVALID, "email address %q invalid", email)
	}

	sub := &inkling.Subscription{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO subscriptions (id, name, email, created_at)
		VALUES (?, ?, ?, ?)
	`, sub.ID, sub.Name, sub.Email, sub.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}

	return sub, nil
}

// Status returns the recorded send status for the contact at position.
func (s *ContactService) Status(ctx context.Context, position int) (status string, ok bool, err error) {
	err = s.db.QueryRowContext(ctx, `
		SELECT status, status_ok FROM contacts WHERE position = ?
	`, position).Scan(&status, &ok)

	if err == sql.ErrNoRows {
		return "", false, inkling.Errorf(inkling.ENOTFOUND, "no contact at position %d", position)
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read status: %w", err)
	}

	return status, ok, nil
}
