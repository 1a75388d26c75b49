package mock

import (
	"context"

	"github.com/fwojciec/inkling"
)

var _ inkling.ContactService = (*ContactService)(nil)

// ContactService is a mock implementation of inkling.ContactService.
type ContactService struct {
	ContactsFn      func(ctx context.Context) ([]*inkling.Contact, error)
	CreateContactFn func(ctx context.Context, contact *inkling.Contact) error
	SetStatusFn     func(ctx context.Context, position int, status string, ok bool) error
	SubscribeFn     func(ctx context.Context, name, email string) (*inkling.Subscription, error)
}

func (s *ContactService) Contacts(ctx context.Context) ([]*inkling.Contact, error) {
	return s.ContactsFn(ctx)
}

func (s *ContactService) CreateContact(ctx context.Context, contact *inkling.Contact) error {
	return s.CreateContactFn(ctx, contact)
}

func (s *ContactService) SetStatus(ctx context.Context, position int, status string, ok bool) error {
	return s.SetStatusFn(ctx, position, status, ok)
}

func (s *ContactService) Subscribe(ctx context.Context, name, email string) (*inkling.Subscription, error) {
	return s.SubscribeFn(ctx, name, email)
}
