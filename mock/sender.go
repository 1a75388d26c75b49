package mock

import (
	"context"

	"github.com/fwojciec/inkling"
)

var _ inkling.EmailSender = (*EmailSender)(nil)

// EmailSender is a mock implementation of inkling.EmailSender.
type EmailSender struct {
	SendFn func(ctx context.Context, email *inkling.Email) error
}

func (s *EmailSender) Send(ctx context.Context, email *inkling.Email) error {
	return s.SendFn(ctx, email)
}
