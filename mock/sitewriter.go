package mock

import (
	"context"

	"github.com/fwojciec/inkling"
)

var _ inkling.SiteWriter = (*SiteWriter)(nil)

// SiteWriter is a mock implementation of inkling.SiteWriter.
type SiteWriter struct {
	SaveFn   func(ctx context.Context, file *inkling.SiteFile) error
	CommitFn func() error
	AbortFn  func() error
}

func (w *SiteWriter) Save(ctx context.Context, file *inkling.SiteFile) error {
	return w.SaveFn(ctx, file)
}

func (w *SiteWriter) Commit() error {
	return w.CommitFn()
}

func (w *SiteWriter) Abort() error {
	return w.AbortFn()
}
