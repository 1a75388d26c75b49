// Package mock provides mock implementations of inkling interfaces for testing.
package mock

import (
	"context"

	"github.com/fwojciec/inkling"
)

var _ inkling.DocumentSource = (*DocumentSource)(nil)

// DocumentSource is a mock implementation of inkling.DocumentSource.
type DocumentSource struct {
	ExportFn func(ctx context.Context) (string, error)
}

func (s *DocumentSource) Export(ctx context.Context) (string, error) {
	return s.ExportFn(ctx)
}
