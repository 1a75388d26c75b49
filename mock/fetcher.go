package mock

import (
	"context"

	"github.com/fwojciec/inkling"
)

var _ inkling.AssetFetcher = (*AssetFetcher)(nil)

// AssetFetcher is a mock implementation of inkling.AssetFetcher.
type AssetFetcher struct {
	FetchAssetFn func(ctx context.Context, url string) ([]byte, string, error)
}

func (f *AssetFetcher) FetchAsset(ctx context.Context, url string) ([]byte, string, error) {
	return f.FetchAssetFn(ctx, url)
}
