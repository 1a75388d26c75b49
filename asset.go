package inkling

import "context"

// AssetMode selects how image references inside a fragment are rewritten.
type AssetMode int

const (
	// ModeEmailInline replaces image sources with content-id references and
	// collects the bytes for attachment as inline MIME parts.
	ModeEmailInline AssetMode = iota

	// ModeWebStatic replaces image sources with stable per-asset file paths
	// and collects the bytes for separate file emission.
	ModeWebStatic

	// ModeWebEmbedded replaces image sources with base64 data URIs; no
	// separate files are produced.
	ModeWebEmbedded
)

// ImageRef identifies an image element within a fragment by its ordinal
// index in document order. Only http(s) sources are collected.
type ImageRef struct {
	Index int
	URL   string
}

// Asset holds a fetched image resource. ContentID is set in email-inline
// mode, Path in web-static mode. Assets live for the duration of a single
// build or send operation and are never cached across runs.
type Asset struct {
	ContentID string
	Path      string
	MIME      string
	Bytes     []byte
}

// AssetFetcher retrieves image resources, using elevated credentials when
// the URL host matches a set of known authenticated hosts.
type AssetFetcher interface {
	// FetchAsset retrieves the resource bytes and MIME type.
	FetchAsset(ctx context.Context, url string) (data []byte, mime string, err error)
}
