// Package http provides HTTP-based implementations of inkling.DocumentSource
// and inkling.AssetFetcher. Requests to configured authenticated hosts carry
// a bearer token; everything else is fetched anonymously.
package http

import (
	"context"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/inkling"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// DefaultAssetMIME is assumed when the server sends no usable content type.
const DefaultAssetMIME = "image/png"

// Ensure Fetcher implements inkling.AssetFetcher at compile time.
var _ inkling.AssetFetcher = (*Fetcher)(nil)

// Fetcher retrieves documents and image assets over HTTP.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	token     string
	authHosts []string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithToken sets the bearer token presented to authenticated hosts.
func WithToken(token string) Option {
	return func(f *Fetcher) {
		f.token = token
	}
}

// WithAuthHosts sets the host suffixes that receive the bearer token.
func WithAuthHosts(hosts []string) Option {
	return func(f *Fetcher) {
		f.authHosts = hosts
	}
}

// NewFetcher creates a new Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the body of url as a string.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	resp, err := f.get(ctx, url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", inkling.Errorf(inkling.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// FetchAsset retrieves an image resource and reports its MIME type, falling
// back to DefaultAssetMIME when the server sends none.
func (f *Fetcher) FetchAsset(ctx context.Context, url string) ([]byte, string, error) {
	resp, err := f.get(ctx, url)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", inkling.Errorf(inkling.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	mimeType := DefaultAssetMIME
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		if parsed, _, err := mime.ParseMediaType(ct); err == nil {
			mimeType = parsed
		}
	}

	return data, mimeType, nil
}

func (f *Fetcher) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if f.token != "" && f.needsAuth(req.URL.Hostname()) {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}

	return f.client.Do(req)
}

// needsAuth reports whether host matches any configured authenticated host,
// either exactly or as a subdomain.
func (f *Fetcher) needsAuth(host string) bool {
	host = strings.ToLower(host)
	for _, h := range f.authHosts {
		h = strings.ToLower(h)
		if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}
	return false
}

// Ensure Source implements inkling.DocumentSource at compile time.
var _ inkling.DocumentSource = (*Source)(nil)

// Source binds a Fetcher to a fixed export URL. The document is re-fetched
// on every Export call; nothing is cached between operations.
type Source struct {
	fetcher *Fetcher
	url     string
}

// NewSource creates a DocumentSource for the given export URL.
func NewSource(fetcher *Fetcher, url string) *Source {
	return &Source{fetcher: fetcher, url: url}
}

// Export fetches the current document markup.
func (s *Source) Export(ctx context.Context) (string, error) {
	return s.fetcher.Fetch(ctx, s.url)
}
