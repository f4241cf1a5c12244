// Package http provides an HTTP-based implementation of bookmarker.Fetcher
// for retrieving pages and JSON endpoints during link extraction.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/enesy/bookmarker"
)

// DefaultFetchTimeout is the default timeout for HTTP requests. None of the
// upstream endpoints bound their own latency, so every request carries one.
const DefaultFetchTimeout = 10 * time.Second

// BrowserUserAgent is a desktop browser User-Agent. Reddit's JSON API and
// Instagram serve blocked or reduced content to default/empty agents.
const BrowserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/118.0.0.0 Safari/537.36"

// Ensure Fetcher implements bookmarker.Fetcher at compile time.
var _ bookmarker.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves content from URLs using plain HTTP GET requests.
// It does not execute JavaScript; see the rod package for that.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
// By default no User-Agent is set and Go's default applies.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
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

// Fetch retrieves the body from the given URL. Non-2xx responses and
// transport failures are reported as EUNAVAILABLE so extractors can treat
// every network problem uniformly.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", bookmarker.Errorf(bookmarker.EINVALID, "invalid URL %q: %v", url, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", bookmarker.Errorf(bookmarker.EUNAVAILABLE, "GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", bookmarker.Errorf(bookmarker.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", bookmarker.Errorf(bookmarker.EUNAVAILABLE, "reading %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
