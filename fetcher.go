package bookmarker

import "context"

// Fetcher retrieves raw content from URLs.
//
// Extractors that need a spoofed desktop browser User-Agent (Reddit's JSON
// API and Instagram block default agents) are wired with a Fetcher instance
// configured accordingly; the interface itself stays header-free.
type Fetcher interface {
	// Fetch performs a GET request and returns the response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
