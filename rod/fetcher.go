// Package rod provides a browser-based implementation of bookmarker.Fetcher
// for pages that serve reduced markup to plain HTTP clients.
package rod

import (
	"context"
	"fmt"

	"github.com/enesy/bookmarker"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements bookmarker.Fetcher at compile time.
var _ bookmarker.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser *rod.Browser
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher() (*Fetcher, error) {
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Fetcher{browser: browser}, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", bookmarker.Errorf(bookmarker.EUNAVAILABLE, "opening page: %v", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", bookmarker.Errorf(bookmarker.EUNAVAILABLE, "navigating to %s: %v", url, err)
	}

	if err := page.WaitLoad(); err != nil {
		return "", bookmarker.Errorf(bookmarker.EUNAVAILABLE, "loading %s: %v", url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", bookmarker.Errorf(bookmarker.EUNAVAILABLE, "reading %s: %v", url, err)
	}

	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.browser.Close()
}
