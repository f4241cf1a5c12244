// Package extract turns URLs into normalized bookmark content and link
// previews. A single classify-then-dispatch step chooses one site strategy
// (YouTube, Reddit, X, Instagram, generic) per request; whichever strategy
// is chosen owns the entire extraction, with no merging across strategies
// beyond each one's designed fallback chain.
package extract

import (
	"context"

	"github.com/enesy/bookmarker"
)

// Ensure Service implements the extraction interfaces at compile time.
var (
	_ bookmarker.ContentExtractor = (*Service)(nil)
	_ bookmarker.PreviewService   = (*Service)(nil)
)

// Service implements the save-path content extractor and the preview-path
// metadata extractor over a pair of fetchers: api for JSON endpoints and
// pages for page fetches that need a desktop browser User-Agent.
type Service struct {
	api           bookmarker.Fetcher
	pages         bookmarker.Fetcher
	youtubeAPIKey string
}

// Option configures a Service.
type Option func(*Service)

// WithYouTubeAPIKey sets the Data API key for the YouTube save path. When
// empty the save path goes straight to the oEmbed fallback.
func WithYouTubeAPIKey(key string) Option {
	return func(s *Service) {
		s.youtubeAPIKey = key
	}
}

// NewService creates a new Service. api is used for JSON/oEmbed endpoints,
// pages for HTML page fetches (configure it with a browser User-Agent).
func NewService(api, pages bookmarker.Fetcher, opts ...Option) *Service {
	s := &Service{api: api, pages: pages}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Extract produces a persistable extraction result for the URL. It never
// returns an error: every strategy degrades to a defined fallback, worst
// case {Title: url, RawContent: "", ImageURL: nil}.
func (s *Service) Extract(ctx context.Context, url string) *bookmarker.ExtractedResult {
	switch bookmarker.Classify(url) {
	case bookmarker.PlatformYouTube:
		return s.extractYouTube(ctx, url)
	case bookmarker.PlatformReddit:
		return s.extractReddit(ctx, url)
	case bookmarker.PlatformX:
		return s.extractX(ctx, url)
	case bookmarker.PlatformInstagram:
		return s.extractInstagram(ctx, url)
	default:
		return s.extractGeneric(ctx, url)
	}
}

// Preview produces link preview metadata for the URL. Like Extract it never
// returns an error; the generic strategy absorbs I/O failures into a
// "Could not fetch preview" record.
func (s *Service) Preview(ctx context.Context, url string) *bookmarker.LinkPreview {
	switch bookmarker.Classify(url) {
	case bookmarker.PlatformYouTube:
		return s.previewYouTube(url)
	case bookmarker.PlatformReddit:
		return s.previewReddit(ctx, url)
	case bookmarker.PlatformX:
		return s.previewX(ctx, url)
	case bookmarker.PlatformInstagram:
		return s.previewInstagram(ctx, url)
	default:
		return s.previewGeneric(ctx, url)
	}
}

// strPtr returns a pointer to s, or nil when s is empty. Preview fields are
// nil rather than empty so callers can tell "absent" from "blank".
func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
