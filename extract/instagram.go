package extract

import (
	"context"

	"github.com/enesy/bookmarker"
)

// extractInstagram reads Open Graph tags from the post page. The page
// fetcher's desktop User-Agent is required: default agents are served
// reduced markup. Failures fall back to the generic extractor.
func (s *Service) extractInstagram(ctx context.Context, rawURL string) *bookmarker.ExtractedResult {
	meta, err := s.fetchPageMeta(ctx, rawURL)
	if err != nil {
		return s.extractGeneric(ctx, rawURL)
	}

	title := meta.ogDescription
	if title == "" {
		title = meta.pageTitle
	}
	return &bookmarker.ExtractedResult{
		Title:      title,
		RawContent: meta.ogDescription,
		ImageURL:   strPtr(meta.ogImage),
	}
}

// previewInstagram mirrors extractInstagram with the preview output shape.
func (s *Service) previewInstagram(ctx context.Context, rawURL string) *bookmarker.LinkPreview {
	meta, err := s.fetchPageMeta(ctx, rawURL)
	if err != nil {
		return s.previewGeneric(ctx, rawURL)
	}

	title := meta.ogDescription
	if title == "" {
		title = meta.pageTitle
	}
	return &bookmarker.LinkPreview{
		URL:      rawURL,
		Title:    title,
		ImageURL: strPtr(meta.ogImage),
		SiteName: strPtr("Instagram"),
	}
}
