package extract

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/enesy/bookmarker"
)

// CouldNotFetchMessage is the fixed description used when a generic preview
// fetch fails. The generic preview path never errors outward.
const CouldNotFetchMessage = "Could not fetch preview"

// pageMeta holds the metadata scraped from a single HTML page.
type pageMeta struct {
	pageTitle       string
	metaDescription string
	firstParagraph  string
	ogTitle         string
	ogDescription   string
	ogImage         string
	ogSiteName      string
}

// fetchPageMeta fetches a page with the browser User-Agent and scrapes
// title, meta description, first paragraph and Open Graph tags in one pass.
func (s *Service) fetchPageMeta(ctx context.Context, rawURL string) (*pageMeta, error) {
	body, err := s.pages.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, bookmarker.Errorf(bookmarker.EINVALID, "parsing %s: %v", rawURL, err)
	}

	meta := &pageMeta{
		pageTitle:       strings.TrimSpace(doc.Find("title").First().Text()),
		metaDescription: doc.Find("meta[name=description]").AttrOr("content", ""),
		ogTitle:         doc.Find(`meta[property="og:title"]`).AttrOr("content", ""),
		ogDescription:   doc.Find(`meta[property="og:description"]`).AttrOr("content", ""),
		ogImage:         doc.Find(`meta[property="og:image"]`).AttrOr("content", ""),
		ogSiteName:      doc.Find(`meta[property="og:site_name"]`).AttrOr("content", ""),
	}
	if p := doc.Find("p").First(); p.Length() > 0 {
		meta.firstParagraph = strings.TrimSpace(p.Text())
	}
	return meta, nil
}

// extractGeneric is the save-path web extractor: page title plus the meta
// description, falling back to the first paragraph for body text. On I/O
// failure it degrades to the raw URL with empty content.
func (s *Service) extractGeneric(ctx context.Context, rawURL string) *bookmarker.ExtractedResult {
	meta, err := s.fetchPageMeta(ctx, rawURL)
	if err != nil {
		return &bookmarker.ExtractedResult{Title: rawURL}
	}

	content := meta.metaDescription
	if content == "" {
		content = meta.firstParagraph
	}
	title := meta.pageTitle
	if title == "" {
		title = rawURL
	}
	return &bookmarker.ExtractedResult{Title: title, RawContent: content}
}

// previewGeneric is the preview-path web scraper: Open Graph fields with
// the page title as fallback. This path must never error outward; on I/O
// failure the preview carries the URL as title and a fixed "could not
// fetch" message.
func (s *Service) previewGeneric(ctx context.Context, rawURL string) *bookmarker.LinkPreview {
	meta, err := s.fetchPageMeta(ctx, rawURL)
	if err != nil {
		return &bookmarker.LinkPreview{
			URL:         rawURL,
			Title:       rawURL,
			Description: strPtr(CouldNotFetchMessage),
		}
	}

	title := meta.ogTitle
	if title == "" {
		title = meta.pageTitle
	}
	if title == "" {
		title = rawURL
	}
	return &bookmarker.LinkPreview{
		URL:         rawURL,
		Title:       title,
		Description: strPtr(meta.ogDescription),
		ImageURL:    strPtr(meta.ogImage),
		SiteName:    strPtr(meta.ogSiteName),
	}
}
