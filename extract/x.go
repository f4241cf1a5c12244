package extract

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/enesy/bookmarker"
)

// fetchTweet resolves a tweet through the public oEmbed endpoint. The
// returned html fragment is parsed and its plain-text rendering becomes the
// title; author_name (default "X") becomes the site name.
func (s *Service) fetchTweet(ctx context.Context, rawURL string) (title, author string, err error) {
	oembedURL := "https://publish.twitter.com/oembed?url=" + url.QueryEscape(rawURL)
	body, err := s.api.Fetch(ctx, oembedURL)
	if err != nil {
		return "", "", err
	}

	var resp oembedResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return "", "", bookmarker.Errorf(bookmarker.EINVALID, "parsing oembed response: %v", err)
	}
	if resp.HTML == "" {
		return "", "", bookmarker.Errorf(bookmarker.EINVALID, "oembed response missing html")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.HTML))
	if err != nil {
		return "", "", bookmarker.Errorf(bookmarker.EINVALID, "parsing oembed html: %v", err)
	}

	author = resp.AuthorName
	if author == "" {
		author = "X"
	}
	return strings.TrimSpace(doc.Text()), author, nil
}

// extractX returns the tweet text as title. No image is ever populated for
// this source; failures fall back to the generic extractor.
func (s *Service) extractX(ctx context.Context, rawURL string) *bookmarker.ExtractedResult {
	title, _, err := s.fetchTweet(ctx, rawURL)
	if err != nil {
		return s.extractGeneric(ctx, rawURL)
	}
	return &bookmarker.ExtractedResult{Title: title}
}

// previewX returns a text-only preview; failures fall back to the generic
// scraper.
func (s *Service) previewX(ctx context.Context, rawURL string) *bookmarker.LinkPreview {
	title, author, err := s.fetchTweet(ctx, rawURL)
	if err != nil {
		return s.previewGeneric(ctx, rawURL)
	}
	return &bookmarker.LinkPreview{
		URL:      rawURL,
		Title:    title,
		SiteName: strPtr(author),
	}
}
