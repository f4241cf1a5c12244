package extract

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/enesy/bookmarker"
)

// redditListing mirrors the nested shape of Reddit's post JSON:
// [0].data.children[0].data carries the post fields.
type redditListing []struct {
	Data struct {
		Children []struct {
			Data struct {
				Title    string `json:"title"`
				Selftext string `json:"selftext"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// redditJSONURL derives the JSON endpoint for a post by suffixing ".json",
// stripping any trailing slash first.
func redditJSONURL(rawURL string) string {
	if strings.HasSuffix(rawURL, ".json") {
		return rawURL
	}
	return strings.TrimSuffix(rawURL, "/") + ".json"
}

// fetchRedditPost fetches and parses a post. The page fetcher is used
// because Reddit's JSON API blocks default user agents.
func (s *Service) fetchRedditPost(ctx context.Context, rawURL string) (title, selftext string, err error) {
	body, err := s.pages.Fetch(ctx, redditJSONURL(rawURL))
	if err != nil {
		return "", "", err
	}

	var listing redditListing
	if err := json.Unmarshal([]byte(body), &listing); err != nil {
		return "", "", bookmarker.Errorf(bookmarker.EINVALID, "parsing reddit response: %v", err)
	}
	if len(listing) == 0 || len(listing[0].Data.Children) == 0 {
		return "", "", bookmarker.Errorf(bookmarker.EINVALID, "reddit response missing post data")
	}

	post := listing[0].Data.Children[0].Data
	return post.Title, post.Selftext, nil
}

// extractReddit returns the post title and selftext, falling back to the
// generic extractor on any network or parse failure.
func (s *Service) extractReddit(ctx context.Context, rawURL string) *bookmarker.ExtractedResult {
	title, selftext, err := s.fetchRedditPost(ctx, rawURL)
	if err != nil {
		return s.extractGeneric(ctx, rawURL)
	}
	return &bookmarker.ExtractedResult{Title: title, RawContent: selftext}
}

// previewReddit returns a title-only preview, falling back to the generic
// scraper on any failure.
func (s *Service) previewReddit(ctx context.Context, rawURL string) *bookmarker.LinkPreview {
	title, _, err := s.fetchRedditPost(ctx, rawURL)
	if err != nil {
		return s.previewGeneric(ctx, rawURL)
	}
	return &bookmarker.LinkPreview{
		URL:      rawURL,
		Title:    title,
		SiteName: strPtr("Reddit"),
	}
}
