package extract_test

import (
	"context"
	"strings"
	"testing"

	"github.com/enesy/bookmarker/extract"
	"github.com/enesy/bookmarker/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const redditPostJSON = `[{"data":{"children":[{"data":{
	"title":"Ask anything about Go",
	"selftext":"Weekly thread for questions."
}}]}}]`

func TestService_Extract_Reddit(t *testing.T) {
	t.Parallel()

	t.Run("derives the JSON endpoint and parses the post", func(t *testing.T) {
		t.Parallel()

		pages := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				// Trailing slash stripped before the .json suffix.
				require.Equal(t, "https://www.reddit.com/r/golang/comments/abc/post.json", url)
				return redditPostJSON, nil
			},
		}

		svc := extract.NewService(failingFetcher(), pages)
		result := svc.Extract(context.Background(), "https://www.reddit.com/r/golang/comments/abc/post/")

		assert.Equal(t, "Ask anything about Go", result.Title)
		assert.Equal(t, "Weekly thread for questions.", result.RawContent)
		assert.Nil(t, result.ImageURL)
	})

	t.Run("falls back to the generic extractor on malformed JSON", func(t *testing.T) {
		t.Parallel()

		pages := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				if strings.HasSuffix(url, ".json") {
					return "<html>rate limited</html>", nil
				}
				return `<html><head><title>Post Title</title>
					<meta name="description" content="A reddit post"></head></html>`, nil
			},
		}

		svc := extract.NewService(failingFetcher(), pages)
		result := svc.Extract(context.Background(), "https://www.reddit.com/r/golang/comments/abc/post/")

		assert.Equal(t, "Post Title", result.Title)
		assert.Equal(t, "A reddit post", result.RawContent)
	})

	t.Run("falls back to the generic extractor on empty listings", func(t *testing.T) {
		t.Parallel()

		pages := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				if strings.HasSuffix(url, ".json") {
					return `[]`, nil
				}
				return `<html><head><title>Post Title</title></head></html>`, nil
			},
		}

		svc := extract.NewService(failingFetcher(), pages)
		result := svc.Extract(context.Background(), "https://www.reddit.com/r/golang/comments/abc/post/")

		assert.Equal(t, "Post Title", result.Title)
	})
}

func TestService_Preview_Reddit(t *testing.T) {
	t.Parallel()

	t.Run("returns a title-only preview", func(t *testing.T) {
		t.Parallel()

		pages := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return redditPostJSON, nil
			},
		}

		svc := extract.NewService(failingFetcher(), pages)
		preview := svc.Preview(context.Background(), "https://www.reddit.com/r/golang/comments/abc/post")

		assert.Equal(t, "Ask anything about Go", preview.Title)
		require.NotNil(t, preview.SiteName)
		assert.Equal(t, "Reddit", *preview.SiteName)
		assert.Nil(t, preview.ImageURL)
	})

	t.Run("falls back to the generic scraper on non-JSON responses", func(t *testing.T) {
		t.Parallel()

		pages := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				if strings.HasSuffix(url, ".json") {
					return "not json", nil
				}
				return `<html><head><meta property="og:title" content="OG Post"></head></html>`, nil
			},
		}

		svc := extract.NewService(failingFetcher(), pages)
		preview := svc.Preview(context.Background(), "https://www.reddit.com/r/golang/comments/abc/post")

		assert.Equal(t, "OG Post", preview.Title)
	})
}
