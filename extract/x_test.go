package extract_test

import (
	"context"
	"testing"

	"github.com/enesy/bookmarker/extract"
	"github.com/enesy/bookmarker/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Preview_X(t *testing.T) {
	t.Parallel()

	t.Run("renders the oEmbed html fragment as plain text", func(t *testing.T) {
		t.Parallel()

		api := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				require.Contains(t, url, "publish.twitter.com/oembed")
				return `{"author_name":"Go Team","html":"<blockquote><p>Go 1.25 is released!</p></blockquote>"}`, nil
			},
		}

		svc := extract.NewService(api, failingFetcher())
		preview := svc.Preview(context.Background(), "https://x.com/golang/status/123")

		assert.Equal(t, "Go 1.25 is released!", preview.Title)
		require.NotNil(t, preview.SiteName)
		assert.Equal(t, "Go Team", *preview.SiteName)
		assert.Nil(t, preview.ImageURL) // never populated for this source
	})

	t.Run("defaults the site name to X", func(t *testing.T) {
		t.Parallel()

		api := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return `{"html":"<p>a post</p>"}`, nil
			},
		}

		svc := extract.NewService(api, failingFetcher())
		preview := svc.Preview(context.Background(), "https://twitter.com/user/status/123")

		require.NotNil(t, preview.SiteName)
		assert.Equal(t, "X", *preview.SiteName)
	})

	t.Run("falls back to the generic scraper on oEmbed failure", func(t *testing.T) {
		t.Parallel()

		pages := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return `<html><head><meta property="og:title" content="A Post"></head></html>`, nil
			},
		}

		svc := extract.NewService(failingFetcher(), pages)
		preview := svc.Preview(context.Background(), "https://x.com/user/status/123")

		assert.Equal(t, "A Post", preview.Title)
	})
}

func TestService_Extract_X(t *testing.T) {
	t.Parallel()

	api := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			return `{"author_name":"Someone","html":"<p>hello from x</p>"}`, nil
		},
	}

	svc := extract.NewService(api, failingFetcher())
	result := svc.Extract(context.Background(), "https://x.com/someone/status/42")

	assert.Equal(t, "hello from x", result.Title)
	assert.Empty(t, result.RawContent)
	assert.Nil(t, result.ImageURL)
}
