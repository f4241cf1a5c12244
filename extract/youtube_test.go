package extract_test

import (
	"context"
	"strings"
	"testing"

	"github.com/enesy/bookmarker"
	"github.com/enesy/bookmarker/extract"
	"github.com/enesy/bookmarker/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/v/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://m.youtube.com/watch?v=dQw4w9WgXcQ&t=10s", "dQw4w9WgXcQ"},
		{"https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/", ""},
		{"https://example.com/watch?v=dQw4w9WgXcQ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, extract.VideoID(tt.url), tt.url)
	}
}

func TestService_Extract_YouTube(t *testing.T) {
	t.Parallel()

	t.Run("uses the Data API when a key is configured", func(t *testing.T) {
		t.Parallel()

		api := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				require.Contains(t, url, "googleapis.com/youtube/v3/videos")
				require.Contains(t, url, "id=dQw4w9WgXcQ")
				require.Contains(t, url, "key=test-key")
				return `{"items":[{"snippet":{
					"title":"Never Gonna Give You Up",
					"description":"Official video",
					"thumbnails":{"high":{"url":"https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg"}}
				}}]}`, nil
			},
		}

		svc := extract.NewService(api, failingFetcher(), extract.WithYouTubeAPIKey("test-key"))
		result := svc.Extract(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ")

		assert.Equal(t, "Never Gonna Give You Up", result.Title)
		assert.Equal(t, "Official video", result.RawContent)
		require.NotNil(t, result.ImageURL)
		assert.Equal(t, "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg", *result.ImageURL)
	})

	t.Run("falls back to oEmbed when the Data API fails", func(t *testing.T) {
		t.Parallel()

		api := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				if strings.Contains(url, "googleapis.com") {
					return "", bookmarker.Errorf(bookmarker.EUNAVAILABLE, "quota exceeded")
				}
				require.Contains(t, url, "youtube.com/oembed")
				return `{"title":"Some Video"}`, nil
			},
		}

		svc := extract.NewService(api, failingFetcher(), extract.WithYouTubeAPIKey("test-key"))
		result := svc.Extract(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ")

		assert.Equal(t, "Some Video", result.Title)
		assert.Equal(t, "Video Link: Some Video", result.RawContent)
		assert.Nil(t, result.ImageURL)
	})

	t.Run("skips the Data API when no key is configured", func(t *testing.T) {
		t.Parallel()

		var calls []string
		api := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				calls = append(calls, url)
				return `{"title":"Some Video"}`, nil
			},
		}

		svc := extract.NewService(api, failingFetcher())
		result := svc.Extract(context.Background(), "https://youtu.be/dQw4w9WgXcQ")

		assert.Equal(t, "Some Video", result.Title)
		require.Len(t, calls, 1)
		assert.Contains(t, calls[0], "oembed")
	})

	t.Run("degrades to the raw URL when everything fails", func(t *testing.T) {
		t.Parallel()

		svc := extract.NewService(failingFetcher(), failingFetcher(), extract.WithYouTubeAPIKey("test-key"))
		result := svc.Extract(context.Background(), "https://youtu.be/dQw4w9WgXcQ")

		assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", result.Title)
		assert.Empty(t, result.RawContent)
		assert.Nil(t, result.ImageURL)
	})
}

func TestService_Preview_YouTube(t *testing.T) {
	t.Parallel()

	t.Run("builds a deterministic thumbnail without any network call", func(t *testing.T) {
		t.Parallel()

		// Any fetch would fail loudly; the preview path must not fetch.
		svc := extract.NewService(failingFetcher(), failingFetcher())
		preview := svc.Preview(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ")

		assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", preview.Title)
		require.NotNil(t, preview.ImageURL)
		assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", *preview.ImageURL)
		require.NotNil(t, preview.SiteName)
		assert.Equal(t, "YouTube", *preview.SiteName)
		require.NotNil(t, preview.Description)
		assert.Equal(t, "YouTube Video", *preview.Description)
	})

	t.Run("omits the thumbnail when no video id is present", func(t *testing.T) {
		t.Parallel()

		svc := extract.NewService(failingFetcher(), failingFetcher())
		preview := svc.Preview(context.Background(), "https://www.youtube.com/")

		assert.Nil(t, preview.ImageURL)
	})
}
