package bookmarker_test

import (
	"testing"

	"github.com/enesy/bookmarker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractURL(t *testing.T) {
	t.Parallel()

	t.Run("finds a URL surrounded by prose", func(t *testing.T) {
		t.Parallel()

		url, ok := bookmarker.ExtractURL("check this out: https://example.com/article?id=1 so good")
		require.True(t, ok)
		assert.Equal(t, "https://example.com/article?id=1", url)
	})

	t.Run("tolerates a missing scheme", func(t *testing.T) {
		t.Parallel()

		url, ok := bookmarker.ExtractURL("saved from www.example.org/page")
		require.True(t, ok)
		assert.Equal(t, "www.example.org/page", url)
	})

	t.Run("returns the first match when several are present", func(t *testing.T) {
		t.Parallel()

		url, ok := bookmarker.ExtractURL("https://first.com and https://second.com")
		require.True(t, ok)
		assert.Equal(t, "https://first.com", url)
	})

	t.Run("reports no match for plain text", func(t *testing.T) {
		t.Parallel()

		_, ok := bookmarker.ExtractURL("just some words with no link")
		assert.False(t, ok)
	})
}
