package gemini_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enesy/bookmarker"
	"github.com/enesy/bookmarker/gemini"
)

func TestBuildUserPrompt(t *testing.T) {
	t.Parallel()

	t.Run("includes title, source, and content", func(t *testing.T) {
		t.Parallel()

		b := &bookmarker.Bookmark{
			URL:        "https://example.com/article",
			Title:      "An Article",
			RawContent: "the extracted body",
		}

		prompt := gemini.BuildUserPrompt(b)

		assert.Contains(t, prompt, "<title>An Article</title>")
		assert.Contains(t, prompt, "<source>https://example.com/article</source>")
		assert.Contains(t, prompt, "<content>the extracted body</content>")
		assert.Contains(t, prompt, "Summarize this page.")
	})

	t.Run("falls back to URL when title is empty", func(t *testing.T) {
		t.Parallel()

		b := &bookmarker.Bookmark{
			URL:        "https://example.com/untitled",
			RawContent: "body",
		}

		prompt := gemini.BuildUserPrompt(b)
		assert.Contains(t, prompt, "<title>https://example.com/untitled</title>")
	})
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "summarizing")
	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.4, float64(*config.Temperature), 0.001)
}

func TestSummarizer_Validation(t *testing.T) {
	t.Parallel()

	// validation failures short-circuit before any API call, so a nil
	// client is safe here
	s := gemini.NewSummarizer(nil)

	t.Run("nil bookmark", func(t *testing.T) {
		t.Parallel()

		_, err := s.Summarize(context.Background(), nil)
		assert.Equal(t, bookmarker.EINVALID, bookmarker.ErrorCode(err))
	})

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()

		_, err := s.Summarize(context.Background(), &bookmarker.Bookmark{URL: "u", Title: "t"})
		assert.Equal(t, bookmarker.EINVALID, bookmarker.ErrorCode(err))
	})
}
