package trafilatura_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enesy/bookmarker"
	"github.com/enesy/bookmarker/trafilatura"
)

// Ensure Extractor implements bookmarker.ArticleExtractor at compile time.
var _ bookmarker.ArticleExtractor = (*trafilatura.Extractor)(nil)

func TestExtractor_ExtractArticle(t *testing.T) {
	t.Parallel()

	t.Run("extracts article body", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/">Home</a><a href="/archive">Archive</a></nav>
<article>
<h1>A Saved Article</h1>
<p>This is the substantive body text a reader actually wants to keep.</p>
</article>
<aside>Sidebar content</aside>
<footer>Copyright 2024</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		content, err := ext.ExtractArticle(html)

		require.NoError(t, err)
		assert.Contains(t, content, "substantive body text")
	})

	t.Run("removes navigation boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav class="main-nav">
<ul>
<li><a href="/">Home</a></li>
<li><a href="/about">About</a></li>
</ul>
</nav>
<main>
<h1>Main Content</h1>
<p>This paragraph contains the actual content we want.</p>
</main>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		content, err := ext.ExtractArticle(html)

		require.NoError(t, err)
		assert.Contains(t, content, "actual content we want")
		assert.NotContains(t, content, "main-nav")
	})

	t.Run("removes footer boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<h1>Article Title</h1>
<p>Article body with substantive content for readers.</p>
</article>
<footer>
<p>Copyright 2024 Example Corp</p>
<nav>Privacy | Terms | Contact</nav>
</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		content, err := ext.ExtractArticle(html)

		require.NoError(t, err)
		assert.Contains(t, content, "substantive content")
		assert.NotContains(t, content, "Copyright 2024 Example Corp")
	})

	t.Run("returns ENOTFOUND for empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.ExtractArticle("")

		require.Error(t, err)
		assert.Equal(t, bookmarker.ENOTFOUND, bookmarker.ErrorCode(err))
	})

	t.Run("handles minimal valid HTML", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		content, err := ext.ExtractArticle(`<html><body><p>Simple content</p></body></html>`)

		require.NoError(t, err)
		assert.Contains(t, content, "Simple content")
	})
}
