// Package trafilatura provides an alternative article extractor backed by
// go-trafilatura, usable in place of the paragraph-density heuristic.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"

	"github.com/enesy/bookmarker"
)

// Ensure Extractor implements bookmarker.ArticleExtractor at compile time.
var _ bookmarker.ArticleExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractArticle processes raw HTML and returns the main content as HTML.
// Returns ENOTFOUND when no main content can be located.
func (e *Extractor) ExtractArticle(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", bookmarker.Errorf(bookmarker.ENOTFOUND, "could not extract main content")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", bookmarker.Errorf(bookmarker.ENOTFOUND, "could not extract main content")
	}
	if result.ContentNode == nil {
		return "", bookmarker.Errorf(bookmarker.ENOTFOUND, "could not extract main content")
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return "", err
	}
	return contentHTML, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
