package extract

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/enesy/bookmarker"
)

// Ensure the reader types implement their interfaces at compile time.
var (
	_ bookmarker.ReaderService    = (*Reader)(nil)
	_ bookmarker.ArticleExtractor = (*HeuristicExtractor)(nil)
)

// Reader extracts clean reading content from arbitrary pages, independent
// of URL classification. Unlike the site extractors it surfaces failures:
// callers need to distinguish "no content found" from empty content.
type Reader struct {
	fetcher bookmarker.Fetcher
	article bookmarker.ArticleExtractor
}

// NewReader creates a new Reader. article is used for ArticleHTML; pass
// NewHeuristicExtractor() unless an alternative extractor is wired in.
func NewReader(fetcher bookmarker.Fetcher, article bookmarker.ArticleExtractor) *Reader {
	return &Reader{fetcher: fetcher, article: article}
}

// CleanContent fetches the page, locates the main content root and returns
// every paragraph's text joined by blank lines, in document order.
func (r *Reader) CleanContent(ctx context.Context, url string) (string, error) {
	body, err := r.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}
	return CleanContentFromHTML(body)
}

// ArticleHTML fetches the page and returns the main content as HTML via
// the configured article extractor.
func (r *Reader) ArticleHTML(ctx context.Context, url string) (string, error) {
	body, err := r.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}
	return r.article.ExtractArticle(body)
}

// CleanContentFromHTML extracts reading content from already-fetched HTML.
func CleanContentFromHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", bookmarker.Errorf(bookmarker.EINVALID, "parsing HTML: %v", err)
	}

	root := mainContentRoot(doc)
	if root == nil {
		return "", bookmarker.Errorf(bookmarker.ENOTFOUND, "could not extract main content")
	}

	var paragraphs []string
	root.Find("p").Each(func(_ int, p *goquery.Selection) {
		paragraphs = append(paragraphs, strings.TrimSpace(p.Text()))
	})

	text := strings.Join(paragraphs, "\n\n")
	if strings.TrimSpace(text) == "" {
		return "", bookmarker.Errorf(bookmarker.ENOTFOUND, "could not extract main content")
	}
	return text, nil
}

// mainContentRoot locates the main content of a document by trying, in
// order: <article>, any element flagged role=main, and finally the <div>
// with the most descendant <p> elements. The density scan is a deliberate,
// cheap heuristic; ties go to the first div in document order.
func mainContentRoot(doc *goquery.Document) *goquery.Selection {
	if article := doc.Find("article").First(); article.Length() > 0 {
		return article
	}
	if main := doc.Find("[role=main]").First(); main.Length() > 0 {
		return main
	}

	var best *goquery.Selection
	bestCount := 0
	doc.Find("div").Each(func(_ int, div *goquery.Selection) {
		if count := div.Find("p").Length(); count > bestCount {
			best = div
			bestCount = count
		}
	})
	return best
}

// HeuristicExtractor implements bookmarker.ArticleExtractor using the same
// content-root heuristic as CleanContent, returning the root's HTML.
type HeuristicExtractor struct{}

// NewHeuristicExtractor creates a new HeuristicExtractor.
func NewHeuristicExtractor() *HeuristicExtractor {
	return &HeuristicExtractor{}
}

// ExtractArticle returns the main content root as HTML.
func (e *HeuristicExtractor) ExtractArticle(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", bookmarker.Errorf(bookmarker.EINVALID, "parsing HTML: %v", err)
	}

	root := mainContentRoot(doc)
	if root == nil {
		return "", bookmarker.Errorf(bookmarker.ENOTFOUND, "could not extract main content")
	}

	contentHTML, err := goquery.OuterHtml(root)
	if err != nil {
		return "", bookmarker.Errorf(bookmarker.EINTERNAL, "rendering content: %v", err)
	}
	return contentHTML, nil
}
