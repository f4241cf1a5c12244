package bookmarker

import "context"

// ExtractedResult is the output of the save-path content extractor. It is
// transient: the caller folds it into a Bookmark and discards it.
type ExtractedResult struct {
	Title      string
	RawContent string
	ImageURL   *string
}

// LinkPreview is the output of the preview-path metadata extractor, used
// for UI preview cards. Not persisted.
type LinkPreview struct {
	URL         string
	Title       string
	Description *string
	ImageURL    *string
	SiteName    *string
}

// ContentExtractor produces a persistable extraction result for a URL.
//
// Extract never returns an error: every extraction branch degrades to a
// defined fallback, worst case {Title: url, RawContent: "", ImageURL: nil},
// so the share-intent save flow always produces a persistable bookmark.
type ContentExtractor interface {
	Extract(ctx context.Context, url string) *ExtractedResult
}

// PreviewService produces link preview metadata for a URL.
//
// Like ContentExtractor, Preview never returns an error; the generic
// fallback yields {Title: url, Description: "Could not fetch preview"}.
type PreviewService interface {
	Preview(ctx context.Context, url string) *LinkPreview
}

// ReaderService extracts clean reading content from arbitrary HTML pages,
// independent of URL classification.
type ReaderService interface {
	// CleanContent locates the main article body and returns its
	// paragraph texts joined by blank lines. Returns ENOTFOUND when no
	// main content root can be located or the extracted text is empty;
	// callers need to distinguish "no content" from an empty success.
	CleanContent(ctx context.Context, url string) (string, error)
}

// ArticleExtractor locates the main content of an HTML document and
// returns it as HTML. Implementations include the paragraph-density
// heuristic and a trafilatura-backed alternative.
type ArticleExtractor interface {
	ExtractArticle(html string) (contentHTML string, err error)
}

// Converter transforms HTML content into Markdown.
type Converter interface {
	Convert(html string) (string, error)
}
