package bookmarker

import "context"

// Summarizer produces an LLM summary of a bookmark's extracted content.
// The bookmark's title and raw content form the model context.
type Summarizer interface {
	Summarize(ctx context.Context, b *Bookmark) (string, error)
}
