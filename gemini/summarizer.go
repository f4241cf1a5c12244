// Package gemini implements LLM summarization using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/enesy/bookmarker"
)

const model = "gemini-2.5-flash"

// Ensure Summarizer implements bookmarker.Summarizer at compile time.
var _ bookmarker.Summarizer = (*Summarizer)(nil)

// Summarizer implements bookmarker.Summarizer using Google Gemini.
type Summarizer struct {
	client *genai.Client
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer(client *genai.Client) *Summarizer {
	return &Summarizer{client: client}
}

// Summarize produces a short summary of the bookmark's extracted content.
func (s *Summarizer) Summarize(ctx context.Context, b *bookmarker.Bookmark) (string, error) {
	if b == nil {
		return "", bookmarker.Errorf(bookmarker.EINVALID, "bookmark required")
	}
	if strings.TrimSpace(b.RawContent) == "" {
		return "", bookmarker.Errorf(bookmarker.EINVALID, "bookmark has no extracted content to summarize")
	}

	prompt := BuildUserPrompt(b)
	config := BuildConfig()

	result, err := s.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", bookmarker.Errorf(bookmarker.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant summarizing saved web content. Produce a concise summary of the provided page, a few sentences at most, based only on the content given. If the content is too thin to summarize, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the bookmark's title,
// source, and extracted content.
func BuildUserPrompt(b *bookmarker.Bookmark) string {
	title := b.Title
	if title == "" {
		title = b.URL
	}

	var sb strings.Builder
	sb.WriteString("<page>\n")
	fmt.Fprintf(&sb, "<title>%s</title>\n", title)
	fmt.Fprintf(&sb, "<source>%s</source>\n", b.URL)
	fmt.Fprintf(&sb, "<content>%s</content>\n", b.RawContent)
	sb.WriteString("</page>\n\n")
	sb.WriteString("Summarize this page.")
	return sb.String()
}
