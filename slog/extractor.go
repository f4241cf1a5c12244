// Package slog provides logging decorators for domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/enesy/bookmarker"
)

// Ensure LoggingExtractor implements bookmarker.ContentExtractor.
var _ bookmarker.ContentExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a ContentExtractor with timing and fallback
// visibility. Extraction never fails outright, so the interesting signal is
// which URLs degraded to the raw-URL fallback.
type LoggingExtractor struct {
	next   bookmarker.ContentExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next bookmarker.ContentExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(ctx context.Context, url string) *bookmarker.ExtractedResult {
	begin := time.Now()
	result := e.next.Extract(ctx, url)

	degraded := result.Title == url && result.RawContent == ""
	e.logger.Info("content extraction",
		"url", url,
		"platform", bookmarker.Classify(url),
		"degraded", degraded,
		"duration", time.Since(begin),
	)
	return result
}
