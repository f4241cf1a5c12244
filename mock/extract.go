package mock

import (
	"context"

	"github.com/enesy/bookmarker"
)

var (
	_ bookmarker.ContentExtractor = (*ContentExtractor)(nil)
	_ bookmarker.PreviewService   = (*PreviewService)(nil)
	_ bookmarker.ReaderService    = (*ReaderService)(nil)
	_ bookmarker.ArticleExtractor = (*ArticleExtractor)(nil)
	_ bookmarker.Converter        = (*Converter)(nil)
	_ bookmarker.Summarizer       = (*Summarizer)(nil)
	_ bookmarker.SyncService      = (*SyncService)(nil)
)

// ContentExtractor is a mock implementation of bookmarker.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(ctx context.Context, url string) *bookmarker.ExtractedResult
}

func (e *ContentExtractor) Extract(ctx context.Context, url string) *bookmarker.ExtractedResult {
	return e.ExtractFn(ctx, url)
}

// PreviewService is a mock implementation of bookmarker.PreviewService.
type PreviewService struct {
	PreviewFn func(ctx context.Context, url string) *bookmarker.LinkPreview
}

func (s *PreviewService) Preview(ctx context.Context, url string) *bookmarker.LinkPreview {
	return s.PreviewFn(ctx, url)
}

// ReaderService is a mock implementation of bookmarker.ReaderService.
type ReaderService struct {
	CleanContentFn func(ctx context.Context, url string) (string, error)
}

func (s *ReaderService) CleanContent(ctx context.Context, url string) (string, error) {
	return s.CleanContentFn(ctx, url)
}

// ArticleExtractor is a mock implementation of bookmarker.ArticleExtractor.
type ArticleExtractor struct {
	ExtractArticleFn func(html string) (string, error)
}

func (e *ArticleExtractor) ExtractArticle(html string) (string, error) {
	return e.ExtractArticleFn(html)
}

// Converter is a mock implementation of bookmarker.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

// Summarizer is a mock implementation of bookmarker.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, b *bookmarker.Bookmark) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, b *bookmarker.Bookmark) (string, error) {
	return s.SummarizeFn(ctx, b)
}

// SyncService is a mock implementation of bookmarker.SyncService.
type SyncService struct {
	MirrorBookmarkFn       func(ctx context.Context, uid string, b *bookmarker.Bookmark) error
	MirrorNoteFn           func(ctx context.Context, uid string, note *bookmarker.Note) error
	MirrorFolderFn         func(ctx context.Context, uid string, folder *bookmarker.Folder) error
	DeleteRemoteBookmarkFn func(ctx context.Context, uid string, id int64) error
	DeleteRemoteNoteFn     func(ctx context.Context, uid string, id int64) error
	DeleteRemoteFolderFn   func(ctx context.Context, uid string, id int64) error
	PullFromCloudFn        func(ctx context.Context, uid string) error
	PerformFullRestoreFn   func(ctx context.Context, uid string) error
	SyncNowFn              func(ctx context.Context, uid string) error
	StatusFn               func() bookmarker.SyncStatus
}

func (s *SyncService) MirrorBookmark(ctx context.Context, uid string, b *bookmarker.Bookmark) error {
	return s.MirrorBookmarkFn(ctx, uid, b)
}

func (s *SyncService) MirrorNote(ctx context.Context, uid string, note *bookmarker.Note) error {
	return s.MirrorNoteFn(ctx, uid, note)
}

func (s *SyncService) MirrorFolder(ctx context.Context, uid string, folder *bookmarker.Folder) error {
	return s.MirrorFolderFn(ctx, uid, folder)
}

func (s *SyncService) DeleteRemoteBookmark(ctx context.Context, uid string, id int64) error {
	return s.DeleteRemoteBookmarkFn(ctx, uid, id)
}

func (s *SyncService) DeleteRemoteNote(ctx context.Context, uid string, id int64) error {
	return s.DeleteRemoteNoteFn(ctx, uid, id)
}

func (s *SyncService) DeleteRemoteFolder(ctx context.Context, uid string, id int64) error {
	return s.DeleteRemoteFolderFn(ctx, uid, id)
}

func (s *SyncService) PullFromCloud(ctx context.Context, uid string) error {
	return s.PullFromCloudFn(ctx, uid)
}

func (s *SyncService) PerformFullRestore(ctx context.Context, uid string) error {
	return s.PerformFullRestoreFn(ctx, uid)
}

func (s *SyncService) SyncNow(ctx context.Context, uid string) error {
	return s.SyncNowFn(ctx, uid)
}

func (s *SyncService) Status() bookmarker.SyncStatus {
	return s.StatusFn()
}
