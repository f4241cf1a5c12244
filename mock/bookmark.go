package mock

import (
	"context"

	"github.com/enesy/bookmarker"
)

var _ bookmarker.BookmarkService = (*BookmarkService)(nil)

// BookmarkService is a mock implementation of bookmarker.BookmarkService.
type BookmarkService struct {
	CreateBookmarkFn   func(ctx context.Context, b *bookmarker.Bookmark) error
	FindBookmarkByIDFn func(ctx context.Context, id int64) (*bookmarker.Bookmark, error)
	FindBookmarksFn    func(ctx context.Context, filter bookmarker.BookmarkFilter) ([]*bookmarker.Bookmark, error)
	UpdateBookmarkFn   func(ctx context.Context, b *bookmarker.Bookmark) error
	DeleteBookmarkFn   func(ctx context.Context, id int64) error
	ReplaceBookmarksFn func(ctx context.Context, bookmarks []*bookmarker.Bookmark) error
}

func (s *BookmarkService) CreateBookmark(ctx context.Context, b *bookmarker.Bookmark) error {
	return s.CreateBookmarkFn(ctx, b)
}

func (s *BookmarkService) FindBookmarkByID(ctx context.Context, id int64) (*bookmarker.Bookmark, error) {
	return s.FindBookmarkByIDFn(ctx, id)
}

func (s *BookmarkService) FindBookmarks(ctx context.Context, filter bookmarker.BookmarkFilter) ([]*bookmarker.Bookmark, error) {
	return s.FindBookmarksFn(ctx, filter)
}

func (s *BookmarkService) UpdateBookmark(ctx context.Context, b *bookmarker.Bookmark) error {
	return s.UpdateBookmarkFn(ctx, b)
}

func (s *BookmarkService) DeleteBookmark(ctx context.Context, id int64) error {
	return s.DeleteBookmarkFn(ctx, id)
}

func (s *BookmarkService) ReplaceBookmarks(ctx context.Context, bookmarks []*bookmarker.Bookmark) error {
	return s.ReplaceBookmarksFn(ctx, bookmarks)
}
