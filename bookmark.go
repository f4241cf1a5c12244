package bookmarker

import "context"

// Bookmark represents a saved link together with the content extracted at
// capture time. RawContent is the extracted body text used as LLM context.
type Bookmark struct {
	ID            int64    `json:"id"`
	URL           string   `json:"url"`
	Title         string   `json:"title"`
	OriginalTitle string   `json:"originalTitle"` // title at capture time, never overwritten by edits
	Platform      Platform `json:"platform"`
	FolderID      *int64   `json:"folderId"`
	IsSummarized  bool     `json:"isSummarized"`
	Tags          string   `json:"tags"` // comma-separated, no structural validation
	RawContent    string   `json:"rawContent"`
	Thumbnail     *string  `json:"thumbnail"`
	ContentHash   string   `json:"contentHash"`
}

// Validate returns an error if the bookmark contains invalid fields.
func (b *Bookmark) Validate() error {
	if b.URL == "" {
		return Errorf(EINVALID, "bookmark URL required")
	}
	if b.Title == "" {
		return Errorf(EINVALID, "bookmark title required")
	}
	return nil
}

// BookmarkService represents a service for managing bookmarks.
type BookmarkService interface {
	// CreateBookmark creates a new bookmark. The store assigns the ID.
	CreateBookmark(ctx context.Context, b *Bookmark) error

	// FindBookmarkByID retrieves a bookmark by ID.
	// Returns ENOTFOUND if the bookmark does not exist.
	FindBookmarkByID(ctx context.Context, id int64) (*Bookmark, error)

	// FindBookmarks retrieves bookmarks matching the filter,
	// newest first.
	FindBookmarks(ctx context.Context, filter BookmarkFilter) ([]*Bookmark, error)

	// UpdateBookmark replaces the stored record with b, keyed by b.ID.
	// Returns ENOTFOUND if the bookmark does not exist.
	UpdateBookmark(ctx context.Context, b *Bookmark) error

	// DeleteBookmark permanently removes a bookmark.
	// Returns ENOTFOUND if the bookmark does not exist.
	DeleteBookmark(ctx context.Context, id int64) error

	// ReplaceBookmarks upserts records pulled from the cloud, keeping
	// their ids. An incoming record with an existing id overwrites the
	// local one unconditionally (last write wins).
	ReplaceBookmarks(ctx context.Context, bookmarks []*Bookmark) error
}

// BookmarkFilter represents a filter for FindBookmarks.
type BookmarkFilter struct {
	ID       *int64  `json:"id"`
	URL      *string `json:"url"`
	FolderID *int64  `json:"folderId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
