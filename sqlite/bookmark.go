package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/enesy/bookmarker"
)

// Compile-time interface verification.
var _ bookmarker.BookmarkService = (*BookmarkService)(nil)

// BookmarkService implements bookmarker.BookmarkService using SQLite.
type BookmarkService struct {
	db *DB
}

// NewBookmarkService creates a new BookmarkService.
func NewBookmarkService(db *DB) *BookmarkService {
	return &BookmarkService{db: db}
}

// hashContent computes xxHash of content and returns a hex string. Stored
// alongside the raw content so change detection never needs the full text.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

const bookmarkColumns = "id, url, title, original_title, platform, folder_id, is_summarized, tags, raw_content, thumbnail, content_hash"

// CreateBookmark creates a new bookmark. The store assigns the ID.
func (s *BookmarkService) CreateBookmark(ctx context.Context, b *bookmarker.Bookmark) error {
	if err := b.Validate(); err != nil {
		return err
	}

	b.ContentHash = hashContent(b.RawContent)

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO bookmarks (url, title, original_title, platform, folder_id, is_summarized, tags, raw_content, thumbnail, content_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, b.URL, b.Title, b.OriginalTitle, b.Platform, nullInt64(b.FolderID),
		b.IsSummarized, b.Tags, b.RawContent, nullString(b.Thumbnail), b.ContentHash)
	if err != nil {
		return err
	}

	b.ID, err = result.LastInsertId()
	return err
}

// FindBookmarkByID retrieves a bookmark by ID.
func (s *BookmarkService) FindBookmarkByID(ctx context.Context, id int64) (*bookmarker.Bookmark, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+bookmarkColumns+` FROM bookmarks WHERE id = ?
	`, id)

	b, err := scanBookmark(row)
	if err == sql.ErrNoRows {
		return nil, bookmarker.Errorf(bookmarker.ENOTFOUND, "bookmark not found")
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// FindBookmarks retrieves bookmarks matching the filter, newest first.
func (s *BookmarkService) FindBookmarks(ctx context.Context, filter bookmarker.BookmarkFilter) ([]*bookmarker.Bookmark, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + bookmarkColumns + " FROM bookmarks WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.FolderID != nil {
		query.WriteString(" AND folder_id = ?")
		args = append(args, *filter.FolderID)
	}

	query.WriteString(" ORDER BY id DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookmarks []*bookmarker.Bookmark
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, rows.Err()
}

// UpdateBookmark replaces the stored record, keyed by b.ID.
func (s *BookmarkService) UpdateBookmark(ctx context.Context, b *bookmarker.Bookmark) error {
	if err := b.Validate(); err != nil {
		return err
	}

	b.ContentHash = hashContent(b.RawContent)

	result, err := s.db.ExecContext(ctx, `
		UPDATE bookmarks
		SET url = ?, title = ?, original_title = ?, platform = ?, folder_id = ?,
		    is_summarized = ?, tags = ?, raw_content = ?, thumbnail = ?, content_hash = ?
		WHERE id = ?
	`, b.URL, b.Title, b.OriginalTitle, b.Platform, nullInt64(b.FolderID),
		b.IsSummarized, b.Tags, b.RawContent, nullString(b.Thumbnail), b.ContentHash, b.ID)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return bookmarker.Errorf(bookmarker.ENOTFOUND, "bookmark not found")
	}
	return nil
}

// DeleteBookmark permanently removes a bookmark.
func (s *BookmarkService) DeleteBookmark(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM bookmarks WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return bookmarker.Errorf(bookmarker.ENOTFOUND, "bookmark not found")
	}
	return nil
}

// ReplaceBookmarks upserts records pulled from the cloud, keeping their
// ids. Last write wins: an existing row with the same id is overwritten
// unconditionally.
func (s *BookmarkService) ReplaceBookmarks(ctx context.Context, bookmarks []*bookmarker.Bookmark) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, b := range bookmarks {
		b.ContentHash = hashContent(b.RawContent)
		if _, err := tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO bookmarks (`+bookmarkColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, b.ID, b.URL, b.Title, b.OriginalTitle, b.Platform, nullInt64(b.FolderID),
			b.IsSummarized, b.Tags, b.RawContent, nullString(b.Thumbnail), b.ContentHash); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// scanner abstracts sql.Row and sql.Rows for shared scan code.
type scanner interface {
	Scan(dest ...any) error
}

func scanBookmark(row scanner) (*bookmarker.Bookmark, error) {
	var b bookmarker.Bookmark
	var folderID sql.NullInt64
	var thumbnail sql.NullString

	if err := row.Scan(&b.ID, &b.URL, &b.Title, &b.OriginalTitle, &b.Platform,
		&folderID, &b.IsSummarized, &b.Tags, &b.RawContent, &thumbnail, &b.ContentHash); err != nil {
		return nil, err
	}

	b.FolderID = int64Ptr(folderID)
	b.Thumbnail = stringPtr(thumbnail)
	return &b, nil
}
