package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/enesy/bookmarker"
)

var _ bookmarker.CloudStore = (*CloudStore)(nil)

// Collection names within the per-user document hierarchy.
const (
	collBookmarks = "bookmarks"
	collNotes     = "notes"
	collFolders   = "folders"
)

// CloudStore implements bookmarker.CloudStore on top of a documents table.
// Every write is a full-document upsert; deletes of absent documents
// succeed silently.
type CloudStore struct {
	db *DB
}

// NewCloudStore creates a new CloudStore.
func NewCloudStore(db *DB) *CloudStore {
	return &CloudStore{db: db}
}

func (s *CloudStore) put(ctx context.Context, uid, collection, docID string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	_, err = s.db.Pool.Exec(ctx, `
		INSERT INTO documents (uid, collection, doc_id, doc)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (uid, collection, doc_id) DO UPDATE SET
			doc = EXCLUDED.doc,
			synced_at = NOW()
	`, uid, collection, docID, data)
	if err != nil {
		return bookmarker.Errorf(bookmarker.EUNAVAILABLE, "cloud write failed: %v", err)
	}
	return nil
}

func (s *CloudStore) delete(ctx context.Context, uid, collection string, id int64) error {
	_, err := s.db.Pool.Exec(ctx, `
		DELETE FROM documents WHERE uid = $1 AND collection = $2 AND doc_id = $3
	`, uid, collection, strconv.FormatInt(id, 10))
	if err != nil {
		return bookmarker.Errorf(bookmarker.EUNAVAILABLE, "cloud delete failed: %v", err)
	}
	return nil
}

func (s *CloudStore) list(ctx context.Context, uid, collection string, decode func([]byte) error) error {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT doc FROM documents WHERE uid = $1 AND collection = $2 ORDER BY doc_id
	`, uid, collection)
	if err != nil {
		return bookmarker.Errorf(bookmarker.EUNAVAILABLE, "cloud list failed: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return err
		}
		if err := decode(data); err != nil {
			return bookmarker.Errorf(bookmarker.EINVALID, "malformed cloud document: %v", err)
		}
	}
	return rows.Err()
}

// PutBookmark upserts the full bookmark document keyed by its local id.
func (s *CloudStore) PutBookmark(ctx context.Context, uid string, b *bookmarker.Bookmark) error {
	return s.put(ctx, uid, collBookmarks, strconv.FormatInt(b.ID, 10), b)
}

// DeleteBookmark removes the bookmark document, succeeding if absent.
func (s *CloudStore) DeleteBookmark(ctx context.Context, uid string, id int64) error {
	return s.delete(ctx, uid, collBookmarks, id)
}

// ListBookmarks returns every bookmark document stored for uid.
func (s *CloudStore) ListBookmarks(ctx context.Context, uid string) ([]*bookmarker.Bookmark, error) {
	var bookmarks []*bookmarker.Bookmark
	err := s.list(ctx, uid, collBookmarks, func(data []byte) error {
		var b bookmarker.Bookmark
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		bookmarks = append(bookmarks, &b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bookmarks, nil
}

// PutNote upserts the full note document keyed by its local id.
func (s *CloudStore) PutNote(ctx context.Context, uid string, note *bookmarker.Note) error {
	return s.put(ctx, uid, collNotes, strconv.FormatInt(note.ID, 10), note)
}

// DeleteNote removes the note document, succeeding if absent.
func (s *CloudStore) DeleteNote(ctx context.Context, uid string, id int64) error {
	return s.delete(ctx, uid, collNotes, id)
}

// ListNotes returns every note document stored for uid. Documents written
// by older clients used -1 or 0 as an "unlinked" bookmark sentinel; those
// are normalized to a nil BookmarkID on the way out.
func (s *CloudStore) ListNotes(ctx context.Context, uid string) ([]*bookmarker.Note, error) {
	var notes []*bookmarker.Note
	err := s.list(ctx, uid, collNotes, func(data []byte) error {
		var note bookmarker.Note
		if err := json.Unmarshal(data, &note); err != nil {
			return err
		}
		if note.BookmarkID != nil && *note.BookmarkID <= 0 {
			note.BookmarkID = nil
		}
		notes = append(notes, &note)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// PutFolder upserts the full folder document keyed by its local id.
func (s *CloudStore) PutFolder(ctx context.Context, uid string, folder *bookmarker.Folder) error {
	return s.put(ctx, uid, collFolders, strconv.FormatInt(folder.ID, 10), folder)
}

// DeleteFolder removes the folder document, succeeding if absent.
func (s *CloudStore) DeleteFolder(ctx context.Context, uid string, id int64) error {
	return s.delete(ctx, uid, collFolders, id)
}

// ListFolders returns every folder document stored for uid.
func (s *CloudStore) ListFolders(ctx context.Context, uid string) ([]*bookmarker.Folder, error) {
	var folders []*bookmarker.Folder
	err := s.list(ctx, uid, collFolders, func(data []byte) error {
		var folder bookmarker.Folder
		if err := json.Unmarshal(data, &folder); err != nil {
			return err
		}
		folders = append(folders, &folder)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return folders, nil
}
