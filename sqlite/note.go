package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/enesy/bookmarker"
)

var _ bookmarker.NoteService = (*NoteService)(nil)

// NoteService implements bookmarker.NoteService using SQLite.
type NoteService struct {
	db *DB

	// Now returns the current time, overridable in tests.
	Now func() time.Time
}

// NewNoteService creates a new NoteService.
func NewNoteService(db *DB) *NoteService {
	return &NoteService{db: db, Now: time.Now}
}

const noteColumns = "id, bookmark_id, content, created_at, folder_id, tags"

// CreateNote creates a new note. The store assigns the ID and, when unset,
// the creation timestamp.
func (s *NoteService) CreateNote(ctx context.Context, note *bookmarker.Note) error {
	if err := note.Validate(); err != nil {
		return err
	}

	if note.CreatedAt == 0 {
		note.CreatedAt = s.Now().UnixMilli()
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO notes (bookmark_id, content, created_at, folder_id, tags)
		VALUES (?, ?, ?, ?, ?)
	`, nullInt64(note.BookmarkID), note.Content, note.CreatedAt, nullInt64(note.FolderID), note.Tags)
	if err != nil {
		return err
	}

	note.ID, err = result.LastInsertId()
	return err
}

// FindNoteByID retrieves a note by ID.
func (s *NoteService) FindNoteByID(ctx context.Context, id int64) (*bookmarker.Note, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+noteColumns+` FROM notes WHERE id = ?
	`, id)

	note, err := scanNote(row)
	if err == sql.ErrNoRows {
		return nil, bookmarker.Errorf(bookmarker.ENOTFOUND, "note not found")
	}
	if err != nil {
		return nil, err
	}
	return note, nil
}

// FindNotes retrieves notes matching the filter, newest first.
func (s *NoteService) FindNotes(ctx context.Context, filter bookmarker.NoteFilter) ([]*bookmarker.Note, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + noteColumns + " FROM notes WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.BookmarkID != nil {
		query.WriteString(" AND bookmark_id = ?")
		args = append(args, *filter.BookmarkID)
	}
	if filter.FolderID != nil {
		query.WriteString(" AND folder_id = ?")
		args = append(args, *filter.FolderID)
	}

	query.WriteString(" ORDER BY created_at DESC, id DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []*bookmarker.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

// UpdateNote replaces the stored record, keyed by note.ID.
func (s *NoteService) UpdateNote(ctx context.Context, note *bookmarker.Note) error {
	if err := note.Validate(); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE notes
		SET bookmark_id = ?, content = ?, created_at = ?, folder_id = ?, tags = ?
		WHERE id = ?
	`, nullInt64(note.BookmarkID), note.Content, note.CreatedAt, nullInt64(note.FolderID), note.Tags, note.ID)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return bookmarker.Errorf(bookmarker.ENOTFOUND, "note not found")
	}
	return nil
}

// DeleteNote permanently removes a note.
func (s *NoteService) DeleteNote(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return bookmarker.Errorf(bookmarker.ENOTFOUND, "note not found")
	}
	return nil
}

// ReplaceNotes upserts records pulled from the cloud, keeping their ids.
func (s *NoteService) ReplaceNotes(ctx context.Context, notes []*bookmarker.Note) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, note := range notes {
		if _, err := tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO notes (`+noteColumns+`)
			VALUES (?, ?, ?, ?, ?, ?)
		`, note.ID, nullInt64(note.BookmarkID), note.Content, note.CreatedAt,
			nullInt64(note.FolderID), note.Tags); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func scanNote(row scanner) (*bookmarker.Note, error) {
	var note bookmarker.Note
	var bookmarkID, folderID sql.NullInt64

	if err := row.Scan(&note.ID, &bookmarkID, &note.Content, &note.CreatedAt,
		&folderID, &note.Tags); err != nil {
		return nil, err
	}

	note.BookmarkID = int64Ptr(bookmarkID)
	note.FolderID = int64Ptr(folderID)
	return &note, nil
}
