package bookmarker

import "context"

// Note represents a free-form note, optionally linked to a bookmark.
// A nil BookmarkID means the note stands alone.
type Note struct {
	ID         int64  `json:"id"`
	BookmarkID *int64 `json:"bookmarkId"`
	Content    string `json:"content"`
	CreatedAt  int64  `json:"createdAt"` // epoch millis
	FolderID   *int64 `json:"folderId"`
	Tags       string `json:"tags"`
}

// Validate returns an error if the note contains invalid fields.
func (n *Note) Validate() error {
	if n.Content == "" {
		return Errorf(EINVALID, "note content required")
	}
	return nil
}

// NoteService represents a service for managing notes.
type NoteService interface {
	// CreateNote creates a new note. The store assigns the ID.
	CreateNote(ctx context.Context, note *Note) error

	// FindNoteByID retrieves a note by ID.
	// Returns ENOTFOUND if the note does not exist.
	FindNoteByID(ctx context.Context, id int64) (*Note, error)

	// FindNotes retrieves notes matching the filter, newest first.
	FindNotes(ctx context.Context, filter NoteFilter) ([]*Note, error)

	// UpdateNote replaces the stored record with note, keyed by note.ID.
	// Returns ENOTFOUND if the note does not exist.
	UpdateNote(ctx context.Context, note *Note) error

	// DeleteNote permanently removes a note.
	// Returns ENOTFOUND if the note does not exist.
	DeleteNote(ctx context.Context, id int64) error

	// ReplaceNotes upserts records pulled from the cloud, keeping their
	// ids (last write wins).
	ReplaceNotes(ctx context.Context, notes []*Note) error
}

// NoteFilter represents a filter for FindNotes.
type NoteFilter struct {
	ID         *int64 `json:"id"`
	BookmarkID *int64 `json:"bookmarkId"`
	FolderID   *int64 `json:"folderId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
