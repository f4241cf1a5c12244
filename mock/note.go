package mock

import (
	"context"

	"github.com/enesy/bookmarker"
)

var _ bookmarker.NoteService = (*NoteService)(nil)

// NoteService is a mock implementation of bookmarker.NoteService.
type NoteService struct {
	CreateNoteFn   func(ctx context.Context, note *bookmarker.Note) error
	FindNoteByIDFn func(ctx context.Context, id int64) (*bookmarker.Note, error)
	FindNotesFn    func(ctx context.Context, filter bookmarker.NoteFilter) ([]*bookmarker.Note, error)
	UpdateNoteFn   func(ctx context.Context, note *bookmarker.Note) error
	DeleteNoteFn   func(ctx context.Context, id int64) error
	ReplaceNotesFn func(ctx context.Context, notes []*bookmarker.Note) error
}

func (s *NoteService) CreateNote(ctx context.Context, note *bookmarker.Note) error {
	return s.CreateNoteFn(ctx, note)
}

func (s *NoteService) FindNoteByID(ctx context.Context, id int64) (*bookmarker.Note, error) {
	return s.FindNoteByIDFn(ctx, id)
}

func (s *NoteService) FindNotes(ctx context.Context, filter bookmarker.NoteFilter) ([]*bookmarker.Note, error) {
	return s.FindNotesFn(ctx, filter)
}

func (s *NoteService) UpdateNote(ctx context.Context, note *bookmarker.Note) error {
	return s.UpdateNoteFn(ctx, note)
}

func (s *NoteService) DeleteNote(ctx context.Context, id int64) error {
	return s.DeleteNoteFn(ctx, id)
}

func (s *NoteService) ReplaceNotes(ctx context.Context, notes []*bookmarker.Note) error {
	return s.ReplaceNotesFn(ctx, notes)
}
