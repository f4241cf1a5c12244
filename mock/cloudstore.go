package mock

import (
	"context"
	"strconv"
	"sync"

	"github.com/enesy/bookmarker"
)

var _ bookmarker.CloudStore = (*CloudStore)(nil)

// CloudStore is an in-memory implementation of bookmarker.CloudStore. It
// mimics the real store's semantics: full-document replace on put, no error
// on deleting a missing document, per-user collections keyed by string id.
type CloudStore struct {
	mu        sync.Mutex
	bookmarks map[string]map[string]bookmarker.Bookmark
	notes     map[string]map[string]bookmarker.Note
	folders   map[string]map[string]bookmarker.Folder
}

// NewCloudStore creates an empty in-memory CloudStore.
func NewCloudStore() *CloudStore {
	return &CloudStore{
		bookmarks: make(map[string]map[string]bookmarker.Bookmark),
		notes:     make(map[string]map[string]bookmarker.Note),
		folders:   make(map[string]map[string]bookmarker.Folder),
	}
}

func key(id int64) string { return strconv.FormatInt(id, 10) }

func (s *CloudStore) PutBookmark(_ context.Context, uid string, b *bookmarker.Bookmark) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bookmarks[uid] == nil {
		s.bookmarks[uid] = make(map[string]bookmarker.Bookmark)
	}
	s.bookmarks[uid][key(b.ID)] = *b
	return nil
}

func (s *CloudStore) DeleteBookmark(_ context.Context, uid string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.bookmarks[uid], key(id))
	return nil
}

func (s *CloudStore) ListBookmarks(_ context.Context, uid string) ([]*bookmarker.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*bookmarker.Bookmark
	for _, b := range s.bookmarks[uid] {
		b := b
		out = append(out, &b)
	}
	return out, nil
}

func (s *CloudStore) PutNote(_ context.Context, uid string, n *bookmarker.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.notes[uid] == nil {
		s.notes[uid] = make(map[string]bookmarker.Note)
	}
	s.notes[uid][key(n.ID)] = *n
	return nil
}

func (s *CloudStore) DeleteNote(_ context.Context, uid string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.notes[uid], key(id))
	return nil
}

func (s *CloudStore) ListNotes(_ context.Context, uid string) ([]*bookmarker.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*bookmarker.Note
	for _, n := range s.notes[uid] {
		n := n
		out = append(out, &n)
	}
	return out, nil
}

func (s *CloudStore) PutFolder(_ context.Context, uid string, f *bookmarker.Folder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.folders[uid] == nil {
		s.folders[uid] = make(map[string]bookmarker.Folder)
	}
	s.folders[uid][key(f.ID)] = *f
	return nil
}

func (s *CloudStore) DeleteFolder(_ context.Context, uid string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.folders[uid], key(id))
	return nil
}

func (s *CloudStore) ListFolders(_ context.Context, uid string) ([]*bookmarker.Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*bookmarker.Folder
	for _, f := range s.folders[uid] {
		f := f
		out = append(out, &f)
	}
	return out, nil
}

// BookmarkCount returns the number of documents in a user's bookmark
// collection.
func (s *CloudStore) BookmarkCount(uid string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookmarks[uid])
}

// Bookmark returns the stored document for id, if any.
func (s *CloudStore) Bookmark(uid string, id int64) (bookmarker.Bookmark, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookmarks[uid][key(id)]
	return b, ok
}

// Note returns the stored document for id, if any.
func (s *CloudStore) Note(uid string, id int64) (bookmarker.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notes[uid][key(id)]
	return n, ok
}

// Folder returns the stored document for id, if any.
func (s *CloudStore) Folder(uid string, id int64) (bookmarker.Folder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.folders[uid][key(id)]
	return f, ok
}
