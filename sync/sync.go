// Package sync reconciles local bookmarks, notes, and folders with a
// per-user cloud document store.
package sync

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/enesy/bookmarker"
)

// pushConcurrency bounds parallel mirror calls within a single record type
// during a full push. Types are pushed sequentially.
const pushConcurrency = 4

var _ bookmarker.SyncService = (*Service)(nil)

// Service implements bookmarker.SyncService. Every method is a no-op when
// uid is empty: sync is entirely disabled while signed out.
type Service struct {
	cloud     bookmarker.CloudStore
	bookmarks bookmarker.BookmarkService
	notes     bookmarker.NoteService
	folders   bookmarker.FolderService
	logger    *slog.Logger

	syncing atomic.Bool
}

// NewService creates a Service backed by the given cloud and local stores.
func NewService(cloud bookmarker.CloudStore, bookmarks bookmarker.BookmarkService, notes bookmarker.NoteService, folders bookmarker.FolderService, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cloud:     cloud,
		bookmarks: bookmarks,
		notes:     notes,
		folders:   folders,
		logger:    logger,
	}
}

// MirrorBookmark writes the full bookmark document to the cloud.
func (s *Service) MirrorBookmark(ctx context.Context, uid string, b *bookmarker.Bookmark) error {
	if uid == "" {
		return nil
	}
	return s.cloud.PutBookmark(ctx, uid, b)
}

// MirrorNote writes the full note document to the cloud.
func (s *Service) MirrorNote(ctx context.Context, uid string, note *bookmarker.Note) error {
	if uid == "" {
		return nil
	}
	return s.cloud.PutNote(ctx, uid, note)
}

// MirrorFolder writes the full folder document to the cloud.
func (s *Service) MirrorFolder(ctx context.Context, uid string, folder *bookmarker.Folder) error {
	if uid == "" {
		return nil
	}
	return s.cloud.PutFolder(ctx, uid, folder)
}

// DeleteRemoteBookmark removes the bookmark document from the cloud.
func (s *Service) DeleteRemoteBookmark(ctx context.Context, uid string, id int64) error {
	if uid == "" {
		return nil
	}
	return s.cloud.DeleteBookmark(ctx, uid, id)
}

// DeleteRemoteNote removes the note document from the cloud.
func (s *Service) DeleteRemoteNote(ctx context.Context, uid string, id int64) error {
	if uid == "" {
		return nil
	}
	return s.cloud.DeleteNote(ctx, uid, id)
}

// DeleteRemoteFolder removes the folder document from the cloud.
func (s *Service) DeleteRemoteFolder(ctx context.Context, uid string, id int64) error {
	if uid == "" {
		return nil
	}
	return s.cloud.DeleteFolder(ctx, uid, id)
}

// PullFromCloud replaces local records with the cloud copies: folders
// first, then bookmarks, then notes. Records whose ids already exist
// locally are overwritten (last write wins); local-only records survive.
func (s *Service) PullFromCloud(ctx context.Context, uid string) error {
	if uid == "" {
		return nil
	}

	folders, err := s.cloud.ListFolders(ctx, uid)
	if err != nil {
		return err
	}
	if err := s.folders.ReplaceFolders(ctx, folders); err != nil {
		return err
	}

	bookmarks, err := s.cloud.ListBookmarks(ctx, uid)
	if err != nil {
		return err
	}
	if err := s.bookmarks.ReplaceBookmarks(ctx, bookmarks); err != nil {
		return err
	}

	notes, err := s.cloud.ListNotes(ctx, uid)
	if err != nil {
		return err
	}
	if err := s.notes.ReplaceNotes(ctx, notes); err != nil {
		return err
	}

	s.logger.Info("pulled from cloud",
		"folders", len(folders),
		"bookmarks", len(bookmarks),
		"notes", len(notes),
	)
	return nil
}

// PerformFullRestore is a pull-only reconciliation.
func (s *Service) PerformFullRestore(ctx context.Context, uid string) error {
	return s.PullFromCloud(ctx, uid)
}

// SyncNow runs a full reconciliation: pull everything from the cloud, then
// push every local record of all three types back up. Pull completes
// before push begins, so remote edits land locally and are then re-mirrored
// along with local-only records.
func (s *Service) SyncNow(ctx context.Context, uid string) error {
	if uid == "" {
		return nil
	}
	if !s.syncing.CompareAndSwap(false, true) {
		return bookmarker.Errorf(bookmarker.ECONFLICT, "sync already in progress")
	}
	defer s.syncing.Store(false)

	runID := uuid.NewString()
	logger := s.logger.With("run_id", runID, "uid", uid)
	logger.Info("sync started")

	if err := s.PullFromCloud(ctx, uid); err != nil {
		logger.Error("sync pull failed", "error", err)
		return err
	}

	if err := s.pushAll(ctx, uid); err != nil {
		logger.Error("sync push failed", "error", err)
		return err
	}

	logger.Info("sync completed")
	return nil
}

// pushAll mirrors every local record to the cloud, one record type at a
// time. Within a type, mirrors run in a bounded parallel group.
func (s *Service) pushAll(ctx context.Context, uid string) error {
	folders, err := s.folders.FindFolders(ctx)
	if err != nil {
		return err
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(pushConcurrency)
	for _, folder := range folders {
		g.Go(func() error {
			return s.cloud.PutFolder(gctx, uid, folder)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	bookmarks, err := s.bookmarks.FindBookmarks(ctx, bookmarker.BookmarkFilter{})
	if err != nil {
		return err
	}
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(pushConcurrency)
	for _, b := range bookmarks {
		g.Go(func() error {
			return s.cloud.PutBookmark(gctx, uid, b)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	notes, err := s.notes.FindNotes(ctx, bookmarker.NoteFilter{})
	if err != nil {
		return err
	}
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(pushConcurrency)
	for _, note := range notes {
		g.Go(func() error {
			return s.cloud.PutNote(gctx, uid, note)
		})
	}
	return g.Wait()
}

// Status reports whether a full sync is currently running.
func (s *Service) Status() bookmarker.SyncStatus {
	if s.syncing.Load() {
		return bookmarker.SyncSyncing
	}
	return bookmarker.SyncIdle
}
