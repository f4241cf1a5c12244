package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/enesy/bookmarker"
)

// Ensure LoggingSyncService implements bookmarker.SyncService.
var _ bookmarker.SyncService = (*LoggingSyncService)(nil)

// LoggingSyncService wraps a SyncService with timing for the heavyweight
// operations. Mirror and delete calls delegate without logging; the
// reconciler logs its own per-run details.
type LoggingSyncService struct {
	next   bookmarker.SyncService
	logger *slog.Logger
}

// NewLoggingSyncService creates a new LoggingSyncService.
func NewLoggingSyncService(next bookmarker.SyncService, logger *slog.Logger) *LoggingSyncService {
	return &LoggingSyncService{next: next, logger: logger}
}

// MirrorBookmark delegates to the wrapped service.
func (s *LoggingSyncService) MirrorBookmark(ctx context.Context, uid string, b *bookmarker.Bookmark) error {
	return s.next.MirrorBookmark(ctx, uid, b)
}

// MirrorNote delegates to the wrapped service.
func (s *LoggingSyncService) MirrorNote(ctx context.Context, uid string, note *bookmarker.Note) error {
	return s.next.MirrorNote(ctx, uid, note)
}

// MirrorFolder delegates to the wrapped service.
func (s *LoggingSyncService) MirrorFolder(ctx context.Context, uid string, folder *bookmarker.Folder) error {
	return s.next.MirrorFolder(ctx, uid, folder)
}

// DeleteRemoteBookmark delegates to the wrapped service.
func (s *LoggingSyncService) DeleteRemoteBookmark(ctx context.Context, uid string, id int64) error {
	return s.next.DeleteRemoteBookmark(ctx, uid, id)
}

// DeleteRemoteNote delegates to the wrapped service.
func (s *LoggingSyncService) DeleteRemoteNote(ctx context.Context, uid string, id int64) error {
	return s.next.DeleteRemoteNote(ctx, uid, id)
}

// DeleteRemoteFolder delegates to the wrapped service.
func (s *LoggingSyncService) DeleteRemoteFolder(ctx context.Context, uid string, id int64) error {
	return s.next.DeleteRemoteFolder(ctx, uid, id)
}

// PullFromCloud pulls with timing.
func (s *LoggingSyncService) PullFromCloud(ctx context.Context, uid string) error {
	begin := time.Now()
	err := s.next.PullFromCloud(ctx, uid)
	s.logger.Info("cloud pull",
		"uid", uid,
		"duration", time.Since(begin),
		"error", err,
	)
	return err
}

// PerformFullRestore restores with timing.
func (s *LoggingSyncService) PerformFullRestore(ctx context.Context, uid string) error {
	begin := time.Now()
	err := s.next.PerformFullRestore(ctx, uid)
	s.logger.Info("full restore",
		"uid", uid,
		"duration", time.Since(begin),
		"error", err,
	)
	return err
}

// SyncNow reconciles with timing.
func (s *LoggingSyncService) SyncNow(ctx context.Context, uid string) error {
	begin := time.Now()
	err := s.next.SyncNow(ctx, uid)
	s.logger.Info("full sync",
		"uid", uid,
		"duration", time.Since(begin),
		"error", err,
	)
	return err
}

// Status delegates to the wrapped service.
func (s *LoggingSyncService) Status() bookmarker.SyncStatus {
	return s.next.Status()
}
