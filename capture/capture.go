// Package capture implements the share-intent save flow: take a piece of
// shared text, find the URL in it, extract content, and persist a bookmark.
package capture

import (
	"context"
	"log/slog"
	"sync"

	"github.com/enesy/bookmarker"
	"github.com/enesy/bookmarker/bloom"
)

// Service turns shared text into saved bookmarks. Saves always succeed as
// long as a URL is present and not already bookmarked: the extractor
// degrades to the raw URL rather than failing.
type Service struct {
	extractor bookmarker.ContentExtractor
	bookmarks bookmarker.BookmarkService
	folders   bookmarker.FolderService
	prefs     bookmarker.PreferenceService
	auth      bookmarker.AuthService
	sync      bookmarker.SyncService
	logger    *slog.Logger

	// seen is a fast-path duplicate guard. A hit is confirmed against the
	// store before rejecting, so false positives never block a save.
	seen     *bloom.Filter
	seedOnce sync.Once
}

// NewService creates a capture Service.
func NewService(
	extractor bookmarker.ContentExtractor,
	bookmarks bookmarker.BookmarkService,
	folders bookmarker.FolderService,
	prefs bookmarker.PreferenceService,
	auth bookmarker.AuthService,
	syncService bookmarker.SyncService,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		extractor: extractor,
		bookmarks: bookmarks,
		folders:   folders,
		prefs:     prefs,
		auth:      auth,
		sync:      syncService,
		logger:    logger,
		seen:      bloom.NewFilter(10000, 0.01),
	}
}

// CaptureText extracts the first URL from shared text and saves it.
// Returns EINVALID when the text contains nothing URL-shaped.
func (s *Service) CaptureText(ctx context.Context, text string) (*bookmarker.Bookmark, error) {
	url, ok := bookmarker.ExtractURL(text)
	if !ok {
		return nil, bookmarker.Errorf(bookmarker.EINVALID, "no URL found in shared text")
	}
	return s.Capture(ctx, url)
}

// Capture extracts content for url and persists it as a new bookmark.
// Returns ECONFLICT when the URL is already bookmarked. The bookmark is
// mirrored to the cloud when signed in with auto-sync enabled; mirror
// failures are logged, never surfaced, so a flaky network cannot lose a
// local save.
func (s *Service) Capture(ctx context.Context, url string) (*bookmarker.Bookmark, error) {
	if dup, err := s.isDuplicate(ctx, url); err != nil {
		return nil, err
	} else if dup {
		return nil, bookmarker.Errorf(bookmarker.ECONFLICT, "bookmark already saved: %s", url)
	}

	result := s.extractor.Extract(ctx, url)

	folderID, err := s.ensureDefaultFolder(ctx)
	if err != nil {
		return nil, err
	}

	b := &bookmarker.Bookmark{
		URL:           url,
		Title:         result.Title,
		OriginalTitle: result.Title,
		Platform:      bookmarker.Classify(url),
		FolderID:      folderID,
		RawContent:    result.RawContent,
		Thumbnail:     result.ImageURL,
	}
	if err := s.bookmarks.CreateBookmark(ctx, b); err != nil {
		return nil, err
	}
	s.seen.Add(url)

	s.logger.Info("bookmark captured",
		"id", b.ID,
		"platform", b.Platform,
		"url", url,
	)

	s.mirror(ctx, b)
	return b, nil
}

// isDuplicate reports whether url is already bookmarked. The bloom filter
// is seeded from the store on first use; a negative answer is authoritative
// and skips the store lookup entirely.
func (s *Service) isDuplicate(ctx context.Context, url string) (bool, error) {
	var seedErr error
	s.seedOnce.Do(func() {
		existing, err := s.bookmarks.FindBookmarks(ctx, bookmarker.BookmarkFilter{})
		if err != nil {
			seedErr = err
			return
		}
		for _, b := range existing {
			s.seen.Add(b.URL)
		}
		s.logger.Debug("duplicate guard seeded", "urls", s.seen.EstimatedCount())
	})
	if seedErr != nil {
		return false, seedErr
	}

	if !s.seen.Test(url) {
		return false, nil
	}

	matches, err := s.bookmarks.FindBookmarks(ctx, bookmarker.BookmarkFilter{URL: &url, Limit: 1})
	if err != nil {
		return false, err
	}
	return len(matches) > 0, nil
}

// ensureDefaultFolder returns the folder new captures land in: the first
// existing folder, created as "All" when the store has none yet.
func (s *Service) ensureDefaultFolder(ctx context.Context) (*int64, error) {
	folders, err := s.folders.FindFolders(ctx)
	if err != nil {
		return nil, err
	}
	if len(folders) > 0 {
		return &folders[0].ID, nil
	}

	folder := &bookmarker.Folder{Name: bookmarker.DefaultFolderName}
	if err := s.folders.CreateFolder(ctx, folder); err != nil {
		return nil, err
	}
	return &folder.ID, nil
}

// mirror pushes the new bookmark to the cloud when signed in and auto-sync
// is on. Failures only log.
func (s *Service) mirror(ctx context.Context, b *bookmarker.Bookmark) {
	uid, err := s.auth.CurrentUserID(ctx)
	if err != nil {
		s.logger.Warn("could not resolve user for mirror", "error", err)
		return
	}
	if uid == "" {
		return
	}

	autoSync, err := s.prefs.GetPreference(ctx, bookmarker.PrefAutoSync, "true")
	if err != nil {
		s.logger.Warn("could not read auto-sync preference", "error", err)
		return
	}
	if autoSync != "true" {
		return
	}

	if err := s.sync.MirrorBookmark(ctx, uid, b); err != nil {
		s.logger.Warn("mirror failed", "id", b.ID, "error", err)
	}
}
