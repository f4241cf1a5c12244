package capture_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enesy/bookmarker"
	"github.com/enesy/bookmarker/capture"
	"github.com/enesy/bookmarker/mock"
	"github.com/enesy/bookmarker/sqlite"
)

type fixture struct {
	bookmarks *sqlite.BookmarkService
	folders   *sqlite.FolderService
	extractor *mock.ContentExtractor
	auth      *mock.AuthService
	prefs     *mock.PreferenceService
	sync      *mock.SyncService
	svc       *capture.Service
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })

	f := &fixture{
		bookmarks: sqlite.NewBookmarkService(db),
		folders:   sqlite.NewFolderService(db),
		extractor: &mock.ContentExtractor{
			ExtractFn: func(_ context.Context, url string) *bookmarker.ExtractedResult {
				return &bookmarker.ExtractedResult{Title: "Extracted Title", RawContent: "extracted body"}
			},
		},
		auth: &mock.AuthService{
			CurrentUserIDFn: func(context.Context) (string, error) { return "", nil },
		},
		prefs: &mock.PreferenceService{
			GetPreferenceFn: func(_ context.Context, _, def string) (string, error) { return def, nil },
		},
		sync: &mock.SyncService{},
	}
	f.svc = capture.NewService(f.extractor, f.bookmarks, f.folders, f.prefs, f.auth, f.sync, nil)
	return f
}

func TestService_Capture(t *testing.T) {
	t.Parallel()

	t.Run("saves bookmark with extracted content", func(t *testing.T) {
		t.Parallel()

		f := setup(t)
		ctx := context.Background()

		b, err := f.svc.Capture(ctx, "https://example.com/article")
		require.NoError(t, err)

		assert.NotZero(t, b.ID)
		assert.Equal(t, "Extracted Title", b.Title)
		assert.Equal(t, "Extracted Title", b.OriginalTitle)
		assert.Equal(t, "extracted body", b.RawContent)
		assert.Equal(t, bookmarker.PlatformGeneric, b.Platform)
	})

	t.Run("classifies platform from URL", func(t *testing.T) {
		t.Parallel()

		f := setup(t)

		b, err := f.svc.Capture(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
		require.NoError(t, err)
		assert.Equal(t, bookmarker.PlatformYouTube, b.Platform)
	})

	t.Run("creates default folder on first capture", func(t *testing.T) {
		t.Parallel()

		f := setup(t)
		ctx := context.Background()

		b, err := f.svc.Capture(ctx, "https://example.com/first")
		require.NoError(t, err)

		folders, err := f.folders.FindFolders(ctx)
		require.NoError(t, err)
		require.Len(t, folders, 1)
		assert.Equal(t, bookmarker.DefaultFolderName, folders[0].Name)
		require.NotNil(t, b.FolderID)
		assert.Equal(t, folders[0].ID, *b.FolderID)
	})

	t.Run("reuses existing folder", func(t *testing.T) {
		t.Parallel()

		f := setup(t)
		ctx := context.Background()

		existing := &bookmarker.Folder{Name: "Mine"}
		require.NoError(t, f.folders.CreateFolder(ctx, existing))

		b, err := f.svc.Capture(ctx, "https://example.com/second")
		require.NoError(t, err)
		require.NotNil(t, b.FolderID)
		assert.Equal(t, existing.ID, *b.FolderID)

		folders, err := f.folders.FindFolders(ctx)
		require.NoError(t, err)
		assert.Len(t, folders, 1)
	})

	t.Run("rejects duplicate URL with ECONFLICT", func(t *testing.T) {
		t.Parallel()

		f := setup(t)
		ctx := context.Background()

		_, err := f.svc.Capture(ctx, "https://example.com/dup")
		require.NoError(t, err)

		_, err = f.svc.Capture(ctx, "https://example.com/dup")
		assert.Equal(t, bookmarker.ECONFLICT, bookmarker.ErrorCode(err))
	})

	t.Run("detects duplicates saved before service start", func(t *testing.T) {
		t.Parallel()

		f := setup(t)
		ctx := context.Background()

		pre := &bookmarker.Bookmark{URL: "https://example.com/pre", Title: "Pre-existing"}
		require.NoError(t, f.bookmarks.CreateBookmark(ctx, pre))

		_, err := f.svc.Capture(ctx, "https://example.com/pre")
		assert.Equal(t, bookmarker.ECONFLICT, bookmarker.ErrorCode(err))
	})
}

func TestService_CaptureText(t *testing.T) {
	t.Parallel()

	t.Run("extracts URL from surrounding prose", func(t *testing.T) {
		t.Parallel()

		f := setup(t)

		b, err := f.svc.CaptureText(context.Background(), "check this out: https://example.com/shared today")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/shared", b.URL)
	})

	t.Run("returns EINVALID when no URL present", func(t *testing.T) {
		t.Parallel()

		f := setup(t)

		_, err := f.svc.CaptureText(context.Background(), "just some words")
		assert.Equal(t, bookmarker.EINVALID, bookmarker.ErrorCode(err))
	})
}

func TestService_Mirror(t *testing.T) {
	t.Parallel()

	t.Run("mirrors when signed in with auto-sync on", func(t *testing.T) {
		t.Parallel()

		f := setup(t)
		f.auth.CurrentUserIDFn = func(context.Context) (string, error) { return "user-1", nil }

		var mirrored *bookmarker.Bookmark
		f.sync.MirrorBookmarkFn = func(_ context.Context, uid string, b *bookmarker.Bookmark) error {
			assert.Equal(t, "user-1", uid)
			mirrored = b
			return nil
		}

		b, err := f.svc.Capture(context.Background(), "https://example.com/mirrored")
		require.NoError(t, err)
		require.NotNil(t, mirrored)
		assert.Equal(t, b.ID, mirrored.ID)
	})

	t.Run("skips mirror when signed out", func(t *testing.T) {
		t.Parallel()

		f := setup(t)
		f.sync.MirrorBookmarkFn = func(context.Context, string, *bookmarker.Bookmark) error {
			t.Fatal("mirror must not be called while signed out")
			return nil
		}

		_, err := f.svc.Capture(context.Background(), "https://example.com/offline")
		require.NoError(t, err)
	})

	t.Run("skips mirror when auto-sync disabled", func(t *testing.T) {
		t.Parallel()

		f := setup(t)
		f.auth.CurrentUserIDFn = func(context.Context) (string, error) { return "user-1", nil }
		f.prefs.GetPreferenceFn = func(_ context.Context, key, _ string) (string, error) {
			return "false", nil
		}
		f.sync.MirrorBookmarkFn = func(context.Context, string, *bookmarker.Bookmark) error {
			t.Fatal("mirror must not be called with auto-sync off")
			return nil
		}

		_, err := f.svc.Capture(context.Background(), "https://example.com/nosync")
		require.NoError(t, err)
	})

	t.Run("mirror failure does not fail the save", func(t *testing.T) {
		t.Parallel()

		f := setup(t)
		f.auth.CurrentUserIDFn = func(context.Context) (string, error) { return "user-1", nil }
		f.sync.MirrorBookmarkFn = func(context.Context, string, *bookmarker.Bookmark) error {
			return bookmarker.Errorf(bookmarker.EUNAVAILABLE, "cloud down")
		}

		b, err := f.svc.Capture(context.Background(), "https://example.com/flaky")
		require.NoError(t, err)
		assert.NotZero(t, b.ID)
	})
}
