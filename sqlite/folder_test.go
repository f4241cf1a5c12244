package sqlite_test

import (
	"context"
	"testing"

	"github.com/enesy/bookmarker"
	"github.com/enesy/bookmarker/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFolderService_CreateFolder(t *testing.T) {
	t.Parallel()

	t.Run("creates folder with generated ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewFolderService(db)

		folder := &bookmarker.Folder{Name: "Reading"}
		require.NoError(t, svc.CreateFolder(context.Background(), folder))
		assert.NotZero(t, folder.ID)
	})

	t.Run("returns error for empty name", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewFolderService(db)

		err := svc.CreateFolder(context.Background(), &bookmarker.Folder{})
		assert.Equal(t, bookmarker.EINVALID, bookmarker.ErrorCode(err))
	})
}

func TestFolderService_FindFolders(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := sqlite.NewFolderService(db)
	ctx := context.Background()

	for _, name := range []string{"All", "Tech", "Recipes"} {
		require.NoError(t, svc.CreateFolder(ctx, &bookmarker.Folder{Name: name}))
	}

	got, err := svc.FindFolders(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "All", got[0].Name)
	assert.Equal(t, "Recipes", got[2].Name)
}

func TestFolderService_DeleteFolder(t *testing.T) {
	t.Parallel()

	t.Run("unfolders bookmarks and notes", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()
		fsvc := sqlite.NewFolderService(db)
		bsvc := sqlite.NewBookmarkService(db)
		nsvc := sqlite.NewNoteService(db)

		folder := &bookmarker.Folder{Name: "Doomed"}
		require.NoError(t, fsvc.CreateFolder(ctx, folder))

		b := &bookmarker.Bookmark{URL: "https://example.com/o", Title: "Orphan", FolderID: &folder.ID}
		require.NoError(t, bsvc.CreateBookmark(ctx, b))
		note := &bookmarker.Note{Content: "orphan note", FolderID: &folder.ID}
		require.NoError(t, nsvc.CreateNote(ctx, note))

		require.NoError(t, fsvc.DeleteFolder(ctx, folder.ID))

		gotB, err := bsvc.FindBookmarkByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Nil(t, gotB.FolderID, "bookmark should survive without a folder")

		gotN, err := nsvc.FindNoteByID(ctx, note.ID)
		require.NoError(t, err)
		assert.Nil(t, gotN.FolderID, "note should survive without a folder")
	})

	t.Run("returns ENOTFOUND for missing folder", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewFolderService(db)

		err := svc.DeleteFolder(context.Background(), 999)
		assert.Equal(t, bookmarker.ENOTFOUND, bookmarker.ErrorCode(err))
	})
}

func TestFolderService_ReplaceFolders(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := sqlite.NewFolderService(db)
	ctx := context.Background()

	local := &bookmarker.Folder{Name: "Local"}
	require.NoError(t, svc.CreateFolder(ctx, local))

	incoming := []*bookmarker.Folder{
		{ID: local.ID, Name: "Renamed Remotely"},
		{ID: local.ID + 10, Name: "Cloud Only"},
	}
	require.NoError(t, svc.ReplaceFolders(ctx, incoming))

	got, err := svc.FindFolders(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Renamed Remotely", got[0].Name)
	assert.Equal(t, "Cloud Only", got[1].Name)
}
