package fs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enesy/bookmarker"
	"github.com/enesy/bookmarker/fs"
)

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"Why Ferment Vegetables?", "why-ferment-vegetables"},
		{"  spaced  out  ", "spaced-out"},
		{"МОЛОКО", ""},
		{"a/b\\c", "a-b-c"},
		{"Go 1.22 Released", "go-1-22-released"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fs.Slug(tt.title))
		})
	}
}

func TestFormatBookmark(t *testing.T) {
	t.Parallel()

	bm := &bookmarker.Bookmark{
		URL:      "https://example.com/a",
		Title:    "An Article",
		Platform: "Web",
		Tags:     "go,reading",
	}

	got := fs.FormatBookmark(bm, "# An Article\n\nBody.")

	assert.Contains(t, got, "url: https://example.com/a\n")
	assert.Contains(t, got, "title: An Article\n")
	assert.Contains(t, got, "platform: Web\n")
	assert.Contains(t, got, "tags: go,reading\n")
	assert.Contains(t, got, "\n---\n\n# An Article")
}

func TestFormatNote(t *testing.T) {
	t.Parallel()

	bookmarkID := int64(7)
	n := &bookmarker.Note{
		BookmarkID: &bookmarkID,
		Content:    "worth rereading",
		CreatedAt:  1700000000000, // 2023-11-14 UTC
	}

	got := fs.FormatNote(n)

	assert.Contains(t, got, "created: 2023-11-14\n")
	assert.Contains(t, got, "bookmark: 7\n")
	assert.Contains(t, got, "worth rereading")
}

func TestExporter_ExportBookmark(t *testing.T) {
	t.Parallel()

	t.Run("writes slugged markdown file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		e := fs.NewExporter(dir)

		bm := &bookmarker.Bookmark{ID: 1, URL: "https://example.com", Title: "Hello World"}
		require.NoError(t, e.ExportBookmark(bm, "body"))

		data, err := os.ReadFile(filepath.Join(dir, "bookmarks", "hello-world.md"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "url: https://example.com")
	})

	t.Run("falls back to id when title has no usable characters", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		e := fs.NewExporter(dir)

		bm := &bookmarker.Bookmark{ID: 42, URL: "https://example.com", Title: "???"}
		require.NoError(t, e.ExportBookmark(bm, ""))

		_, err := os.Stat(filepath.Join(dir, "bookmarks", "42.md"))
		assert.NoError(t, err)
	})
}

func TestExporter_ExportNote(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	e := fs.NewExporter(dir)

	n := &bookmarker.Note{ID: 5, Content: "a thought", CreatedAt: 1700000000000}
	require.NoError(t, e.ExportNote(n))

	data, err := os.ReadFile(filepath.Join(dir, "notes", "5.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "a thought")
}

func TestExporter_ExportOPML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	e := fs.NewExporter(dir)

	folderID := int64(1)
	folders := []*bookmarker.Folder{{ID: folderID, Name: "Tech"}}
	bookmarks := []*bookmarker.Bookmark{
		{ID: 1, URL: "https://example.com/in", Title: "In Folder", FolderID: &folderID},
		{ID: 2, URL: "https://example.com/loose", Title: "Loose"},
	}

	require.NoError(t, e.ExportOPML(folders, bookmarks))

	data, err := os.ReadFile(filepath.Join(dir, "bookmarks.opml"))
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, `<opml version="2.0">`)
	assert.Contains(t, out, `text="Tech"`)
	assert.Contains(t, out, `url="https://example.com/in"`)
	assert.Contains(t, out, `url="https://example.com/loose"`)

	// the foldered bookmark nests under its folder outline
	techIdx := strings.Index(out, `text="Tech"`)
	inIdx := strings.Index(out, `text="In Folder"`)
	assert.Greater(t, inIdx, techIdx)
}
