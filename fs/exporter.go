// Package fs exports bookmarks and notes to files: markdown documents with
// YAML frontmatter, plus an OPML outline of the folder structure.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/enesy/bookmarker"
)

// Slug converts a title to a filesystem-safe file name. Falls back to the
// bookmark id when the title yields nothing usable.
func Slug(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// FormatBookmark formats a bookmark as markdown with YAML frontmatter. The
// body is the supplied markdown rendering of the extracted content.
func FormatBookmark(bm *bookmarker.Bookmark, body string) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("url: ")
	b.WriteString(bm.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(bm.Title)
	b.WriteString("\nplatform: ")
	b.WriteString(string(bm.Platform))
	if bm.Tags != "" {
		b.WriteString("\ntags: ")
		b.WriteString(bm.Tags)
	}
	b.WriteString("\n---\n\n")
	b.WriteString(body)
	return b.String()
}

// FormatNote formats a note as markdown with YAML frontmatter.
func FormatNote(n *bookmarker.Note) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("created: ")
	b.WriteString(time.UnixMilli(n.CreatedAt).UTC().Format("2006-01-02"))
	if n.BookmarkID != nil {
		b.WriteString("\nbookmark: ")
		b.WriteString(strconv.FormatInt(*n.BookmarkID, 10))
	}
	if n.Tags != "" {
		b.WriteString("\ntags: ")
		b.WriteString(n.Tags)
	}
	b.WriteString("\n---\n\n")
	b.WriteString(n.Content)
	return b.String()
}

// Exporter writes bookmarks and notes to a directory tree.
type Exporter struct {
	baseDir string
}

// NewExporter creates an Exporter rooted at baseDir.
func NewExporter(baseDir string) *Exporter {
	return &Exporter{baseDir: baseDir}
}

// ExportBookmark writes one bookmark to bookmarks/<slug>.md.
func (e *Exporter) ExportBookmark(bm *bookmarker.Bookmark, body string) error {
	name := Slug(bm.Title)
	if name == "" {
		name = strconv.FormatInt(bm.ID, 10)
	}
	return e.write(filepath.Join("bookmarks", name+".md"), FormatBookmark(bm, body))
}

// ExportNote writes one note to notes/<id>.md.
func (e *Exporter) ExportNote(n *bookmarker.Note) error {
	return e.write(filepath.Join("notes", strconv.FormatInt(n.ID, 10)+".md"), FormatNote(n))
}

// ExportOPML writes an OPML outline of folders and their bookmarks to
// bookmarks.opml. Unfoldered bookmarks land at the top level.
func (e *Exporter) ExportOPML(folders []*bookmarker.Folder, bookmarks []*bookmarker.Bookmark) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	opml := doc.CreateElement("opml")
	opml.CreateAttr("version", "2.0")

	head := opml.CreateElement("head")
	head.CreateElement("title").SetText("Bookmarks")

	body := opml.CreateElement("body")

	outlines := make(map[int64]*etree.Element, len(folders))
	for _, f := range folders {
		outline := body.CreateElement("outline")
		outline.CreateAttr("text", f.Name)
		outlines[f.ID] = outline
	}

	for _, bm := range bookmarks {
		parent := body
		if bm.FolderID != nil {
			if outline, ok := outlines[*bm.FolderID]; ok {
				parent = outline
			}
		}
		item := parent.CreateElement("outline")
		item.CreateAttr("text", bm.Title)
		item.CreateAttr("type", "link")
		item.CreateAttr("url", bm.URL)
	}

	doc.Indent(2)
	out, err := doc.WriteToString()
	if err != nil {
		return fmt.Errorf("failed to serialize OPML: %w", err)
	}
	return e.write("bookmarks.opml", out)
}

func (e *Exporter) write(relPath, content string) error {
	fullPath := filepath.Join(e.baseDir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(content), 0644)
}
