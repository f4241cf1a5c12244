package main

import (
	"fmt"

	"github.com/enesy/bookmarker"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	bookmarks, err := deps.Bookmarks.FindBookmarks(deps.Ctx, bookmarker.BookmarkFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookmarker.ErrorMessage(err))
		return err
	}

	for _, b := range bookmarks {
		// raw content is stored as extracted text; export it verbatim
		if err := deps.Exporter.ExportBookmark(b, b.RawContent); err != nil {
			fmt.Fprintf(deps.Stderr, "error exporting bookmark %d: %v\n", b.ID, err)
			return err
		}
	}

	notes, err := deps.Notes.FindNotes(deps.Ctx, bookmarker.NoteFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookmarker.ErrorMessage(err))
		return err
	}

	for _, n := range notes {
		if err := deps.Exporter.ExportNote(n); err != nil {
			fmt.Fprintf(deps.Stderr, "error exporting note %d: %v\n", n.ID, err)
			return err
		}
	}

	if c.OPML {
		folders, err := deps.Folders.FindFolders(deps.Ctx)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", bookmarker.ErrorMessage(err))
			return err
		}
		if err := deps.Exporter.ExportOPML(folders, bookmarks); err != nil {
			fmt.Fprintf(deps.Stderr, "error writing OPML: %v\n", err)
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Exported %d bookmarks and %d notes to %s\n",
		len(bookmarks), len(notes), c.Dir)
	return nil
}
