package main

import (
	"fmt"

	"github.com/enesy/bookmarker"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := bookmarker.BookmarkFilter{Limit: c.Limit}
	if c.Folder != 0 {
		filter.FolderID = &c.Folder
	}

	bookmarks, err := deps.Bookmarks.FindBookmarks(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookmarker.ErrorMessage(err))
		return err
	}

	if len(bookmarks) == 0 {
		fmt.Fprintln(deps.Stdout, "No bookmarks yet. Use 'bookmarker add' to save one.")
		return nil
	}

	for _, b := range bookmarks {
		fmt.Fprintf(deps.Stdout, "[%d] %-10s %s\n    %s\n", b.ID, b.Platform, b.Title, b.URL)
	}

	return nil
}
