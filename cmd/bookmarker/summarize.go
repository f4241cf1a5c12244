package main

import (
	"fmt"

	"github.com/enesy/bookmarker"
)

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	b, err := deps.Bookmarks.FindBookmarkByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookmarker.ErrorMessage(err))
		return err
	}

	summary, err := deps.Summarizer.Summarize(deps.Ctx, b)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookmarker.ErrorMessage(err))
		return err
	}

	note := &bookmarker.Note{
		BookmarkID: &b.ID,
		Content:    summary,
		Tags:       "Summary",
	}
	if err := deps.Notes.CreateNote(deps.Ctx, note); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookmarker.ErrorMessage(err))
		return err
	}

	b.IsSummarized = true
	if err := deps.Bookmarks.UpdateBookmark(deps.Ctx, b); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookmarker.ErrorMessage(err))
		return err
	}

	if uid := currentUser(deps); uid != "" && autoSyncEnabled(deps) {
		if err := deps.Sync.MirrorBookmark(deps.Ctx, uid, b); err != nil {
			deps.Logger.Warn("mirror failed", "bookmark", b.ID, "error", err)
		}
		if err := deps.Sync.MirrorNote(deps.Ctx, uid, note); err != nil {
			deps.Logger.Warn("mirror failed", "note", note.ID, "error", err)
		}
	}

	fmt.Fprintln(deps.Stdout, summary)
	return nil
}
