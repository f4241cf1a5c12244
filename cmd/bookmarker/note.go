package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/enesy/bookmarker"
)

// Run executes the note command.
func (c *NoteCmd) Run(deps *Dependencies) error {
	note := &bookmarker.Note{
		Content: strings.Join(c.Text, " "),
		Tags:    c.Tags,
	}
	if c.Bookmark != 0 {
		// fail early on a dangling link
		if _, err := deps.Bookmarks.FindBookmarkByID(deps.Ctx, c.Bookmark); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", bookmarker.ErrorMessage(err))
			return err
		}
		note.BookmarkID = &c.Bookmark
	}

	if err := deps.Notes.CreateNote(deps.Ctx, note); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookmarker.ErrorMessage(err))
		return err
	}

	if uid := currentUser(deps); uid != "" && autoSyncEnabled(deps) {
		if err := deps.Sync.MirrorNote(deps.Ctx, uid, note); err != nil {
			deps.Logger.Warn("mirror failed", "note", note.ID, "error", err)
		}
	}

	fmt.Fprintf(deps.Stdout, "Added note %d\n", note.ID)
	return nil
}

// Run executes the notes command.
func (c *NotesCmd) Run(deps *Dependencies) error {
	filter := bookmarker.NoteFilter{}
	if c.Bookmark != 0 {
		filter.BookmarkID = &c.Bookmark
	}

	notes, err := deps.Notes.FindNotes(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookmarker.ErrorMessage(err))
		return err
	}

	if len(notes) == 0 {
		fmt.Fprintln(deps.Stdout, "No notes yet. Use 'bookmarker note' to add one.")
		return nil
	}

	for _, n := range notes {
		created := time.UnixMilli(n.CreatedAt).Format("2006-01-02")
		if n.BookmarkID != nil {
			fmt.Fprintf(deps.Stdout, "[%d] %s (bookmark %d)\n    %s\n", n.ID, created, *n.BookmarkID, n.Content)
		} else {
			fmt.Fprintf(deps.Stdout, "[%d] %s\n    %s\n", n.ID, created, n.Content)
		}
	}

	return nil
}

// autoSyncEnabled reads the auto-sync preference, defaulting to on.
func autoSyncEnabled(deps *Dependencies) bool {
	v, err := deps.Prefs.GetPreference(deps.Ctx, bookmarker.PrefAutoSync, "true")
	if err != nil {
		deps.Logger.Warn("could not read auto-sync preference", "error", err)
		return false
	}
	return v == "true"
}
