package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/enesy/bookmarker"
	"github.com/enesy/bookmarker/capture"
	"github.com/enesy/bookmarker/fs"
	"github.com/enesy/bookmarker/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	DB        *sqlite.DB
	Bookmarks bookmarker.BookmarkService
	Notes     bookmarker.NoteService
	Folders   bookmarker.FolderService
	Prefs     bookmarker.PreferenceService
	Auth      bookmarker.AuthService

	Capture    *capture.Service
	Previews   bookmarker.PreviewService
	Reader     bookmarker.ReaderService
	Converter  bookmarker.Converter
	Summarizer bookmarker.Summarizer
	Sync       bookmarker.SyncService
	Exporter   *fs.Exporter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Add       AddCmd       `cmd:"" help:"Save a URL, or shared text containing one"`
	List      ListCmd      `cmd:"" help:"List saved bookmarks"`
	Delete    DeleteCmd    `cmd:"" help:"Delete a bookmark"`
	Note      NoteCmd      `cmd:"" help:"Add a note, optionally linked to a bookmark"`
	Notes     NotesCmd     `cmd:"" help:"List notes"`
	Folder    FolderCmd    `cmd:"" help:"Manage folders"`
	Preview   PreviewCmd   `cmd:"" help:"Show link preview metadata for a URL"`
	Read      ReadCmd      `cmd:"" help:"Extract clean reading content from a URL"`
	Summarize SummarizeCmd `cmd:"" help:"Summarize a bookmark's content with Gemini"`
	Sync      SyncCmd      `cmd:"" help:"Run a full sync: pull from the cloud, then push everything"`
	Restore   RestoreCmd   `cmd:"" help:"Pull-only restore from the cloud"`
	Export    ExportCmd    `cmd:"" help:"Export bookmarks and notes to files"`
	Pref      PrefCmd      `cmd:"" help:"Get or set preferences"`

	Browser bool `help:"Fetch pages with a headless browser instead of plain HTTP"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Text []string `arg:"" help:"URL or shared text containing one"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Folder int64 `help:"Only bookmarks in this folder id"`
	Limit  int   `short:"n" help:"Maximum number of bookmarks to show"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID int64 `arg:"" help:"Bookmark id"`
}

// NoteCmd is the "note" subcommand.
type NoteCmd struct {
	Text     []string `arg:"" help:"Note text"`
	Bookmark int64    `short:"b" help:"Link the note to this bookmark id"`
	Tags     string   `help:"Comma-separated tags"`
}

// NotesCmd is the "notes" subcommand.
type NotesCmd struct {
	Bookmark int64 `short:"b" help:"Only notes linked to this bookmark id"`
}

// FolderCmd groups folder management subcommands.
type FolderCmd struct {
	Add    FolderAddCmd    `cmd:"" help:"Create a folder"`
	List   FolderListCmd   `cmd:"" default:"1" help:"List folders"`
	Delete FolderDeleteCmd `cmd:"" help:"Delete a folder (bookmarks and notes are kept)"`
}

// FolderAddCmd is the "folder add" subcommand.
type FolderAddCmd struct {
	Name string `arg:"" help:"Folder name"`
}

// FolderListCmd is the "folder list" subcommand.
type FolderListCmd struct{}

// FolderDeleteCmd is the "folder delete" subcommand.
type FolderDeleteCmd struct {
	ID int64 `arg:"" help:"Folder id"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	URL string `arg:"" help:"URL to preview"`
}

// ReadCmd is the "read" subcommand.
type ReadCmd struct {
	URL         string `arg:"" help:"URL to read"`
	Markdown    bool   `short:"m" help:"Render the article as Markdown instead of plain text"`
	Readability bool   `help:"Extract with the trafilatura engine instead of the paragraph-density heuristic (implies --markdown)"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	ID int64 `arg:"" help:"Bookmark id"`
}

// SyncCmd is the "sync" subcommand.
type SyncCmd struct{}

// RestoreCmd is the "restore" subcommand.
type RestoreCmd struct{}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir  string `arg:"" help:"Output directory"`
	OPML bool   `help:"Also write an OPML outline of folders and bookmarks"`
}

// PrefCmd groups preference subcommands.
type PrefCmd struct {
	Get PrefGetCmd `cmd:"" help:"Print a preference value"`
	Set PrefSetCmd `cmd:"" help:"Set a preference value"`
}

// PrefGetCmd is the "pref get" subcommand.
type PrefGetCmd struct {
	Key string `arg:"" help:"Preference key"`
}

// PrefSetCmd is the "pref set" subcommand.
type PrefSetCmd struct {
	Key   string `arg:"" help:"Preference key"`
	Value string `arg:"" help:"Preference value"`
}
