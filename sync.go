package bookmarker

import "context"

// SyncStatus reports the state of the sync reconciler. A manual sync moves
// Idle → Syncing → Idle; the status always returns to Idle regardless of
// success or failure.
type SyncStatus string

// Sync states.
const (
	SyncIdle    SyncStatus = "idle"
	SyncSyncing SyncStatus = "syncing"
)

// CloudStore is a per-user hierarchical document store with three
// collections (bookmarks, notes, folders). Documents are keyed by the
// string form of the record's local surrogate id. Writes are idempotent
// full-document upserts, never partial merges; deleting a document that
// does not exist is not an error.
type CloudStore interface {
	PutBookmark(ctx context.Context, uid string, b *Bookmark) error
	DeleteBookmark(ctx context.Context, uid string, id int64) error
	ListBookmarks(ctx context.Context, uid string) ([]*Bookmark, error)

	PutNote(ctx context.Context, uid string, note *Note) error
	DeleteNote(ctx context.Context, uid string, id int64) error
	ListNotes(ctx context.Context, uid string) ([]*Note, error)

	PutFolder(ctx context.Context, uid string, folder *Folder) error
	DeleteFolder(ctx context.Context, uid string, id int64) error
	ListFolders(ctx context.Context, uid string) ([]*Folder, error)
}

// SyncService reconciles local records with the cloud store for a given
// user identity. An empty uid makes every method a no-op: sync is entirely
// disabled when signed out.
//
// All methods return explicit errors; the original behavior of silently
// absorbing sync failures belongs to the calling layer, which logs and
// moves on, so failure information stays structurally observable.
type SyncService interface {
	// Mirror-on-write calls, issued after each local mutation when
	// auto-sync is enabled. Each serializes the full current field set
	// of the record, keyed by its local id.
	MirrorBookmark(ctx context.Context, uid string, b *Bookmark) error
	MirrorNote(ctx context.Context, uid string, note *Note) error
	MirrorFolder(ctx context.Context, uid string, folder *Folder) error

	DeleteRemoteBookmark(ctx context.Context, uid string, id int64) error
	DeleteRemoteNote(ctx context.Context, uid string, id int64) error
	DeleteRemoteFolder(ctx context.Context, uid string, id int64) error

	// PullFromCloud pulls all folders, then bookmarks, then notes into
	// the local store with replace-on-conflict semantics (last write
	// wins). Folders land first for referential sanity; no foreign keys
	// are enforced.
	PullFromCloud(ctx context.Context, uid string) error

	// PerformFullRestore is a pull-only reconciliation.
	PerformFullRestore(ctx context.Context, uid string) error

	// SyncNow runs a full reconciliation: pull first, then push every
	// local record of all three types back to the cloud via the mirror
	// calls. Pull completes before push begins.
	SyncNow(ctx context.Context, uid string) error

	// Status returns the current sync state.
	Status() SyncStatus
}
