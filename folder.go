package bookmarker

import "context"

// DefaultFolderName is the name of the synthetic default bucket created on
// first capture when no folder exists yet.
const DefaultFolderName = "All"

// Folder represents a named bucket for bookmarks and notes.
type Folder struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Validate returns an error if the folder contains invalid fields.
func (f *Folder) Validate() error {
	if f.Name == "" {
		return Errorf(EINVALID, "folder name required")
	}
	return nil
}

// FolderService represents a service for managing folders.
//
// Deleting a folder does not cascade to its bookmarks and notes; callers
// must reassign their FolderID (to nil) before or as part of deletion.
type FolderService interface {
	// CreateFolder creates a new folder. The store assigns the ID.
	CreateFolder(ctx context.Context, folder *Folder) error

	// FindFolders retrieves all folders, ordered by ID.
	FindFolders(ctx context.Context) ([]*Folder, error)

	// DeleteFolder permanently removes a folder and unfolders any
	// bookmarks and notes that referenced it.
	// Returns ENOTFOUND if the folder does not exist.
	DeleteFolder(ctx context.Context, id int64) error

	// ReplaceFolders upserts records pulled from the cloud, keeping
	// their ids (last write wins).
	ReplaceFolders(ctx context.Context, folders []*Folder) error
}
