package main

import (
	"fmt"

	"github.com/enesy/bookmarker"
)

// Run executes the folder add command.
func (c *FolderAddCmd) Run(deps *Dependencies) error {
	folder := &bookmarker.Folder{Name: c.Name}
	if err := deps.Folders.CreateFolder(deps.Ctx, folder); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookmarker.ErrorMessage(err))
		return err
	}

	if uid := currentUser(deps); uid != "" && autoSyncEnabled(deps) {
		if err := deps.Sync.MirrorFolder(deps.Ctx, uid, folder); err != nil {
			deps.Logger.Warn("mirror failed", "folder", folder.ID, "error", err)
		}
	}

	fmt.Fprintf(deps.Stdout, "Created folder %d %q\n", folder.ID, folder.Name)
	return nil
}

// Run executes the folder list command.
func (c *FolderListCmd) Run(deps *Dependencies) error {
	folders, err := deps.Folders.FindFolders(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookmarker.ErrorMessage(err))
		return err
	}

	if len(folders) == 0 {
		fmt.Fprintln(deps.Stdout, "No folders yet.")
		return nil
	}

	for _, f := range folders {
		fmt.Fprintf(deps.Stdout, "[%d] %s\n", f.ID, f.Name)
	}

	return nil
}

// Run executes the folder delete command.
func (c *FolderDeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Folders.DeleteFolder(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookmarker.ErrorMessage(err))
		return err
	}

	if uid := currentUser(deps); uid != "" {
		if err := deps.Sync.DeleteRemoteFolder(deps.Ctx, uid, c.ID); err != nil {
			deps.Logger.Warn("remote delete failed", "folder", c.ID, "error", err)
		}
	}

	fmt.Fprintf(deps.Stdout, "Deleted folder %d (its bookmarks and notes were kept)\n", c.ID)
	return nil
}
