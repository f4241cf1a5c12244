package main

import (
	"fmt"

	"github.com/enesy/bookmarker"
)

// Run executes the sync command.
func (c *SyncCmd) Run(deps *Dependencies) error {
	uid := currentUser(deps)
	if uid == "" {
		return bookmarker.Errorf(bookmarker.EINVALID,
			"not signed in. Set BOOKMARKER_USER to sync")
	}

	if err := deps.Sync.SyncNow(deps.Ctx, uid); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookmarker.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Sync complete")
	return nil
}

// Run executes the restore command.
func (c *RestoreCmd) Run(deps *Dependencies) error {
	uid := currentUser(deps)
	if uid == "" {
		return bookmarker.Errorf(bookmarker.EINVALID,
			"not signed in. Set BOOKMARKER_USER to restore")
	}

	if err := deps.Sync.PerformFullRestore(deps.Ctx, uid); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookmarker.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Restore complete")
	return nil
}
