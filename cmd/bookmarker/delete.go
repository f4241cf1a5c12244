package main

import (
	"fmt"

	"github.com/enesy/bookmarker"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Bookmarks.DeleteBookmark(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookmarker.ErrorMessage(err))
		return err
	}

	// Local delete is the source of truth; a failed remote delete only
	// logs, the next full sync converges the cloud copy.
	if uid := currentUser(deps); uid != "" {
		if err := deps.Sync.DeleteRemoteBookmark(deps.Ctx, uid, c.ID); err != nil {
			deps.Logger.Warn("remote delete failed", "id", c.ID, "error", err)
		}
	}

	fmt.Fprintf(deps.Stdout, "Deleted bookmark %d\n", c.ID)
	return nil
}

// currentUser resolves the signed-in user id, treating lookup failures as
// signed out.
func currentUser(deps *Dependencies) string {
	uid, err := deps.Auth.CurrentUserID(deps.Ctx)
	if err != nil {
		deps.Logger.Warn("could not resolve user", "error", err)
		return ""
	}
	return uid
}
