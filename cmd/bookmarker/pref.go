package main

import (
	"fmt"

	"github.com/enesy/bookmarker"
)

// Run executes the pref get command.
func (c *PrefGetCmd) Run(deps *Dependencies) error {
	value, err := deps.Prefs.GetPreference(deps.Ctx, c.Key, "")
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookmarker.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, value)
	return nil
}

// Run executes the pref set command.
func (c *PrefSetCmd) Run(deps *Dependencies) error {
	if err := deps.Prefs.SetPreference(deps.Ctx, c.Key, c.Value); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookmarker.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s = %s\n", c.Key, c.Value)
	return nil
}
