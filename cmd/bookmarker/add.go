package main

import (
	"fmt"
	"strings"

	"github.com/enesy/bookmarker"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	b, err := deps.Capture.CaptureText(deps.Ctx, strings.Join(c.Text, " "))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookmarker.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved [%d] %s (%s)\n", b.ID, b.Title, b.Platform)
	return nil
}
