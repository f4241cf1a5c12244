package main

import "fmt"

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	p := deps.Previews.Preview(deps.Ctx, c.URL)

	fmt.Fprintf(deps.Stdout, "Title: %s\n", p.Title)
	if p.Description != nil {
		fmt.Fprintf(deps.Stdout, "Description: %s\n", *p.Description)
	}
	if p.SiteName != nil {
		fmt.Fprintf(deps.Stdout, "Site: %s\n", *p.SiteName)
	}
	if p.ImageURL != nil {
		fmt.Fprintf(deps.Stdout, "Image: %s\n", *p.ImageURL)
	}
	return nil
}
