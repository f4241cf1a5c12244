package main

import (
	"fmt"

	"github.com/enesy/bookmarker"
	"github.com/enesy/bookmarker/extract"
)

// Run executes the read command.
func (c *ReadCmd) Run(deps *Dependencies) error {
	if c.Markdown || c.Readability {
		reader, ok := deps.Reader.(*extract.Reader)
		if !ok {
			return bookmarker.Errorf(bookmarker.EINTERNAL, "markdown rendering unavailable")
		}
		contentHTML, err := reader.ArticleHTML(deps.Ctx, c.URL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", bookmarker.ErrorMessage(err))
			return err
		}
		md, err := deps.Converter.Convert(contentHTML)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", bookmarker.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, md)
		return nil
	}

	content, err := deps.Reader.CleanContent(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bookmarker.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, content)
	return nil
}
