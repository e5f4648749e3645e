package main

import "fmt"

// Run executes the markdown command.
func (c *MarkdownCmd) Run(deps *Dependencies) error {
	markdown, err := normalize(deps, c.File, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, markdown)
	return nil
}
