package main

import "fmt"

// Run executes the tokens command.
func (c *TokensCmd) Run(deps *Dependencies) error {
	markdown, err := normalize(deps, c.File, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	n, err := deps.TokenCounter.CountTokens(deps.Ctx, markdown)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%d tokens (%d bytes of markdown)\n", n, len(markdown))
	return nil
}
