package main

import (
	"context"
	"io"
	"os"

	"github.com/fwojciec/recipeimport"
)

// readInput returns the HTML named by file or url, reading stdin when
// neither is given or file is "-".
func readInput(ctx context.Context, deps *Dependencies, file, url string) (string, error) {
	switch {
	case url != "" && file != "":
		return "", recipeimport.Errorf(recipeimport.EINVALID, "give either a file or --url, not both")
	case url != "":
		return deps.Fetcher.Fetch(ctx, url)
	case file == "" || file == "-":
		b, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return "", recipeimport.Errorf(recipeimport.EINVALID, "cannot read %s: %v", file, err)
	}
	return string(b), nil
}

// normalize reads the input and converts it to markdown.
func normalize(deps *Dependencies, file, url string) (string, error) {
	html, err := readInput(deps.Ctx, deps, file, url)
	if err != nil {
		return "", err
	}
	return deps.NewNormalizer(url).Normalize(html), nil
}
