package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/recipeimport"
	recslog "github.com/fwojciec/recipeimport/slog"
	"github.com/google/uuid"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	strategy, err := recipeimport.ParseStrategy(c.Strategy)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	if deps.Credential == "" {
		fmt.Fprintln(deps.Stderr, "error: no API key. Pass --api-key or set OPENAI_API_KEY (GEMINI_API_KEY for --provider gemini)")
		return recipeimport.Errorf(recipeimport.EINVALID, "API key not set")
	}

	// One ID covers the page fetch and every provider call of this import.
	ctx := recslog.WithImportID(deps.Ctx, uuid.NewString())

	html, err := readInput(ctx, deps, c.File, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	importer, err := deps.Importer(strategy, deps.NewNormalizer(c.URL))
	if err != nil {
		return err
	}

	recipe, ok, err := importer.Import(ctx, html, deps.Credential)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}
	if !ok {
		fmt.Fprintln(deps.Stderr, "No recipe found. Try --content none or a different strategy.")
		return recipeimport.Errorf(recipeimport.ENOTFOUND, "no recipe extracted")
	}

	if c.Format == "json" {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(recipe)
	}
	fmt.Fprint(deps.Stdout, recipeimport.FormatRecipe(recipe))
	return nil
}
