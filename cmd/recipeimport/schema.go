package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/recipeimport"
)

// Run executes the schema command.
func (c *SchemaCmd) Run(deps *Dependencies) error {
	variant, err := recipeimport.ParseSchemaVariant(c.Variant)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"name":   recipeimport.SchemaName,
		"strict": true,
		"schema": variant.JSONSchema(),
	})
}
