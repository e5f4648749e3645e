//go:build integration

package gemini_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fwojciec/recipeimport"
	"github.com/fwojciec/recipeimport/extract"
	"github.com/fwojciec/recipeimport/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleter_Integration_ExtractsRecipe(t *testing.T) {
	t.Parallel()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client := &extract.Client{Completer: gemini.NewCompleter()}

	part, ok, err := client.Extract(ctx, "# Tea\n\n- 2 cups water\n\n1. Boil water", recipeimport.SchemaFull, apiKey)

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, recipeimport.SchemaFull, part.Variant)
	assert.NotEmpty(t, part.Recipe.Ingredients)
	assert.NotEmpty(t, part.Recipe.Methods)
}
