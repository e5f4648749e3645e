package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/recipeimport"
	"github.com/fwojciec/recipeimport/mock"
	recslog "github.com/fwojciec/recipeimport/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingImporter_Import(t *testing.T) {
	t.Parallel()

	t.Run("assigns an import id visible downstream", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		var seenID string
		inner := &mock.Importer{
			ImportFn: func(ctx context.Context, html, credential string) (recipeimport.Recipe, bool, error) {
				seenID = recslog.ImportID(ctx)
				return recipeimport.Recipe{Title: "Tea"}, true, nil
			},
		}

		importer := recslog.NewLoggingImporter(inner, recipeimport.StrategyParallel, logger)
		recipe, ok, err := importer.Import(context.Background(), "<p>Tea</p>", "key")

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "Tea", recipe.Title)
		require.NotEmpty(t, seenID)
		output := buf.String()
		assert.Contains(t, output, "msg=import")
		assert.Contains(t, output, "import_id="+seenID)
		assert.Contains(t, output, "strategy=parallel")
		assert.Contains(t, output, "html_bytes=10")
		assert.Contains(t, output, "found=true")
	})

	t.Run("keeps an existing import id", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		var seenID string
		inner := &mock.Importer{
			ImportFn: func(ctx context.Context, html, credential string) (recipeimport.Recipe, bool, error) {
				seenID = recslog.ImportID(ctx)
				return recipeimport.Recipe{}, false, nil
			},
		}

		importer := recslog.NewLoggingImporter(inner, recipeimport.StrategySingle, logger)
		ctx := recslog.WithImportID(context.Background(), "req-42")
		_, ok, err := importer.Import(ctx, "<p></p>", "key")

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "req-42", seenID)
		assert.Contains(t, buf.String(), "import_id=req-42")
		assert.Contains(t, buf.String(), "found=false")
	})

	t.Run("logs error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Importer{
			ImportFn: func(context.Context, string, string) (recipeimport.Recipe, bool, error) {
				return recipeimport.Recipe{}, false, errors.New("boom")
			},
		}

		importer := recslog.NewLoggingImporter(inner, recipeimport.StrategySingle, logger)
		_, _, err := importer.Import(context.Background(), "<p></p>", "key")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=boom")
	})
}

func TestImportID(t *testing.T) {
	t.Parallel()

	assert.Empty(t, recslog.ImportID(context.Background()))
	assert.Equal(t, "x", recslog.ImportID(recslog.WithImportID(context.Background(), "x")))
}
