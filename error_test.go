package recipeimport_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/recipeimport"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := recipeimport.Errorf(recipeimport.EINVALID, "unknown strategy %q", "serial")

	assert.Equal(t, recipeimport.EINVALID, recipeimport.ErrorCode(err))
	assert.Equal(t, "unknown strategy \"serial\"", recipeimport.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, recipeimport.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, recipeimport.ErrorMessage(nil))
}

func TestErrorCode_ForeignError(t *testing.T) {
	t.Parallel()

	err := errors.New("connection reset")

	assert.Equal(t, recipeimport.EINTERNAL, recipeimport.ErrorCode(err))
	assert.Equal(t, "Internal error", recipeimport.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	inner := recipeimport.Errorf(recipeimport.EMALFORMED, "provider returned invalid JSON")
	err := fmt.Errorf("import: %w", inner)

	assert.Equal(t, recipeimport.EMALFORMED, recipeimport.ErrorCode(err))
	assert.Equal(t, "provider returned invalid JSON", recipeimport.ErrorMessage(err))
}
