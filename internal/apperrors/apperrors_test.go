package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_ErrorIncludesCause(t *testing.T) {
	err := NewAppError(500, "Save error", errors.New("db down"))
	assert.Equal(t, "Save error: db down", err.Error())

	plain := BadRequest("username is required")
	assert.Equal(t, "username is required", plain.Error())
}

func TestAs_FindsWrappedAppError(t *testing.T) {
	cause := errors.New("boom")
	wrapped := fmt.Errorf("upsert stats: %w", Internal("Save error", cause))

	appErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.ErrorIs(t, wrapped, cause)
	assert.True(t, HasCode(wrapped, http.StatusInternalServerError))
	assert.False(t, HasCode(errors.New("plain"), http.StatusInternalServerError))
}

func TestConflict_IsBadRequest(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Conflict("User exists").Code)
}
