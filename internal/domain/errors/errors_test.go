package errors

import (
	"net/http"
	"testing"

	"breachcheck/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	err := ErrInvalidRequest.WrapMessage("check password")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "INVALID_REQUEST", appErr.ErrorCode())
	assert.True(t, errors.Is(err, ErrInvalidRequest))
}

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrInvalidRequest.WithDetails("phone")

	assert.True(t, errors.Is(err, ErrInvalidRequest))
	assert.Equal(t, "phone", err.Details())
	assert.Contains(t, err.Error(), "phone")
	assert.False(t, errors.Is(err, ErrInternalError))
}

func TestAuditWriteError(t *testing.T) {
	cause := errors.New("ResourceNotFoundException: table missing")
	err := NewAuditWriteError(cause)

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "AUDIT_WRITE_FAILED", err.ErrorCode())
	assert.Contains(t, err.Message(), "table missing")
	assert.True(t, errors.Is(err, cause))
}
