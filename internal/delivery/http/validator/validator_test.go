package validator

import (
	"testing"

	domainerrors "quill/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Title string `json:"title" validate:"required,min=3,max=255"`
	Email string `json:"email" validate:"omitempty,email"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

func TestCustomValidator_Passes(t *testing.T) {
	cv := New()

	assert.NoError(t, cv.Validate(&sampleRequest{Title: "hello", Limit: 10}))
}

func TestCustomValidator_ReportsFirstViolationOnly(t *testing.T) {
	cv := New()

	err := cv.Validate(&sampleRequest{Title: "", Email: "not-an-email"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Equal(t, `"title" is required`, appErr.Message())
}

func TestCustomValidator_UsesWireNames(t *testing.T) {
	cv := New()

	err := cv.Validate(&sampleRequest{Title: "ok", Limit: 200})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, `"limit" must be at most 100`, appErr.Message())
}

func TestCustomValidator_StringLengthMessages(t *testing.T) {
	cv := New()

	err := cv.Validate(&sampleRequest{Title: "ab"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, `"title" must be at least 3 characters long`, appErr.Message())
}
