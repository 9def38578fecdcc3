package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestWrapf(t *testing.T) {
	original := New("original")
	wrapped := Wrapf(original, "wrapped: %d", 42)

	assert.Contains(t, wrapped.Error(), "wrapped: 42")
	assert.Contains(t, wrapped.Error(), "original")
}

func TestSentinels(t *testing.T) {
	err := Wrap(ErrCompileFailed, "error: unknown variable")
	assert.True(t, Is(err, ErrCompileFailed))
	assert.False(t, IsInvalidRequestError(err))

	err = NewInvalidRequestError("bad field %q", "name")
	assert.True(t, IsInvalidRequestError(err))
	assert.Contains(t, err.Error(), `bad field "name"`)
}

func TestIsInvalidRequestErrorNil(t *testing.T) {
	assert.False(t, IsInvalidRequestError(nil))
}
