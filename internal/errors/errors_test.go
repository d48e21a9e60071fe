package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryString(t *testing.T) {
	tests := map[Category]string{
		Validation:   "Validation Error",
		Launch:       "Launch Error",
		Interrupted:  "Interrupted",
		Runtime:      "Runtime Error",
		Category(99): "Error",
	}

	for category, want := range tests {
		assert.Equal(t, want, category.String())
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("bad filter", "remove the exclusion")

	assert.Equal(t, Validation, err.Category)
	assert.Equal(t, "bad filter", err.Error())
	assert.Equal(t, []string{"remove the exclusion"}, err.Remediation)
}

func TestNewLaunchError(t *testing.T) {
	err := NewLaunchError(fmt.Errorf("no such file or directory"))

	assert.Equal(t, Launch, err.Category)
	assert.Contains(t, err.Error(), "no such file")
}

func TestNewInterruptedError(t *testing.T) {
	err := NewInterruptedError()

	assert.Equal(t, Interrupted, err.Category)
	assert.Equal(t, "Caught interrupt, terminating workers", err.Message)
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, Runtime))

	wrapped := Wrap(fmt.Errorf("boom"), Validation)
	require.NotNil(t, wrapped)
	assert.Equal(t, Validation, wrapped.Category)
	assert.Equal(t, "boom", wrapped.Message)
}

func TestAsRunError(t *testing.T) {
	assert.Nil(t, AsRunError(fmt.Errorf("plain")))

	runErr := NewValidationError("structured")
	assert.Equal(t, runErr, AsRunError(error(runErr)))
}
