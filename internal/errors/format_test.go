package errors

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatter_PlainOutput(t *testing.T) {
	f := NewFormatter(false)
	err := NewValidationError("file \"t\" does not exist", "Check the path")

	out := f.Format(err)

	assert.Contains(t, out, "ERROR [Validation Error]: file \"t\" does not exist")
	assert.Contains(t, out, "To fix this:")
	assert.Contains(t, out, "• Check the path")
	assert.NotContains(t, out, "\x1b[")
}

func TestFormatter_ColoredOutput(t *testing.T) {
	f := NewFormatter(true)

	out := f.Format(NewLaunchError(fmt.Errorf("gone")))

	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "gone")
}

func TestFormatter_NoRemediationSection(t *testing.T) {
	f := NewFormatter(false)

	out := f.Format(NewLaunchError(fmt.Errorf("gone")))

	assert.NotContains(t, out, "To fix this:")
}

func TestFormatter_FprintAny(t *testing.T) {
	f := NewFormatter(false)

	var buf bytes.Buffer
	f.FprintAny(&buf, fmt.Errorf("plain failure"))
	assert.Contains(t, buf.String(), "ERROR [Runtime Error]: plain failure")

	buf.Reset()
	f.FprintAny(&buf, nil)
	assert.Empty(t, buf.String())
}

func TestFormatter_NilError(t *testing.T) {
	f := NewFormatter(false)
	assert.Empty(t, f.Format(nil))
}
