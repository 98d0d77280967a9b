package ducpdf_test

import (
	"fmt"
	"testing"

	"github.com/ducflair/ducpdf"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := ducpdf.Errorf(ducpdf.ENOTFOUND, "source %q not found", "a.pdf")

	assert.Equal(t, ducpdf.ENOTFOUND, ducpdf.ErrorCode(err))
	assert.Equal(t, "source \"a.pdf\" not found", ducpdf.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("open: %w", ducpdf.Errorf(ducpdf.EINVALID, "bad"))

	assert.Equal(t, ducpdf.EINVALID, ducpdf.ErrorCode(err))
	assert.Equal(t, "bad", ducpdf.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("boom")

	assert.Equal(t, ducpdf.EINTERNAL, ducpdf.ErrorCode(err))
	assert.Equal(t, "Internal error.", ducpdf.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ducpdf.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ducpdf.ErrorMessage(nil))
}
