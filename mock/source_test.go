package mock_test

import (
	"context"
	"testing"

	"github.com/ducflair/ducpdf"
	"github.com/ducflair/ducpdf/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageSource_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ ducpdf.PageSource = &mock.PageSource{}
}

func TestNewPageSource(t *testing.T) {
	t.Parallel()

	t.Run("serves pages by index", func(t *testing.T) {
		t.Parallel()

		first := &ducpdf.Page{Index: 0, Height: 800}
		second := &ducpdf.Page{Index: 1, Height: 600}
		src := mock.NewPageSource(first, second)

		assert.Equal(t, 2, src.PageCount())
		page, err := src.Page(context.Background(), 1)
		require.NoError(t, err)
		assert.Same(t, second, page)
	})

	t.Run("returns not found for out of range index", func(t *testing.T) {
		t.Parallel()

		src := mock.NewPageSource()

		_, err := src.Page(context.Background(), 0)
		require.Error(t, err)
		assert.Equal(t, ducpdf.ENOTFOUND, ducpdf.ErrorCode(err))
	})

	t.Run("close without CloseFn succeeds", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, mock.NewPageSource().Close())
	})
}
