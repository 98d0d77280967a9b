package ducpdf_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ducflair/ducpdf"
	"github.com/ducflair/ducpdf/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"out", "out.duc"},
		{"out.duc", "out.duc"},
		{"dir/report.pdf", "dir/report.pdf.duc"},
		{"out.DUC", "out.DUC.duc"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ducpdf.OutputPath(tt.in))
		})
	}
}

func TestNewDocument(t *testing.T) {
	t.Parallel()

	doc := ducpdf.NewDocument(nil)

	assert.Equal(t, 10, doc.AppState.GridSize)
	assert.Equal(t, "#ffffff", doc.AppState.ViewBackgroundColor)
	assert.NotNil(t, doc.Files)
	assert.Empty(t, doc.Files)
}

func TestWithSource(t *testing.T) {
	t.Parallel()

	t.Run("closes the source after success", func(t *testing.T) {
		t.Parallel()

		closed := 0
		src := mock.NewPageSource()
		src.CloseFn = func() error { closed++; return nil }
		open := func(string) (ducpdf.PageSource, error) { return src, nil }

		err := ducpdf.WithSource(context.Background(), open, "a.pdf", func(context.Context, ducpdf.PageSource) error {
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, closed)
	})

	t.Run("closes the source after failure", func(t *testing.T) {
		t.Parallel()

		closed := 0
		src := mock.NewPageSource()
		src.CloseFn = func() error { closed++; return nil }
		open := func(string) (ducpdf.PageSource, error) { return src, nil }

		err := ducpdf.WithSource(context.Background(), open, "a.pdf", func(context.Context, ducpdf.PageSource) error {
			return errors.New("conversion failed")
		})

		require.EqualError(t, err, "conversion failed")
		assert.Equal(t, 1, closed)
	})

	t.Run("closes the source on panic", func(t *testing.T) {
		t.Parallel()

		closed := 0
		src := mock.NewPageSource()
		src.CloseFn = func() error { closed++; return nil }
		open := func(string) (ducpdf.PageSource, error) { return src, nil }

		assert.Panics(t, func() {
			_ = ducpdf.WithSource(context.Background(), open, "a.pdf", func(context.Context, ducpdf.PageSource) error {
				panic("boom")
			})
		})
		assert.Equal(t, 1, closed)
	})

	t.Run("joins close errors", func(t *testing.T) {
		t.Parallel()

		src := mock.NewPageSource()
		src.CloseFn = func() error { return errors.New("close failed") }
		open := func(string) (ducpdf.PageSource, error) { return src, nil }

		err := ducpdf.WithSource(context.Background(), open, "a.pdf", func(context.Context, ducpdf.PageSource) error {
			return nil
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "close failed")
	})

	t.Run("does not call fn when open fails", func(t *testing.T) {
		t.Parallel()

		called := false
		open := func(string) (ducpdf.PageSource, error) {
			return nil, ducpdf.Errorf(ducpdf.ENOTFOUND, "missing")
		}

		err := ducpdf.WithSource(context.Background(), open, "a.pdf", func(context.Context, ducpdf.PageSource) error {
			called = true
			return nil
		})

		assert.Equal(t, ducpdf.ENOTFOUND, ducpdf.ErrorCode(err))
		assert.False(t, called)
	})
}
