package mock

import (
	"context"

	"github.com/ducflair/ducpdf"
)

var _ ducpdf.PageSource = (*PageSource)(nil)

// PageSource is a mock implementation of ducpdf.PageSource.
type PageSource struct {
	PageCountFn func() int
	PageFn      func(ctx context.Context, index int) (*ducpdf.Page, error)
	CloseFn     func() error
}

func (s *PageSource) PageCount() int {
	return s.PageCountFn()
}

func (s *PageSource) Page(ctx context.Context, index int) (*ducpdf.Page, error) {
	return s.PageFn(ctx, index)
}

func (s *PageSource) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}

// NewPageSource returns a PageSource serving pages in order.
// Page returns ENOTFOUND for indexes outside pages.
func NewPageSource(pages ...*ducpdf.Page) *PageSource {
	return &PageSource{
		PageCountFn: func() int { return len(pages) },
		PageFn: func(_ context.Context, index int) (*ducpdf.Page, error) {
			if index < 0 || index >= len(pages) {
				return nil, ducpdf.Errorf(ducpdf.ENOTFOUND, "page %d not found", index)
			}
			return pages[index], nil
		},
	}
}
