package ducpdf

import (
	"context"
	"errors"
	"fmt"
)

// BBox is an axis-aligned rectangle in page points.
// Y grows upwards: Y0 is the bottom edge and Y1 the top edge.
type BBox struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 { return b.X1 - b.X0 }

// Height returns the vertical extent of the box.
func (b BBox) Height() float64 { return b.Y1 - b.Y0 }

// Union returns the smallest box containing both b and other.
func (b BBox) Union(other BBox) BBox {
	return BBox{
		X0: min(b.X0, other.X0),
		Y0: min(b.Y0, other.Y0),
		X1: max(b.X1, other.X1),
		Y1: max(b.Y1, other.Y1),
	}
}

// Span is a run of text sharing one font and size within a line.
type Span struct {
	BBox     BBox    `json:"bbox"`
	Text     string  `json:"text"`
	Font     string  `json:"font"`
	FontSize float64 `json:"fontSize"` // points
}

// Line is a sequence of spans grouped as one visual line.
type Line struct {
	BBox  BBox   `json:"bbox"`
	Spans []Span `json:"spans"`
}

// BlockType distinguishes text blocks from other page content.
type BlockType int

// BlockType constants.
const (
	BlockTypeText  BlockType = 0
	BlockTypeImage BlockType = 1
)

// Block is a group of lines on a page.
type Block struct {
	Type  BlockType `json:"type"`
	BBox  BBox      `json:"bbox"`
	Lines []Line    `json:"lines"`
}

// Page is the structured text of a single page.
type Page struct {
	Index  int     `json:"index"`
	Width  float64 `json:"width"`  // points
	Height float64 `json:"height"` // points
	Blocks []Block `json:"blocks"`
}

// PageSource yields the structured text of an opened document.
// Implementations hide the underlying PDF parser.
type PageSource interface {
	// PageCount returns the number of pages in the document.
	PageCount() int

	// Page returns the structured text of the page at the 0-based index.
	// Returns ENOTFOUND if the index is out of range.
	Page(ctx context.Context, index int) (*Page, error)

	// Close releases the underlying document.
	Close() error
}

// OpenFunc opens the document at path as a PageSource.
type OpenFunc func(path string) (PageSource, error)

// WithSource opens the document at path, calls fn with it and closes it
// exactly once, whether fn succeeds, fails or panics. A close error is
// joined with the error returned by fn.
func WithSource(ctx context.Context, open OpenFunc, path string, fn func(ctx context.Context, src PageSource) error) (err error) {
	src, err := open(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close source: %w", cerr))
		}
	}()
	return fn(ctx, src)
}
