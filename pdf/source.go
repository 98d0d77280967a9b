// Package pdf provides a ducpdf.PageSource backed by github.com/ledongthuc/pdf.
package pdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/ducflair/ducpdf"
	"github.com/ledongthuc/pdf"
)

// Ensure Source implements ducpdf.PageSource at compile time.
var _ ducpdf.PageSource = (*Source)(nil)

// US Letter, used when a page has no usable MediaBox.
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// Source reads structured text from a PDF document.
type Source struct {
	reader *pdf.Reader
	closer io.Closer
}

// Open opens the PDF file at path.
// Returns ENOTFOUND if the file does not exist and EINVALID if it cannot be
// parsed as a PDF.
func Open(path string) (*Source, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, ducpdf.Errorf(ducpdf.ENOTFOUND, "source document %q not found", path)
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		if f != nil {
			_ = f.Close()
		}
		return nil, ducpdf.Errorf(ducpdf.EINVALID, "cannot open %q as PDF: %v", path, err)
	}
	return &Source{reader: r, closer: f}, nil
}

// OpenSource adapts Open to ducpdf.OpenFunc.
func OpenSource(path string) (ducpdf.PageSource, error) {
	return Open(path)
}

// NewSource reads a PDF document of size bytes from r.
// The caller keeps ownership of r; Close is a no-op.
func NewSource(r io.ReaderAt, size int64) (*Source, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, ducpdf.Errorf(ducpdf.EINVALID, "cannot read PDF: %v", err)
	}
	return &Source{reader: reader}, nil
}

// PageCount returns the number of pages in the document.
func (s *Source) PageCount() int {
	return s.reader.NumPage()
}

// Page returns the structured text of the page at the 0-based index.
func (s *Source) Page(ctx context.Context, index int) (page *ducpdf.Page, err error) {
	if index < 0 || index >= s.PageCount() {
		return nil, ducpdf.Errorf(ducpdf.ENOTFOUND, "page %d not found", index)
	}

	// The parser panics on malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			page = nil
			err = ducpdf.Errorf(ducpdf.EINVALID, "failed to extract page %d: %v", index, r)
		}
	}()

	p := s.reader.Page(index + 1)
	if p.V.IsNull() {
		return nil, ducpdf.Errorf(ducpdf.EINVALID, "page %d has no page object", index)
	}

	box := mediaBox(p)
	texts := p.Content().Text
	for i := range texts {
		texts[i].X -= box.X0
		texts[i].Y -= box.Y0
	}
	return Layout(texts, index, box.Width(), box.Height()), nil
}

// Close releases the underlying file.
func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	if err := s.closer.Close(); err != nil {
		return fmt.Errorf("failed to close PDF: %w", err)
	}
	s.closer = nil
	return nil
}

// maxTreeDepth bounds the /Parent walk so cyclic page trees terminate.
const maxTreeDepth = 32

// mediaBox returns the MediaBox of p, following the page tree for
// inherited boxes.
func mediaBox(p pdf.Page) ducpdf.BBox {
	v := p.V
	for depth := 0; depth < maxTreeDepth && !v.IsNull(); depth, v = depth+1, v.Key("Parent") {
		box := v.Key("MediaBox")
		if box.Kind() != pdf.Array || box.Len() != 4 {
			continue
		}
		b := ducpdf.BBox{
			X0: box.Index(0).Float64(),
			Y0: box.Index(1).Float64(),
			X1: box.Index(2).Float64(),
			Y1: box.Index(3).Float64(),
		}
		if b.Width() > 0 && b.Height() > 0 {
			return b
		}
	}
	return ducpdf.BBox{X1: defaultPageWidth, Y1: defaultPageHeight}
}
