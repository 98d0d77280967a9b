package mock

import (
	"context"

	"github.com/ducflair/ducpdf"
)

// Compile-time interface verification.
var (
	_ ducpdf.Encoder = (*Encoder)(nil)
	_ ducpdf.Decoder = (*Decoder)(nil)
)

// Encoder is a mock implementation of ducpdf.Encoder.
type Encoder struct {
	EncodeFn func(ctx context.Context, doc *ducpdf.Document, source string) ([]byte, error)
}

func (e *Encoder) Encode(ctx context.Context, doc *ducpdf.Document, source string) ([]byte, error) {
	return e.EncodeFn(ctx, doc, source)
}

// Decoder is a mock implementation of ducpdf.Decoder.
type Decoder struct {
	DecodeFn func(ctx context.Context, data []byte) (*ducpdf.Document, error)
}

func (d *Decoder) Decode(ctx context.Context, data []byte) (*ducpdf.Document, error) {
	return d.DecodeFn(ctx, data)
}
