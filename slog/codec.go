package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/ducflair/ducpdf"
)

// Compile-time interface verification.
var (
	_ ducpdf.Encoder = (*LoggingEncoder)(nil)
	_ ducpdf.Decoder = (*LoggingDecoder)(nil)
)

// LoggingEncoder wraps an Encoder with logging.
type LoggingEncoder struct {
	next   ducpdf.Encoder
	logger *slog.Logger
}

// NewLoggingEncoder creates a new LoggingEncoder.
func NewLoggingEncoder(next ducpdf.Encoder, logger *slog.Logger) *LoggingEncoder {
	return &LoggingEncoder{next: next, logger: logger}
}

// Encode delegates to the wrapped encoder and logs the operation.
func (e *LoggingEncoder) Encode(ctx context.Context, doc *ducpdf.Document, source string) (data []byte, err error) {
	defer func(begin time.Time) {
		e.logger.Info("encode",
			"elements", len(doc.Elements),
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Encode(ctx, doc, source)
}

// LoggingDecoder wraps a Decoder with logging.
type LoggingDecoder struct {
	next   ducpdf.Decoder
	logger *slog.Logger
}

// NewLoggingDecoder creates a new LoggingDecoder.
func NewLoggingDecoder(next ducpdf.Decoder, logger *slog.Logger) *LoggingDecoder {
	return &LoggingDecoder{next: next, logger: logger}
}

// Decode delegates to the wrapped decoder and logs the operation.
func (d *LoggingDecoder) Decode(ctx context.Context, data []byte) (doc *ducpdf.Document, err error) {
	defer func(begin time.Time) {
		elements := 0
		if doc != nil {
			elements = len(doc.Elements)
		}
		d.logger.Info("decode",
			"bytes", len(data),
			"elements", elements,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Decode(ctx, data)
}
