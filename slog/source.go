// Package slog provides log/slog decorators for ducpdf services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/ducflair/ducpdf"
)

// Ensure LoggingPageSource implements ducpdf.PageSource.
var _ ducpdf.PageSource = (*LoggingPageSource)(nil)

// LoggingPageSource wraps a PageSource with page extraction logging.
type LoggingPageSource struct {
	next   ducpdf.PageSource
	logger *slog.Logger
}

// NewLoggingPageSource creates a new LoggingPageSource.
func NewLoggingPageSource(next ducpdf.PageSource, logger *slog.Logger) *LoggingPageSource {
	return &LoggingPageSource{next: next, logger: logger}
}

// PageCount delegates to the wrapped source.
func (s *LoggingPageSource) PageCount() int {
	return s.next.PageCount()
}

// Page delegates to the wrapped source and logs the extraction.
func (s *LoggingPageSource) Page(ctx context.Context, index int) (page *ducpdf.Page, err error) {
	defer func(begin time.Time) {
		var blocks, lines int
		if page != nil {
			blocks = len(page.Blocks)
			for _, b := range page.Blocks {
				lines += len(b.Lines)
			}
		}
		s.logger.Info("page extraction",
			"page", index,
			"blocks", blocks,
			"lines", lines,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Page(ctx, index)
}

// Close delegates to the wrapped source.
func (s *LoggingPageSource) Close() error {
	err := s.next.Close()
	s.logger.Info("source closed", "err", err)
	return err
}
