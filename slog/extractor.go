package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/tilefeed"
)

// Ensure LoggingExtractor implements tilefeed.Extractor at compile time.
var _ tilefeed.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with timing logs.
type LoggingExtractor struct {
	next   tilefeed.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next tilefeed.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(doc string) (tiles []tilefeed.Tile, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"input_bytes", len(doc),
			"tiles", len(tiles),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(doc)
}
