package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/tilefeed"
	"github.com/fwojciec/tilefeed/mock"
	tileslog "github.com/fwojciec/tilefeed/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs tile count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(doc string) ([]tilefeed.Tile, error) {
				return []tilefeed.Tile{{Title: "a"}, {Title: "b"}}, nil
			},
		}

		extractor := tileslog.NewLoggingExtractor(inner, logger)
		tiles, err := extractor.Extract("<html/>")

		require.NoError(t, err)
		assert.Len(t, tiles, 2)
		output := buf.String()
		assert.Contains(t, output, "extract")
		assert.Contains(t, output, "tiles=2")
		assert.Contains(t, output, "input_bytes=7")
		assert.Contains(t, output, "duration=")
	})
}
