package mock

import (
	"time"

	"github.com/fwojciec/tilefeed"
)

var _ tilefeed.FeedGenerator = (*Generator)(nil)

// Generator is a mock implementation of tilefeed.FeedGenerator.
type Generator struct {
	GenerateFn func(ch tilefeed.Channel, tiles []tilefeed.Tile, buildTime time.Time) (string, error)
}

func (g *Generator) Generate(ch tilefeed.Channel, tiles []tilefeed.Tile, buildTime time.Time) (string, error) {
	return g.GenerateFn(ch, tiles, buildTime)
}
