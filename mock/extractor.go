package mock

import "github.com/fwojciec/tilefeed"

var _ tilefeed.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of tilefeed.Extractor.
type Extractor struct {
	ExtractFn func(doc string) ([]tilefeed.Tile, error)
}

func (e *Extractor) Extract(doc string) ([]tilefeed.Tile, error) {
	return e.ExtractFn(doc)
}
