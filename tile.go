package tilefeed

import "strings"

// MaxTiles is the number of tiles kept from a single extraction pass.
// The source homepage shows six summary tiles; later matches are parsed
// but excluded from the result.
const MaxTiles = 6

// Tile represents one homepage summary unit: a bolded headline and an
// optional description. Tiles are immutable once returned from extraction
// and have no identity beyond their position in the sequence.
type Tile struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// Validate returns an error if the tile contains invalid fields.
// A tile without a title is not a tile.
func (t *Tile) Validate() error {
	if t.Title == "" {
		return Errorf(EINVALID, "tile title required")
	}
	return nil
}

// NormalizeSpace collapses every run of whitespace (including newlines and
// tabs) to a single ASCII space and trims leading/trailing whitespace.
// Idempotent: normalizing an already-normalized string is a no-op.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Extractor extracts summary tiles from an HTML document.
type Extractor interface {
	// Extract scans a complete HTML document and returns up to MaxTiles
	// tiles in document order. Malformed markup never yields an error;
	// the result degrades to fewer (possibly zero) tiles instead. The
	// caller decides whether an empty result is a failure.
	Extract(doc string) ([]Tile, error)
}
