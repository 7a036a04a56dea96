package tilefeed

import "time"

// Channel holds the fixed metadata describing the published feed.
type Channel struct {
	Title       string
	Link        string
	Description string
}

// DefaultChannel returns the channel metadata for the Trading Economics
// summary feed.
func DefaultChannel() Channel {
	return Channel{
		Title:       "Trading Economics Summary",
		Link:        DefaultURL,
		Description: "Hourly snapshot of Trading Economics homepage tiles",
	}
}

// FeedGenerator serializes extracted tiles as a syndication document.
type FeedGenerator interface {
	// Generate returns a complete RSS 2.0 document for the tiles.
	// buildTime becomes the channel's lastBuildDate and the pubDate shared
	// by every item in the run. Item order equals tile order.
	Generate(ch Channel, tiles []Tile, buildTime time.Time) (string, error)
}
