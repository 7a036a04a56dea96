package tilefeed

import "context"

// DefaultURL is the homepage the feed is built from.
const DefaultURL = "https://tradingeconomics.com"

// DefaultUserAgent is sent with every fetch. The target site rejects
// requests carrying a default library agent, so the header is mandatory.
const DefaultUserAgent = "Mozilla/5.0"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch performs a single GET against the URL and returns the response
	// body decoded as text. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the Fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
