// Package tilefeed republishes a website's homepage summary tiles as an
// RSS feed. It fetches the homepage, extracts title/description tiles from
// the markup with a tolerant streaming parser, and serializes them as an
// RSS 2.0 document plus a static index page.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., html/, http/, rss/).
package tilefeed
