package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fwojciec/tilefeed"
)

// Run executes the scrape and writes the result in the selected output mode.
func (c *CLI) Run(deps *Dependencies) error {
	doc, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		return err
	}

	tiles, err := deps.Extractor.Extract(doc)
	if err != nil {
		return err
	}

	// A fetch can "succeed" and still yield nothing, e.g. when the site
	// serves a challenge page instead of the homepage. That is a hard
	// failure: the scheduled job must not publish an empty feed.
	if len(tiles) == 0 {
		return tilefeed.Errorf(tilefeed.ENOTFOUND, "no tiles scraped (site may be blocking this IP)")
	}

	if c.RSS == nil {
		printTiles(deps.Stdout, tiles)
		return nil
	}

	feed, err := deps.Generator.Generate(tilefeed.DefaultChannel(), tiles, time.Now().UTC())
	if err != nil {
		return err
	}

	if *c.RSS == "-" {
		fmt.Fprint(deps.Stdout, feed)
		return nil
	}

	indexPath, err := deps.Writer.WriteFeed(*c.RSS, feed)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Wrote %s and %s\n", *c.RSS, indexPath)
	return nil
}

// printTiles writes the human-readable report: one delimited block per tile.
func printTiles(w io.Writer, tiles []tilefeed.Tile) {
	divider := strings.Repeat("=", 80)
	for i, tile := range tiles {
		fmt.Fprintf(w, "\n%s\n", divider)
		fmt.Fprintf(w, "Tile %d: %s\n", i+1, tile.Title)
		fmt.Fprintf(w, "%s\n", divider)
		fmt.Fprintln(w, tile.Summary)
	}
	fmt.Fprintln(w)
}
