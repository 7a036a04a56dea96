package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/tilefeed"
	"github.com/fwojciec/tilefeed/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Fetcher   tilefeed.Fetcher
	Extractor tilefeed.Extractor
	Generator tilefeed.FeedGenerator
	Writer    *fs.Writer
}

// CLI defines the command-line interface structure for Kong.
//
// Output mode is selected by the --rss flag: absent prints a human-readable
// report, "-" writes the RSS document to stdout, and any other value is
// treated as a file path for the feed (with index.html written next to it).
type CLI struct {
	RSS       *string       `name:"rss" placeholder:"FILE" help:"Write RSS feed to FILE ('-' for stdout; also writes index.html next to it)"`
	URL       string        `default:"${default_url}" help:"Homepage to scrape"`
	UserAgent string        `name:"user-agent" default:"${default_agent}" help:"User-Agent header sent with the request"`
	Timeout   time.Duration `default:"30s" help:"HTTP request timeout"`
	Limit     int           `default:"${default_limit}" help:"Maximum number of tiles to keep"`
	Verbose   bool          `short:"v" help:"Log fetch and extraction details to stderr"`
}
