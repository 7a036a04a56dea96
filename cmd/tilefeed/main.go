package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/tilefeed"
	"github.com/fwojciec/tilefeed/fs"
	tilehtml "github.com/fwojciec/tilefeed/html"
	tilehttp "github.com/fwojciec/tilefeed/http"
	"github.com/fwojciec/tilefeed/rss"
	tileslog "github.com/fwojciec/tilefeed/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Pre-wired services for end-to-end testing. Any nil field is wired
	// with its production implementation in Run().
	Fetcher   tilefeed.Fetcher
	Extractor tilefeed.Extractor
	Generator tilefeed.FeedGenerator
	Writer    *fs.Writer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("tilefeed"),
		kong.Description("Scrape Trading Economics homepage tiles and republish them as an RSS feed."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{
			"default_url":   tilefeed.DefaultURL,
			"default_agent": tilefeed.DefaultUserAgent,
			"default_limit": strconv.Itoa(tilefeed.MaxTiles),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	// Wire services, keeping anything a test injected.
	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = tilehttp.NewFetcher(
			tilehttp.WithTimeout(cli.Timeout),
			tilehttp.WithUserAgent(cli.UserAgent),
		)
	}
	defer fetcher.Close()

	extractor := m.Extractor
	if extractor == nil {
		extractor = tilehtml.NewExtractor(tilehtml.WithLimit(cli.Limit))
	}

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		fetcher = tileslog.NewLoggingFetcher(fetcher, logger)
		extractor = tileslog.NewLoggingExtractor(extractor, logger)
	}

	generator := m.Generator
	if generator == nil {
		generator = rss.NewGenerator()
	}

	writer := m.Writer
	if writer == nil {
		writer = fs.NewWriter()
	}

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Fetcher:   fetcher,
		Extractor: extractor,
		Generator: generator,
		Writer:    writer,
	}

	return cli.Run(deps)
}
