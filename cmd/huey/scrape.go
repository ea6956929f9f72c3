package main

import (
	"fmt"
	"log/slog"

	"github.com/threepipe/huey"
	"github.com/threepipe/huey/goquery"
	hueyhttp "github.com/threepipe/huey/http"
	"github.com/threepipe/huey/postgres"
	"github.com/threepipe/huey/scrape"
	hueyslog "github.com/threepipe/huey/slog"
	"github.com/threepipe/huey/sqlite"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(deps.Stderr, &slog.HandlerOptions{Level: level}))

	laws, cleanup, err := openLawService(deps, c.Driver, c.DB, c.DSN)
	if err != nil {
		return err
	}
	defer cleanup()

	opts := []hueyhttp.Option{hueyhttp.WithTimeout(c.Timeout)}
	if c.BaseURL != "" {
		opts = append(opts, hueyhttp.WithBaseURL(c.BaseURL))
	}
	fetcher := hueyhttp.NewFetcher(opts...)
	defer fetcher.Close()

	scraper := &scrape.Scraper{
		Fetcher:      fetcher,
		Extractor:    goquery.NewExtractor(),
		Laws:         hueyslog.NewLoggingLawWriter(laws, logger),
		Limiter:      scrape.NewLimiter(c.Rate),
		Concurrency:  c.Concurrency,
		FetchTimeout: c.Timeout,
	}

	fmt.Fprintln(deps.Stdout, "Scraping...this could take a while...")

	result, err := scraper.Run(deps.Ctx, c.Min, c.Max, hueyslog.NewProgressLogger(logger))
	if result != nil {
		fmt.Fprintf(deps.Stdout,
			"Scraping complete. %d urls scanned, %d statutes added, %d skipped, %d errors\n",
			result.Fetched, result.Assembled, result.Skipped, result.Errored)
	}
	return err
}

// openLawService opens the configured storage backend and returns the
// service together with its cleanup function.
func openLawService(deps *Dependencies, driver, dbPath, dsn string) (huey.LawService, func(), error) {
	switch driver {
	case "postgres":
		if dsn == "" {
			return nil, nil, fmt.Errorf("--dsn is required with --driver=postgres")
		}
		db, err := postgres.Connect(deps.Ctx, postgres.DefaultConfig(dsn))
		if err != nil {
			return nil, nil, err
		}
		if err := db.InitSchema(deps.Ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return postgres.NewLawService(db), func() { _ = db.Close() }, nil
	default:
		db := sqlite.NewDB(dbPath)
		if err := db.Open(); err != nil {
			return nil, nil, err
		}
		return sqlite.NewLawService(db), func() { _ = db.Close() }, nil
	}
}
