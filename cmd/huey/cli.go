package main

import (
	"context"
	"io"
	"time"
)

// Dependencies holds the execution context for command handlers.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape ScrapeCmd `cmd:"" help:"Harvest laws across a document ID range"`
	Export ExportCmd `cmd:"" help:"Export stored laws as markdown files"`
}

// ScrapeCmd scans a document ID range and persists assembled laws.
//
// The default range brackets the observed ID space; the State does not
// appear to follow any logic in assigning IDs, so the scan simply
// brute-forces the interval.
type ScrapeCmd struct {
	Min         int           `default:"67940" help:"First document ID to request"`
	Max         int           `default:"750000" help:"Last document ID to request"`
	Driver      string        `default:"sqlite" enum:"sqlite,postgres" help:"Storage backend"`
	DB          string        `default:"huey.db" help:"SQLite database path"`
	DSN         string        `help:"PostgreSQL connection string (with --driver=postgres)"`
	BaseURL     string        `help:"Override the document endpoint (mirrors, testing)"`
	Concurrency int           `short:"c" default:"1" help:"Concurrent fetch limit"`
	Rate        float64       `default:"1" help:"Requests per second against the server"`
	Timeout     time.Duration `short:"t" default:"30s" help:"Fetch timeout per document"`
	Verbose     bool          `short:"v" help:"Log every document, not just assembled laws"`
}

// ExportCmd writes stored laws out as a markdown file tree.
type ExportCmd struct {
	Driver string `default:"sqlite" enum:"sqlite,postgres" help:"Storage backend"`
	DB     string `default:"huey.db" help:"SQLite database path"`
	DSN    string `help:"PostgreSQL connection string (with --driver=postgres)"`
	Out    string `default:"laws" help:"Output directory"`
}
