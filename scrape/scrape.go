// Package scrape orchestrates the harvest of law documents: it walks a
// numeric document ID range, fetches each page, runs extraction and
// assembly, and hands finished records to persistence.
package scrape

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/threepipe/huey"
	"golang.org/x/sync/errgroup"
)

// Scraper drives the fetch-extract-assemble-persist cycle across a
// document ID range. All collaborators are injected; the Scraper owns
// only the run counters.
type Scraper struct {
	Fetcher   huey.Fetcher
	Extractor huey.Extractor
	Laws      huey.LawWriter

	// Limiter, when set, paces requests to the server.
	Limiter *Limiter

	// Concurrency bounds the fetch worker pool. Values below 2 keep
	// the reference behavior: strictly sequential, in-order processing.
	Concurrency int

	// FetchTimeout bounds each fetch so one hanging ID cannot stall
	// the range scan. Defaults to DefaultFetchTimeout.
	FetchTimeout time.Duration

	// RetryDelays are the backoff delays between fetch attempts.
	// Defaults to DefaultRetryDelays().
	RetryDelays []time.Duration
}

// DefaultFetchTimeout bounds a single document fetch.
const DefaultFetchTimeout = 30 * time.Second

// Result holds the aggregate counts of a completed run.
type Result struct {
	// Fetched counts documents whose content was retrieved, including
	// not-found placeholder pages.
	Fetched int64

	// Assembled counts records successfully persisted.
	Assembled int64

	// Skipped counts documents without the expected title-number
	// structure (malformed or non-statute pages).
	Skipped int64

	// Errored counts data-integrity failures, write failures, and
	// fetches that failed after retries.
	Errored int64
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressAssembled
	ProgressNotFound
	ProgressSkipped
	ProgressErrored
	ProgressFinished
)

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type ProgressType
	ID   int
	Err  error
}

// ProgressFunc is a callback for reporting run progress. With more
// than one worker active it may be invoked from multiple goroutines,
// though never concurrently.
type ProgressFunc func(event ProgressEvent)

// Run scans the inclusive document ID range [minID, maxID] and returns
// the aggregate counts. No per-document failure aborts the scan; the
// only errors returned are invalid ranges and context cancellation.
// Cancellation takes effect between IDs, so already-persisted records
// are never left half-written.
func (s *Scraper) Run(ctx context.Context, minID, maxID int, progress ProgressFunc) (*Result, error) {
	if minID <= 0 || maxID < minID {
		return nil, huey.Errorf(huey.EINVALID, "invalid document ID range [%d, %d]", minID, maxID)
	}

	var counters struct {
		fetched, assembled, skipped, errored atomic.Int64
	}
	var progressMu sync.Mutex
	notify := func(event ProgressEvent) {
		if progress == nil {
			return
		}
		progressMu.Lock()
		defer progressMu.Unlock()
		progress(event)
	}

	notify(ProgressEvent{Type: ProgressStarted, ID: minID})

	concurrency := s.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	// Each ID is dispatched exactly once, so no ID is ever processed
	// by more than one worker.
	for id := minID; id <= maxID; id++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			outcome := s.processID(gctx, id)
			switch outcome.kind {
			case outcomeAssembled:
				counters.fetched.Add(1)
				counters.assembled.Add(1)
				notify(ProgressEvent{Type: ProgressAssembled, ID: id})
			case outcomeNotFound:
				if outcome.fetched {
					counters.fetched.Add(1)
				}
				notify(ProgressEvent{Type: ProgressNotFound, ID: id})
			case outcomeSkipped:
				counters.fetched.Add(1)
				counters.skipped.Add(1)
				notify(ProgressEvent{Type: ProgressSkipped, ID: id, Err: outcome.err})
			case outcomeErrored:
				if outcome.fetched {
					counters.fetched.Add(1)
				}
				counters.errored.Add(1)
				notify(ProgressEvent{Type: ProgressErrored, ID: id, Err: outcome.err})
			case outcomeCanceled:
			}
			return nil
		})
	}

	_ = g.Wait()

	result := &Result{
		Fetched:   counters.fetched.Load(),
		Assembled: counters.assembled.Load(),
		Skipped:   counters.skipped.Load(),
		Errored:   counters.errored.Load(),
	}

	notify(ProgressEvent{Type: ProgressFinished, ID: maxID})

	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

type outcomeKind int

const (
	outcomeAssembled outcomeKind = iota
	outcomeNotFound
	outcomeSkipped
	outcomeErrored
	outcomeCanceled
)

type outcome struct {
	kind    outcomeKind
	fetched bool
	err     error
}

// processID runs one document through the per-ID state machine:
// fetch, placeholder check, extraction, assembly, persistence. The
// parsed page is local to this call, so its memory is released before
// the next ID regardless of branch.
func (s *Scraper) processID(ctx context.Context, id int) outcome {
	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx); err != nil {
			return outcome{kind: outcomeCanceled, err: err}
		}
	}

	timeout := s.FetchTimeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	html, err := FetchWithRetryDelays(fetchCtx, id, s.Fetcher.Fetch, nil, delays)
	if err != nil {
		if ctx.Err() != nil {
			return outcome{kind: outcomeCanceled, err: err}
		}
		// The server answers unassigned IDs without content; that is
		// the common case across a sparse ID range, not a failure.
		if huey.ErrorCode(err) == huey.ENOTFOUND {
			return outcome{kind: outcomeNotFound}
		}
		return outcome{kind: outcomeErrored, err: err}
	}

	fields, meta, err := s.Extractor.Extract(html)
	if err != nil {
		// A placeholder page fetched fine but holds no document
		// structure.
		if huey.ErrorCode(err) == huey.ENOTFOUND {
			return outcome{kind: outcomeNotFound, fetched: true}
		}
		return outcome{kind: outcomeErrored, fetched: true, err: err}
	}

	law, err := huey.Assemble(*fields, meta)
	if err != nil {
		if huey.ErrorCode(err) == huey.EUNPROCESSABLE {
			return outcome{kind: outcomeSkipped, err: err}
		}
		// Missing sortcode is a data-integrity failure: the record is
		// dropped rather than persisted with a guessed sort key.
		return outcome{kind: outcomeErrored, fetched: true, err: err}
	}

	if err := s.Laws.CreateLaw(ctx, law); err != nil {
		return outcome{kind: outcomeErrored, fetched: true, err: err}
	}

	return outcome{kind: outcomeAssembled}
}
