// Package slog provides logging decorators built on log/slog.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/threepipe/huey"
	"github.com/threepipe/huey/scrape"
)

// Ensure LoggingLawWriter implements huey.LawWriter.
var _ huey.LawWriter = (*LoggingLawWriter)(nil)

// LoggingLawWriter wraps a LawWriter with write logging.
type LoggingLawWriter struct {
	next   huey.LawWriter
	logger *slog.Logger
}

// NewLoggingLawWriter creates a new LoggingLawWriter.
func NewLoggingLawWriter(next huey.LawWriter, logger *slog.Logger) *LoggingLawWriter {
	return &LoggingLawWriter{next: next, logger: logger}
}

// CreateLaw delegates to the wrapped writer and logs the outcome.
func (w *LoggingLawWriter) CreateLaw(ctx context.Context, law *huey.LawDocument) error {
	begin := time.Now()
	err := w.next.CreateLaw(ctx, law)
	if err != nil {
		w.logger.Error("law write failed",
			"section", law.SectionNumber,
			"error", err,
		)
		return err
	}
	w.logger.Info("law written",
		"section", law.SectionNumber,
		"order_by", law.OrderBy,
		"duration", time.Since(begin),
	)
	return nil
}

// NewProgressLogger returns a scrape.ProgressFunc that logs run
// progress events.
func NewProgressLogger(logger *slog.Logger) scrape.ProgressFunc {
	return func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressStarted:
			logger.Info("scrape started", "first_id", event.ID)
		case scrape.ProgressAssembled:
			logger.Info("law assembled", "doc_id", event.ID)
		case scrape.ProgressNotFound:
			logger.Debug("document not found", "doc_id", event.ID)
		case scrape.ProgressSkipped:
			logger.Debug("document skipped", "doc_id", event.ID, "reason", huey.ErrorMessage(event.Err))
		case scrape.ProgressErrored:
			logger.Error("document errored", "doc_id", event.ID, "error", event.Err)
		case scrape.ProgressFinished:
			logger.Info("scrape finished", "last_id", event.ID)
		}
	}
}
