package scrape

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter enforces a request rate against the Legislature's server
// using a token bucket with a burst of 1 (no bursting allowed). The
// whole scan targets a single host, so one bucket suffices.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a new Limiter with the specified requests per
// second limit.
func NewLimiter(rps float64) *Limiter {
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(rps), 1)}
}

// Wait blocks until the rate limit allows the next request.
// Returns an error if the context is canceled before the wait completes.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
