package mock

import (
	"context"

	"github.com/threepipe/huey"
)

var _ huey.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of huey.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, id int) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, id int) (string, error) {
	return f.FetchFn(ctx, id)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
