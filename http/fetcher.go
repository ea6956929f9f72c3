// Package http provides the HTTP implementation of huey.Fetcher for
// retrieving law pages from the Legislature's document database.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/threepipe/huey"
)

// DefaultBaseURL is the Legislature's document endpoint. Documents are
// addressed as <base>?doc=<id>.
const DefaultBaseURL = "http://legis.la.gov/lss/newWin.asp"

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements huey.Fetcher at compile time.
var _ huey.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves law pages over HTTP by numeric document ID.
type Fetcher struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithBaseURL overrides the document endpoint. Used in tests and for
// mirrors of the database.
func WithBaseURL(url string) Option {
	return func(f *Fetcher) {
		f.baseURL = url
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		baseURL: DefaultBaseURL,
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the raw HTML for the document with the given ID.
// A 404 response is classified as ENOTFOUND so callers can distinguish
// unassigned IDs from transport failures.
func (f *Fetcher) Fetch(ctx context.Context, id int) (string, error) {
	url := f.baseURL + "?doc=" + strconv.Itoa(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", huey.Errorf(huey.ENOTFOUND, "document %d not found", id)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
