package huey

import "context"

// Fetcher retrieves law pages from the Legislature's database by
// numeric document ID. Transport concerns (URL construction, retries,
// error classification) belong to implementations, not the extraction
// core.
type Fetcher interface {
	// Fetch returns the raw HTML of the document with the given ID.
	// Returns an ENOTFOUND error when the server reports the document
	// does not exist. The context controls timeout and cancellation.
	Fetch(ctx context.Context, id int) (html string, err error)

	// Close releases transport resources.
	Close() error
}
