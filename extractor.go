package huey

// Extractor derives structured fields and metadata from a fetched law
// page.
type Extractor interface {
	// Extract parses raw HTML and returns the extracted fields along
	// with the page's meta tag mapping. Returns an ENOTFOUND error for
	// the retrieval service's "file not found" placeholder, which has
	// no recognizable page structure.
	Extract(html string) (*FieldSet, Metadata, error)
}
