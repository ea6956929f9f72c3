package mock

import "github.com/threepipe/huey"

var _ huey.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of huey.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*huey.FieldSet, huey.Metadata, error)
}

func (e *Extractor) Extract(html string) (*huey.FieldSet, huey.Metadata, error) {
	return e.ExtractFn(html)
}
