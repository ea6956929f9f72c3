package mock

import "github.com/threepipe/huey"

var _ huey.Converter = (*Converter)(nil)

// Converter is a mock implementation of huey.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
