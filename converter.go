package huey

// Converter transforms HTML content into Markdown. Used when exporting
// harvested laws to files meant for human review.
type Converter interface {
	Convert(html string) (string, error)
}
