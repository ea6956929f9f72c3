// Package fs exports harvested laws as Markdown files for human
// review, laid out by law family and title.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/threepipe/huey"
)

// Ensure Writer implements huey.LawWriter at compile time.
var _ huey.LawWriter = (*Writer)(nil)

// Writer writes laws as markdown files to a directory tree:
// <base>/<family>/title-<n>-<subject>/<section>.md.
type Writer struct {
	baseDir string
	conv    huey.Converter
}

// NewWriter creates a new Writer rooted at baseDir. The converter
// renders each law's captured body markup; when it cannot, the plain
// text is written instead.
func NewWriter(baseDir string, conv huey.Converter) *Writer {
	return &Writer{baseDir: baseDir, conv: conv}
}

// CreateLaw writes one law to disk as a markdown file.
func (w *Writer) CreateLaw(ctx context.Context, law *huey.LawDocument) error {
	if err := law.Validate(); err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, LawPath(law))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(w.format(law)), 0o644)
}

// LawPath returns the relative file path for a law.
// Example: RS 14:30 Murder → rs/title-14-criminal-law/rs-14-30-murder.md
func LawPath(law *huey.LawDocument) string {
	family, _, _ := strings.Cut(law.SectionNumber, " ")

	dir := "title-" + strconv.Itoa(law.StructureUnit)
	if subject, ok := huey.TitleName(family, law.StructureUnit); ok {
		dir += "-" + slugify(subject)
	}

	return filepath.Join(strings.ToLower(family), dir, slugify(law.SectionNumber)+".md")
}

// format renders a law with YAML frontmatter followed by the body.
func (w *Writer) format(law *huey.LawDocument) string {
	body := law.Text
	if w.conv != nil && law.BodyRaw != "" {
		if md, err := w.conv.Convert(law.BodyRaw); err == nil {
			body = md
		}
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("section: ")
	b.WriteString(law.SectionNumber)
	b.WriteString("\ncatch_line: ")
	b.WriteString(law.CatchLine)
	b.WriteString("\norder_by: ")
	b.WriteString(law.OrderBy)
	b.WriteString("\nfetched: ")
	b.WriteString(law.FetchedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(body)
	return b.String()
}

// slugify lowercases s and collapses every run of non-alphanumeric
// characters into a single hyphen.
func slugify(s string) string {
	var b strings.Builder
	hyphen := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			if hyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			hyphen = false
			b.WriteRune(r)
		default:
			hyphen = true
		}
	}
	return b.String()
}
