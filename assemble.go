package huey

import (
	"strconv"
	"strings"
)

// Metadata holds the name/value pairs collected from a page's meta
// tags. Keys keep the exact casing used in the markup; the source
// system is not consistent about it.
type Metadata map[string]string

// FieldSet holds the fields extracted from a parsed law page before
// assembly into a LawDocument.
type FieldSet struct {
	// TitleText is the inner text of the page's title element.
	TitleText string

	// SectionNumber is the plain text of the title element, which
	// doubles as the section identifier in the source system.
	SectionNumber string

	// AltDescription is a best-effort fallback catch line extracted
	// from the first justify-aligned paragraph. Empty when the page
	// has no such paragraph.
	AltDescription string

	// BodyText is the concatenated plain text of the law paragraphs.
	BodyText string

	// BodyRaw is the raw markup of the page body.
	BodyRaw string
}

// Assemble combines extracted fields and page metadata into a
// LawDocument.
//
// It returns an EUNPROCESSABLE error when the section identifier lacks
// the expected title-number structure (commonly a malformed or
// non-statute page; callers should skip it), and an EINVALID error when
// neither sortcode metadata casing is present (a data-integrity failure
// worth surfacing, since every legitimate record carries one).
func Assemble(fields FieldSet, meta Metadata) (*LawDocument, error) {
	unit, err := parseStructureUnit(fields.SectionNumber)
	if err != nil {
		return nil, err
	}

	raw, ok := meta["sortcode"]
	if !ok {
		// The meta tag's casing is inconsistent in the source system.
		raw, ok = meta["Sortcode"]
	}
	if !ok {
		return nil, Errorf(EINVALID, "no sortcode in either casing for %q", fields.SectionNumber)
	}

	return &LawDocument{
		CatchLine:     resolveCatchLine(fields, meta),
		SectionNumber: fields.SectionNumber,
		StructureUnit: unit,
		OrderBy:       NormalizeSortcode(raw),
		Text:          fields.BodyText,
		BodyRaw:       fields.BodyRaw,
	}, nil
}

// resolveCatchLine picks the catch line from an ordered list of
// providers; exactly one source is used, never a concatenation.
func resolveCatchLine(fields FieldSet, meta Metadata) string {
	providers := []func() (string, bool){
		func() (string, bool) {
			v, ok := meta["description"]
			return v, ok
		},
		func() (string, bool) {
			return fields.AltDescription, fields.AltDescription != ""
		},
	}
	for _, provide := range providers {
		if v, ok := provide(); ok {
			return v
		}
	}
	return ""
}

// parseStructureUnit extracts the title number from a section
// identifier such as "RS 14:30 Murder": the first colon-delimited
// token is split on whitespace and its second word must parse as a
// positive integer.
func parseStructureUnit(sectionNumber string) (int, error) {
	head, _, found := strings.Cut(sectionNumber, ":")
	if !found {
		return 0, Errorf(EUNPROCESSABLE, "section %q has no title:section structure", sectionNumber)
	}
	words := strings.Fields(head)
	if len(words) < 2 {
		return 0, Errorf(EUNPROCESSABLE, "section %q has no title number token", sectionNumber)
	}
	unit, err := strconv.Atoi(words[1])
	if err != nil || unit <= 0 {
		return 0, Errorf(EUNPROCESSABLE, "section %q title number %q is not a positive integer", sectionNumber, words[1])
	}
	return unit, nil
}
