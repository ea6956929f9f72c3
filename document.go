package huey

import (
	"context"
	"time"
)

// LawDocument represents one statutory section harvested from the
// Legislature's database. It is immutable once assembled.
type LawDocument struct {
	ID string `json:"id"`

	// CatchLine is the short descriptive phrase summarizing the
	// section's subject, used as a display label.
	CatchLine string `json:"catchLine"`

	// SectionNumber is the raw section identifier as printed in the
	// source page title, e.g. "RS 14:30 Murder".
	SectionNumber string `json:"sectionNumber"`

	// StructureUnit is the numeric title (top-level division) the
	// section belongs to, parsed out of SectionNumber.
	StructureUnit int `json:"structureUnit"`

	// OrderBy is the canonical sort key derived from the source
	// system's sortcode after normalization.
	OrderBy string `json:"orderBy"`

	// Text is the concatenated plain text of the law paragraphs,
	// paragraph breaks preserved.
	Text string `json:"text"`

	// BodyRaw is the full raw markup of the page body, retained for
	// future change detection.
	BodyRaw string `json:"bodyRaw"`

	// BodyHash is a content hash of BodyRaw, set by the persistence
	// layer.
	BodyHash string `json:"bodyHash"`

	FetchedAt time.Time `json:"fetchedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *LawDocument) Validate() error {
	if d.SectionNumber == "" {
		return Errorf(EINVALID, "law document section number required")
	}
	if d.StructureUnit <= 0 {
		return Errorf(EINVALID, "law document structure unit must be positive")
	}
	if d.OrderBy == "" {
		return Errorf(EINVALID, "law document sort key required")
	}
	return nil
}

// LawWriter persists law documents.
type LawWriter interface {
	CreateLaw(ctx context.Context, law *LawDocument) error
}

// LawService represents a service for managing harvested laws.
type LawService interface {
	// CreateLaw persists a law document. Records sharing a sort key
	// with an existing row replace it, so re-scanning a range is safe.
	CreateLaw(ctx context.Context, law *LawDocument) error

	// FindLawByID retrieves a law by ID.
	// Returns ENOTFOUND if the law does not exist.
	FindLawByID(ctx context.Context, id string) (*LawDocument, error)

	// FindLaws retrieves laws matching the filter, ordered by sort key.
	FindLaws(ctx context.Context, filter LawFilter) ([]*LawDocument, error)
}

// LawFilter represents a filter for FindLaws.
type LawFilter struct {
	ID            *string `json:"id"`
	StructureUnit *int    `json:"structureUnit"`

	// OrderByPrefix restricts results to sort keys with the given
	// prefix, which selects a law family (e.g. "RS").
	OrderByPrefix *string `json:"orderByPrefix"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
