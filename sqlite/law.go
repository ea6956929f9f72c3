package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/threepipe/huey"
)

// Compile-time interface verification.
var _ huey.LawService = (*LawService)(nil)

// LawService implements huey.LawService using SQLite.
type LawService struct {
	db *DB
}

// NewLawService creates a new LawService.
func NewLawService(db *DB) *LawService {
	return &LawService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
// The hash of the raw body markup is what future change detection
// compares against.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateLaw persists a law document. A record with the same sort key
// replaces the existing row, so re-scanning an ID range refreshes
// stale captures instead of failing.
func (s *LawService) CreateLaw(ctx context.Context, law *huey.LawDocument) error {
	if err := law.Validate(); err != nil {
		return err
	}

	law.ID = uuid.New().String()
	law.FetchedAt = time.Now().UTC()
	law.BodyHash = hashContent(law.BodyRaw)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO laws (id, catch_line, section_number, structure_unit, order_by, text, body_raw, body_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(order_by) DO UPDATE SET
			catch_line = excluded.catch_line,
			section_number = excluded.section_number,
			structure_unit = excluded.structure_unit,
			text = excluded.text,
			body_raw = excluded.body_raw,
			body_hash = excluded.body_hash,
			fetched_at = excluded.fetched_at
	`, law.ID, law.CatchLine, law.SectionNumber, law.StructureUnit, law.OrderBy,
		law.Text, law.BodyRaw, law.BodyHash, law.FetchedAt.Format(time.RFC3339))

	return err
}

// FindLawByID retrieves a law by ID.
func (s *LawService) FindLawByID(ctx context.Context, id string) (*huey.LawDocument, error) {
	var law huey.LawDocument
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, catch_line, section_number, structure_unit, order_by, text, body_raw, body_hash, fetched_at
		FROM laws
		WHERE id = ?
	`, id).Scan(&law.ID, &law.CatchLine, &law.SectionNumber, &law.StructureUnit,
		&law.OrderBy, &law.Text, &law.BodyRaw, &law.BodyHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, huey.Errorf(huey.ENOTFOUND, "law not found")
	}
	if err != nil {
		return nil, err
	}

	var parseErr error
	law.FetchedAt, parseErr = time.Parse(time.RFC3339, fetchedAt)
	if parseErr != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", parseErr)
	}

	return &law, nil
}

// FindLaws retrieves laws matching the filter, ordered by sort key so
// sections read in statutory order.
func (s *LawService) FindLaws(ctx context.Context, filter huey.LawFilter) ([]*huey.LawDocument, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, catch_line, section_number, structure_unit, order_by, text, body_raw, body_hash, fetched_at FROM laws WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.StructureUnit != nil {
		query.WriteString(" AND structure_unit = ?")
		args = append(args, *filter.StructureUnit)
	}
	if filter.OrderByPrefix != nil {
		query.WriteString(" AND order_by LIKE ? ESCAPE '\\'")
		args = append(args, escapeLike(*filter.OrderByPrefix)+"%")
	}

	query.WriteString(" ORDER BY order_by ASC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var laws []*huey.LawDocument
	for rows.Next() {
		var law huey.LawDocument
		var fetchedAt string

		if err := rows.Scan(&law.ID, &law.CatchLine, &law.SectionNumber, &law.StructureUnit,
			&law.OrderBy, &law.Text, &law.BodyRaw, &law.BodyHash, &fetchedAt); err != nil {
			return nil, err
		}

		var parseErr error
		law.FetchedAt, parseErr = time.Parse(time.RFC3339, fetchedAt)
		if parseErr != nil {
			return nil, fmt.Errorf("failed to parse fetched_at: %w", parseErr)
		}

		laws = append(laws, &law)
	}

	return laws, rows.Err()
}

// escapeLike escapes LIKE wildcards in a literal prefix.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
