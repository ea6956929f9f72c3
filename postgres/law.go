package postgres

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/threepipe/huey"
)

// Verify interface compliance.
var _ huey.LawService = (*LawService)(nil)

// LawService implements huey.LawService using PostgreSQL.
type LawService struct {
	db *DB
}

// NewLawService creates a new LawService.
func NewLawService(db *DB) *LawService {
	return &LawService{db: db}
}

func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := []byte{
		byte(h >> 56), byte(h >> 48), byte(h >> 40), byte(h >> 32),
		byte(h >> 24), byte(h >> 16), byte(h >> 8), byte(h),
	}
	return hex.EncodeToString(b)
}

// CreateLaw persists a law document, replacing any existing row with
// the same sort key.
func (s *LawService) CreateLaw(ctx context.Context, law *huey.LawDocument) error {
	if err := law.Validate(); err != nil {
		return err
	}

	law.ID = uuid.New().String()
	law.FetchedAt = time.Now().UTC()
	law.BodyHash = hashContent(law.BodyRaw)

	query := `
		INSERT INTO laws (id, catch_line, section_number, structure_unit, order_by, text, body_raw, body_hash, fetched_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (order_by) DO UPDATE SET
			catch_line = EXCLUDED.catch_line,
			section_number = EXCLUDED.section_number,
			structure_unit = EXCLUDED.structure_unit,
			text = EXCLUDED.text,
			body_raw = EXCLUDED.body_raw,
			body_hash = EXCLUDED.body_hash,
			fetched_at = EXCLUDED.fetched_at
	`

	_, err := s.db.ExecContext(ctx, query,
		law.ID,
		law.CatchLine,
		law.SectionNumber,
		law.StructureUnit,
		law.OrderBy,
		law.Text,
		law.BodyRaw,
		law.BodyHash,
		law.FetchedAt,
	)
	return err
}

// FindLawByID retrieves a law by ID.
func (s *LawService) FindLawByID(ctx context.Context, id string) (*huey.LawDocument, error) {
	var law huey.LawDocument

	err := s.db.QueryRowContext(ctx, `
		SELECT id, catch_line, section_number, structure_unit, order_by, text, body_raw, body_hash, fetched_at
		FROM laws
		WHERE id = $1
	`, id).Scan(&law.ID, &law.CatchLine, &law.SectionNumber, &law.StructureUnit,
		&law.OrderBy, &law.Text, &law.BodyRaw, &law.BodyHash, &law.FetchedAt)

	if err == sql.ErrNoRows {
		return nil, huey.Errorf(huey.ENOTFOUND, "law not found")
	}
	if err != nil {
		return nil, err
	}

	return &law, nil
}

// FindLaws retrieves laws matching the filter, ordered by sort key.
func (s *LawService) FindLaws(ctx context.Context, filter huey.LawFilter) ([]*huey.LawDocument, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, catch_line, section_number, structure_unit, order_by, text, body_raw, body_hash, fetched_at FROM laws WHERE 1=1")

	placeholder := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.ID != nil {
		query.WriteString(" AND id = " + placeholder(*filter.ID))
	}
	if filter.StructureUnit != nil {
		query.WriteString(" AND structure_unit = " + placeholder(*filter.StructureUnit))
	}
	if filter.OrderByPrefix != nil {
		query.WriteString(" AND order_by LIKE " + placeholder(escapeLike(*filter.OrderByPrefix)+"%"))
	}

	query.WriteString(" ORDER BY order_by ASC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT " + placeholder(filter.Limit))
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET " + placeholder(filter.Offset))
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var laws []*huey.LawDocument
	for rows.Next() {
		var law huey.LawDocument
		if err := rows.Scan(&law.ID, &law.CatchLine, &law.SectionNumber, &law.StructureUnit,
			&law.OrderBy, &law.Text, &law.BodyRaw, &law.BodyHash, &law.FetchedAt); err != nil {
			return nil, err
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
