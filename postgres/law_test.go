package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threepipe/huey"
	"github.com/threepipe/huey/postgres"
)

// setupTestDB connects to the database named by HUEY_POSTGRES_URL.
// The tests are skipped when the variable is unset so the suite runs
// without a live server.
func setupTestDB(t *testing.T) *postgres.DB {
	t.Helper()

	url := os.Getenv("HUEY_POSTGRES_URL")
	if url == "" {
		t.Skip("HUEY_POSTGRES_URL not set; skipping postgres integration tests")
	}

	ctx := context.Background()
	db, err := postgres.Connect(ctx, postgres.DefaultConfig(url))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.InitSchema(ctx))

	_, err = db.ExecContext(ctx, "TRUNCATE laws")
	require.NoError(t, err)

	return db
}

func TestLawService_CreateLaw_Integration(t *testing.T) {
	db := setupTestDB(t)
	svc := postgres.NewLawService(db)
	ctx := context.Background()

	law := &huey.LawDocument{
		CatchLine:     "First degree murder",
		SectionNumber: "RS 14:30 Murder",
		StructureUnit: 14,
		OrderBy:       "RS0000001400000300",
		Text:          "Text A\nText B",
		BodyRaw:       `<p class="00003">Text A</p>`,
	}
	require.NoError(t, svc.CreateLaw(ctx, law))
	assert.NotEmpty(t, law.ID)
	assert.NotEmpty(t, law.BodyHash)

	got, err := svc.FindLawByID(ctx, law.ID)
	require.NoError(t, err)
	assert.Equal(t, "RS 14:30 Murder", got.SectionNumber)

	// Same sort key replaces the row.
	update := *law
	update.CatchLine = "Amended"
	require.NoError(t, svc.CreateLaw(ctx, &update))

	laws, err := svc.FindLaws(ctx, huey.LawFilter{})
	require.NoError(t, err)
	require.Len(t, laws, 1)
	assert.Equal(t, "Amended", laws[0].CatchLine)
}

func TestLawService_FindLaws_Integration(t *testing.T) {
	db := setupTestDB(t)
	svc := postgres.NewLawService(db)
	ctx := context.Background()

	for _, law := range []*huey.LawDocument{
		{SectionNumber: "RS 14:31 Test", StructureUnit: 14, OrderBy: "RS0000001400000031"},
		{SectionNumber: "RS 14:30 Test", StructureUnit: 14, OrderBy: "RS0000001400000030"},
		{SectionNumber: "CHC 3:116 Definitions", StructureUnit: 3, OrderBy: "CHC0000000300011600"},
	} {
		require.NoError(t, svc.CreateLaw(ctx, law))
	}

	laws, err := svc.FindLaws(ctx, huey.LawFilter{})
	require.NoError(t, err)
	require.Len(t, laws, 3)
	assert.Equal(t, "CHC0000000300011600", laws[0].OrderBy)

	unit := 14
	laws, err = svc.FindLaws(ctx, huey.LawFilter{StructureUnit: &unit})
	require.NoError(t, err)
	assert.Len(t, laws, 2)

	prefix := "CHC"
	laws, err = svc.FindLaws(ctx, huey.LawFilter{OrderByPrefix: &prefix})
	require.NoError(t, err)
	require.Len(t, laws, 1)
	assert.Equal(t, "CHC 3:116 Definitions", laws[0].SectionNumber)
}
