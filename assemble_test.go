package huey_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threepipe/huey"
)

func TestAssemble(t *testing.T) {
	t.Parallel()

	t.Run("assembles a well-formed record", func(t *testing.T) {
		t.Parallel()

		fields := huey.FieldSet{
			TitleText:     "RS 14:30 Murder",
			SectionNumber: "RS 14:30 Murder",
			BodyText:      "Text A\nText B",
			BodyRaw:       "<p class=\"00003\">Text A</p><p class=\"00003\">Text B</p>",
		}
		meta := huey.Metadata{
			"description": "First degree murder",
			"sortcode":    "RS0000001400000300",
		}

		law, err := huey.Assemble(fields, meta)

		require.NoError(t, err)
		assert.Equal(t, "First degree murder", law.CatchLine)
		assert.Equal(t, "RS 14:30 Murder", law.SectionNumber)
		assert.Equal(t, 14, law.StructureUnit)
		assert.Equal(t, huey.NormalizeSortcode("RS0000001400000300"), law.OrderBy)
		assert.Equal(t, "Text A\nText B", law.Text)
		assert.Equal(t, fields.BodyRaw, law.BodyRaw)
	})

	t.Run("section without colon is unprocessable", func(t *testing.T) {
		t.Parallel()

		fields := huey.FieldSet{SectionNumber: "RS 14 Murder"}
		meta := huey.Metadata{"sortcode": "RS0000001400000300"}

		_, err := huey.Assemble(fields, meta)

		require.Error(t, err)
		assert.Equal(t, huey.EUNPROCESSABLE, huey.ErrorCode(err))
	})

	t.Run("non-numeric title number is unprocessable", func(t *testing.T) {
		t.Parallel()

		fields := huey.FieldSet{SectionNumber: "RS XIV:30 Murder"}
		meta := huey.Metadata{"sortcode": "RS0000001400000300"}

		_, err := huey.Assemble(fields, meta)

		require.Error(t, err)
		assert.Equal(t, huey.EUNPROCESSABLE, huey.ErrorCode(err))
	})

	t.Run("empty section number is unprocessable", func(t *testing.T) {
		t.Parallel()

		_, err := huey.Assemble(huey.FieldSet{}, huey.Metadata{"sortcode": "RS0000001400000300"})

		require.Error(t, err)
		assert.Equal(t, huey.EUNPROCESSABLE, huey.ErrorCode(err))
	})

	t.Run("capitalized sortcode casing is accepted", func(t *testing.T) {
		t.Parallel()

		fields := huey.FieldSet{SectionNumber: "CHC 3:116 Definitions"}
		meta := huey.Metadata{"Sortcode": "CHC0000000300011600"}

		law, err := huey.Assemble(fields, meta)

		require.NoError(t, err)
		assert.Equal(t, "CHC0000000300011600", law.OrderBy)
	})

	t.Run("lowercase sortcode wins over capitalized", func(t *testing.T) {
		t.Parallel()

		fields := huey.FieldSet{SectionNumber: "RS 14:30 Murder"}
		meta := huey.Metadata{
			"sortcode": "RS0000001400000300",
			"Sortcode": "RS9999999999999999",
		}

		law, err := huey.Assemble(fields, meta)

		require.NoError(t, err)
		assert.Equal(t, "RS0000001400000300", law.OrderBy)
	})

	t.Run("missing sortcode in both casings is invalid", func(t *testing.T) {
		t.Parallel()

		fields := huey.FieldSet{SectionNumber: "RS 14:30 Murder"}

		_, err := huey.Assemble(fields, huey.Metadata{})

		require.Error(t, err)
		assert.Equal(t, huey.EINVALID, huey.ErrorCode(err))
	})
}

func TestAssemble_CatchLineFallback(t *testing.T) {
	t.Parallel()

	fields := huey.FieldSet{
		SectionNumber:  "RS 14:30 Murder",
		AltDescription: "Murder is the killing of a human being.",
	}

	t.Run("meta description wins over alt description", func(t *testing.T) {
		t.Parallel()

		meta := huey.Metadata{
			"description": "First degree murder",
			"sortcode":    "RS0000001400000300",
		}

		law, err := huey.Assemble(fields, meta)

		require.NoError(t, err)
		assert.Equal(t, "First degree murder", law.CatchLine)
	})

	t.Run("alt description used when meta has none", func(t *testing.T) {
		t.Parallel()

		meta := huey.Metadata{"sortcode": "RS0000001400000300"}

		law, err := huey.Assemble(fields, meta)

		require.NoError(t, err)
		assert.Equal(t, "Murder is the killing of a human being.", law.CatchLine)
	})

	t.Run("empty catch line when neither source exists", func(t *testing.T) {
		t.Parallel()

		bare := huey.FieldSet{SectionNumber: "RS 14:30 Murder"}
		meta := huey.Metadata{"sortcode": "RS0000001400000300"}

		law, err := huey.Assemble(bare, meta)

		require.NoError(t, err)
		assert.Empty(t, law.CatchLine)
	})
}

func TestLawDocument_Validate(t *testing.T) {
	t.Parallel()

	valid := huey.LawDocument{
		SectionNumber: "RS 14:30 Murder",
		StructureUnit: 14,
		OrderBy:       "RS0000001400000300",
	}

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()

		doc := valid
		assert.NoError(t, doc.Validate())
	})

	t.Run("missing section number", func(t *testing.T) {
		t.Parallel()

		doc := valid
		doc.SectionNumber = ""
		assert.Equal(t, huey.EINVALID, huey.ErrorCode(doc.Validate()))
	})

	t.Run("non-positive structure unit", func(t *testing.T) {
		t.Parallel()

		doc := valid
		doc.StructureUnit = 0
		assert.Equal(t, huey.EINVALID, huey.ErrorCode(doc.Validate()))
	})

	t.Run("missing sort key", func(t *testing.T) {
		t.Parallel()

		doc := valid
		doc.OrderBy = ""
		assert.Equal(t, huey.EINVALID, huey.ErrorCode(doc.Validate()))
	})
}
