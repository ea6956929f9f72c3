package htmltomarkdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threepipe/huey"
	"github.com/threepipe/huey/htmltomarkdown"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts law paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<p class="00003">A. Murder is the killing of a human being.</p><p class="00003">B. Whoever commits the crime shall be punished.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "A. Murder is the killing of a human being.")
		assert.Contains(t, md, "B. Whoever commits the crime shall be punished.")
	})

	t.Run("converts emphasis", func(t *testing.T) {
		t.Parallel()

		html := `<p><b>Acts 1973</b>, No. <i>109</i></p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "**Acts 1973**")
		assert.Contains(t, md, "*109*")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("   ")

		require.Error(t, err)
		assert.Equal(t, huey.EINVALID, huey.ErrorCode(err))
	})
}
