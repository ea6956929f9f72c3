package huey_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/threepipe/huey"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := huey.Errorf(huey.ENOTFOUND, "law %q not found", "test")

	assert.Equal(t, huey.ENOTFOUND, huey.ErrorCode(err))
	assert.Equal(t, "law \"test\" not found", huey.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, huey.ErrorCode(nil))
}

func TestErrorCode_GenericError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, huey.EINTERNAL, huey.ErrorCode(assert.AnError))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, huey.ErrorMessage(nil))
}
