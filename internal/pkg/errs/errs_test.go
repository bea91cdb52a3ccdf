//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"barista-cafe-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	t.Run("marked error matches both the cause and the mark", func(t *testing.T) {
		cause := errors.New("connection reset")
		marked := errs.Mark(errs.Wrap(cause, "insert booking"), errs.ErrStorageFailure)

		assert.True(t, errs.Is(marked, errs.ErrStorageFailure))
		assert.True(t, errors.Is(marked, cause))
		assert.Contains(t, marked.Error(), "insert booking")
	})

	t.Run("nil error returns the mark itself", func(t *testing.T) {
		marked := errs.Mark(nil, errs.ErrBookingNotFound)
		assert.Equal(t, errs.ErrBookingNotFound, marked)
	})
}

func TestWrap(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))
	assert.NoError(t, errs.Wrapf(nil, "ignored %d", 1))

	err := errs.Wrapf(errors.New("boom"), "count slot %s", "10:00")
	require.Error(t, err)
	assert.Equal(t, "count slot 10:00: boom", err.Error())
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))

	lines := errs.ExtractStackLines(errs.New("boom"), 3)
	assert.LessOrEqual(t, len(lines), 3)
	assert.Equal(t, "boom", lines[0])
}
