//go:build unit

package booking_test

import (
	"testing"
	"time"

	"barista-cafe-api/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	valid := map[string]string{
		"00:00": "00:00",
		"9:05":  "09:05",
		"09:30": "09:30",
		"21:00": "21:00",
		"23:59": "23:59",
	}
	for in, want := range valid {
		t.Run("valid "+in, func(t *testing.T) {
			got, err := booking.ParseTimeOfDay(in)
			require.NoError(t, err)
			assert.Equal(t, want, got.String())
		})
	}

	for _, in := range []string{"", "24:00", "12:60", "1230", "12:5", "noon", "12:30:00"} {
		t.Run("invalid "+in, func(t *testing.T) {
			_, err := booking.ParseTimeOfDay(in)
			assert.ErrorIs(t, err, booking.ErrInvalidTime)
		})
	}
}

func TestTimeOfDayFromMinutes(t *testing.T) {
	got, err := booking.TimeOfDayFromMinutes(21 * 60)
	require.NoError(t, err)
	assert.Equal(t, "21:00", got.String())

	_, err = booking.TimeOfDayFromMinutes(24 * 60)
	assert.ErrorIs(t, err, booking.ErrInvalidTime)
	_, err = booking.TimeOfDayFromMinutes(-1)
	assert.ErrorIs(t, err, booking.ErrInvalidTime)
}

func TestParseDate(t *testing.T) {
	t.Run("plain date", func(t *testing.T) {
		d, err := booking.ParseDate("2025-06-01")
		require.NoError(t, err)
		assert.Equal(t, "2025-06-01", d.String())
		assert.Equal(t, time.UTC, d.Time().Location())
	})

	t.Run("timestamp keeps the written date", func(t *testing.T) {
		d, err := booking.ParseDate("2025-06-01T23:30:00+09:00")
		require.NoError(t, err)
		assert.Equal(t, "2025-06-01", d.String())
	})

	for _, in := range []string{"", "2025/06/01", "01-06-2025", "2025-13-01"} {
		t.Run("invalid "+in, func(t *testing.T) {
			_, err := booking.ParseDate(in)
			assert.ErrorIs(t, err, booking.ErrInvalidDate)
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []booking.Status{booking.StatusPending, booking.StatusConfirmed, booking.StatusCancelled, booking.StatusCompleted} {
		got, err := booking.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	for _, in := range []string{"", "CONFIRMED", "canceled", "archived"} {
		_, err := booking.ParseStatus(in)
		assert.ErrorIs(t, err, booking.ErrInvalidStatus, "input %q", in)
	}
}
