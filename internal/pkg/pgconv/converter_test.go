//go:build unit

package pgconv_test

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"barista-cafe-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestClockConversion(t *testing.T) {
	cases := []struct {
		name    string
		minutes int
	}{
		{name: "midnight", minutes: 0},
		{name: "opening slot", minutes: 9 * 60},
		{name: "half past", minutes: 10*60 + 30},
		{name: "last slot", minutes: 21 * 60},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pt := pgconv.ClockToPgtype(tc.minutes)
			assert.True(t, pt.Valid)
			assert.Equal(t, tc.minutes, pgconv.ClockFromPgtype(pt))
		})
	}

	t.Run("seconds are truncated", func(t *testing.T) {
		pt := pgtype.Time{Microseconds: int64((10*time.Hour + 15*time.Minute + 42*time.Second) / time.Microsecond), Valid: true}
		assert.Equal(t, 10*60+15, pgconv.ClockFromPgtype(pt))
	})

	t.Run("null time is zero", func(t *testing.T) {
		assert.Equal(t, 0, pgconv.ClockFromPgtype(pgtype.Time{}))
	})
}

func TestDateConversion(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	in := time.Date(2025, 6, 1, 23, 59, 0, 0, loc)

	pd := pgconv.DateToPgtype(in)
	assert.True(t, pd.Valid)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), pgconv.DateFromPgtype(pd))
	assert.True(t, pgconv.DateFromPgtype(pgtype.Date{}).IsZero())
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(sql.ErrNoRows))
	assert.False(t, pgconv.IsNoRows(errors.New("other")))
}
