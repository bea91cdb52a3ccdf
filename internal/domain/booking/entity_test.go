//go:build unit

package booking_test

import (
	"strings"
	"testing"

	"barista-cafe-api/internal/domain/booking"
	"barista-cafe-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, uuid.Nil, actual.ID(), "id is assigned by the store")
		assert.Equal(t, "Ana", actual.CustomerName())
		assert.Equal(t, "555-1234", actual.Phone())
		assert.Equal(t, "2025-06-01", actual.Date().String())
		assert.Equal(t, "10:00", actual.Time().String())
		assert.Equal(t, 2, actual.PartySize())
		assert.Nil(t, actual.SpecialRequests())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("whitespace is trimmed", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().
			WithCustomerName("  Ana  ").
			WithPhone(" 555-1234 ").
			WithSpecialRequests("  window seat ").
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Ana", actual.CustomerName())
		assert.Equal(t, "555-1234", actual.Phone())
		require.NotNil(t, actual.SpecialRequests())
		assert.Equal(t, "window seat", *actual.SpecialRequests())
	})

	t.Run("blank special requests are dropped", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().WithSpecialRequests("   ").BuildDomain()
		require.NoError(t, err)
		assert.Nil(t, actual.SpecialRequests())
	})

	t.Run("party size validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "zero people", mutate: func(b *builder.BookingBuilder) { b.WithPeople(0) }, errIs: booking.ErrInvalidPartySize},
			{name: "minimum party", mutate: func(b *builder.BookingBuilder) { b.WithPeople(1) }},
			{name: "maximum party", mutate: func(b *builder.BookingBuilder) { b.WithPeople(20) }},
			{name: "above maximum", mutate: func(b *builder.BookingBuilder) { b.WithPeople(21) }, errIs: booking.ErrInvalidPartySize},
			{name: "negative", mutate: func(b *builder.BookingBuilder) { b.WithPeople(-3) }, errIs: booking.ErrInvalidPartySize},
		})
	})

	t.Run("contact validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "empty name", mutate: func(b *builder.BookingBuilder) { b.WithCustomerName("") }, errIs: booking.ErrEmptyCustomerName},
			{name: "blank name", mutate: func(b *builder.BookingBuilder) { b.WithCustomerName("   ") }, errIs: booking.ErrEmptyCustomerName},
			{name: "name at limit", mutate: func(b *builder.BookingBuilder) { b.WithCustomerName(strings.Repeat("a", 100)) }},
			{name: "name over limit", mutate: func(b *builder.BookingBuilder) { b.WithCustomerName(strings.Repeat("a", 101)) }, errIs: booking.ErrCustomerNameTooLong},
			{name: "empty phone", mutate: func(b *builder.BookingBuilder) { b.WithPhone("") }, errIs: booking.ErrEmptyPhone},
			{name: "phone over limit", mutate: func(b *builder.BookingBuilder) { b.WithPhone(strings.Repeat("1", 21)) }, errIs: booking.ErrPhoneTooLong},
		})
	})

	t.Run("date and time validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "not a date", mutate: func(b *builder.BookingBuilder) { b.WithDate("tomorrow") }, errIs: booking.ErrInvalidDate},
			{name: "impossible date", mutate: func(b *builder.BookingBuilder) { b.WithDate("2025-02-30") }, errIs: booking.ErrInvalidDate},
			{name: "hour out of range", mutate: func(b *builder.BookingBuilder) { b.WithTime("24:00") }, errIs: booking.ErrInvalidTime},
			{name: "single digit hour", mutate: func(b *builder.BookingBuilder) { b.WithTime("9:30") }},
		})
	})
}

func TestBooking_Slot(t *testing.T) {
	actual, err := builder.NewBookingBuilder().WithTime("9:30").BuildDomain()
	require.NoError(t, err)

	slot := actual.Slot()
	assert.Equal(t, "2025-06-01|09:30", slot.Key())
}

func TestBooking_AssignID(t *testing.T) {
	actual, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	id := uuid.New()
	actual.AssignID(id)
	assert.Equal(t, id, actual.ID())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBookingBuilder()
			tc.mutate(b)
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}
