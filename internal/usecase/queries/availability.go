package queries

import (
	"context"

	"barista-cafe-api/internal/domain/booking"
	"barista-cafe-api/internal/usecase/shared"
)

type AvailabilityQueries interface {
	GetAvailableSlots(ctx context.Context, date booking.Date) ([]booking.TimeSlot, error)
}

type availabilityQueriesImpl struct {
	repo BookingReadStore
}

func NewAvailabilityQueries(repo BookingReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{repo: repo}
}

// GetAvailableSlots reads the day's non-cancelled counts once and projects them onto the slot grid.
func (q *availabilityQueriesImpl) GetAvailableSlots(ctx context.Context, date booking.Date) (slots []booking.TimeSlot, err error) {
	ctx, span := startSpan(ctx, "AvailabilityQueries.GetAvailableSlots")
	defer func() { endSpan(span, err) }()

	counts, err := q.repo.CountNonCancelledByTime(ctx, date)
	if err != nil {
		return nil, shared.MarkStorageErr(err, nil)
	}
	return booking.ComputeAvailability(counts), nil
}
