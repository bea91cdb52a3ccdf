package queries

import (
	"context"

	"barista-cafe-api/internal/domain/booking"
	"barista-cafe-api/internal/pkg/errs"
	"barista-cafe-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.ErrBookingNotFound

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListAll(ctx context.Context) ([]*BookingView, error)
	// CountNonCancelledByTime groups non-cancelled bookings on date by time of day.
	CountNonCancelledByTime(ctx context.Context, date booking.Date) (map[booking.TimeOfDay]int, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingReadStore
}

func NewBookingQueries(repo BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (view *BookingView, err error) {
	ctx, span := startSpan(ctx, "BookingQueries.GetByID")
	defer func() { endSpan(span, err) }()

	view, err = q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, shared.MarkStorageErr(err, ErrBookingNotFound)
	}
	return view, nil
}

// List orders by date then time, both descending.
func (q *bookingQueriesImpl) List(ctx context.Context) (views []*BookingView, err error) {
	ctx, span := startSpan(ctx, "BookingQueries.List")
	defer func() { endSpan(span, err) }()

	views, err = q.repo.ListAll(ctx)
	if err != nil {
		return nil, shared.MarkStorageErr(err, nil)
	}
	return views, nil
}
