package readstore

import (
	"context"
	"fmt"

	"barista-cafe-api/internal/domain/booking"
	"barista-cafe-api/internal/infra"
	sqlc "barista-cafe-api/internal/infra/sqlc/generated"
	"barista-cafe-api/internal/pkg/pgconv"
	"barista-cafe-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Booking, error)
	ListBookings(ctx context.Context, db sqlc.DBTX) ([]sqlc.Booking, error)
	CountNonCancelledBookingsByTime(ctx context.Context, db sqlc.DBTX, bookingDate pgtype.Date) ([]sqlc.CountNonCancelledBookingsByTimeRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by ID", err)
	}

	view, err := toBookingView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking row", err, infra.KindDBFailure)
	}
	return view, nil
}

func (r *BookingReadStore) ListAll(ctx context.Context) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookings(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		view, err := toBookingView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert booking row", err, infra.KindDBFailure)
		}
		views = append(views, view)
	}
	return views, nil
}

func (r *BookingReadStore) CountNonCancelledByTime(ctx context.Context, date booking.Date) (map[booking.TimeOfDay]int, error) {
	rows, err := r.queries.CountNonCancelledBookingsByTime(ctx, r.db, pgconv.DateToPgtype(date.Time()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings for "+date.String(), err)
	}

	counts := make(map[booking.TimeOfDay]int, len(rows))
	for _, row := range rows {
		at, err := booking.TimeOfDayFromMinutes(pgconv.ClockFromPgtype(row.BookingTime))
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert booking time", err, infra.KindDBFailure)
		}
		counts[at] += int(row.BookingsCount)
	}
	return counts, nil
}

func toBookingView(row sqlc.Booking) (*queries.BookingView, error) {
	at, err := booking.TimeOfDayFromMinutes(pgconv.ClockFromPgtype(row.BookingTime))
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", row.ID, err)
	}

	return &queries.BookingView{
		ID:              row.ID,
		CustomerName:    row.CustomerName,
		Phone:           row.Phone,
		Date:            booking.NewDate(pgconv.DateFromPgtype(row.BookingDate)),
		Time:            at,
		PartySize:       int(row.NumberOfPeople),
		SpecialRequests: pgconv.StringPtrFromPgtype(row.SpecialRequests),
		Status:          row.Status,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
