package repository

import (
	"context"

	"barista-cafe-api/internal/domain/booking"
	"barista-cafe-api/internal/infra"
	"barista-cafe-api/internal/infra/repository/converter"
	sqlc "barista-cafe-api/internal/infra/sqlc/generated"
	"barista-cafe-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (uuid.UUID, error)
	CountBookingsAt(ctx context.Context, db sqlc.DBTX, arg sqlc.CountBookingsAtParams) (int64, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
	LockBookingSlot(ctx context.Context, db sqlc.DBTX, slotKey string) error
	LockBookingStatus(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (string, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{
		queries: queries,
	}
}

func (r *BookingRepository) LockSlot(ctx context.Context, tx sqlc.DBTX, slot booking.Slot) error {
	if err := r.queries.LockBookingSlot(ctx, tx, slot.Key()); err != nil {
		return infra.WrapRepoErr("failed to lock booking slot "+slot.Key(), err)
	}
	return nil
}

func (r *BookingRepository) CountAt(ctx context.Context, tx sqlc.DBTX, slot booking.Slot) (int, error) {
	n, err := r.queries.CountBookingsAt(ctx, tx, converter.SlotToInfra(slot))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count bookings at "+slot.Key(), err)
	}
	return int(n), nil
}

func (r *BookingRepository) Insert(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error) {
	id, err := r.queries.CreateBooking(ctx, tx, converter.BookingToInfra(b))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

// LockStatus row-locks the booking until the transaction ends and returns its
// current status.
func (r *BookingRepository) LockStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (booking.Status, error) {
	raw, err := r.queries.LockBookingStatus(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to lock booking", err)
	}
	status, err := booking.ParseStatus(raw)
	if err != nil {
		return "", infra.WrapRepoErr("unknown booking status "+raw, err, infra.KindDBFailure)
	}
	return status, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status booking.Status) error {
	if !status.IsValid() {
		return booking.ErrInvalidStatus
	}

	affected, err := r.queries.UpdateBookingStatus(ctx, tx, sqlc.UpdateBookingStatusParams{
		ID:     id,
		Status: status.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
