package shared

import (
	"context"
	"time"

	"barista-cafe-api/internal/domain/booking"
	sqlc "barista-cafe-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations, bounded by the query deadline, never retried
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Notifications() NotificationRepository
	DB() sqlc.DBTX
}

type BookingRepository interface {
	// LockSlot serialises writers of one (date, time) until the transaction ends.
	LockSlot(ctx context.Context, tx sqlc.DBTX, slot booking.Slot) error
	// CountAt counts bookings in the slot regardless of status.
	CountAt(ctx context.Context, tx sqlc.DBTX, slot booking.Slot) (int, error)
	Insert(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error)
	// LockStatus holds a row lock on the booking until the transaction ends.
	LockStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (booking.Status, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status booking.Status) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status, lastError string, nextRunAt time.Time) error
	PurgeSent(ctx context.Context, tx sqlc.DBTX, before time.Time) (int64, error)
}
