package commands

import (
	"context"
	"log/slog"

	"barista-cafe-api/internal/domain/booking"
	"barista-cafe-api/internal/pkg/clock"
	"barista-cafe-api/internal/pkg/errs"
	"barista-cafe-api/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrDomainValidation = errs.ErrDomainValidation
	ErrCapacityExceeded = errs.ErrCapacityExceeded
	ErrBookingNotFound  = errs.ErrBookingNotFound
	ErrInvalidStatus    = errs.ErrInvalidStatus
)

type CreateBookingInput struct {
	CustomerName    string
	Phone           string
	Date            booking.Date
	Time            booking.TimeOfDay
	PartySize       int
	SpecialRequests *string
}

type CreateBookingResult struct {
	BookingID uuid.UUID
}

type BookingCommands interface {
	Create(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

type bookingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk}
}

// Create admits the booking only while fewer than SlotCapacity bookings of any
// status exist for its slot. The slot lock is held until commit, so concurrent
// creators of the same slot are checked one at a time.
func (uc *bookingUseCaseImpl) Create(ctx context.Context, in CreateBookingInput) (result *CreateBookingResult, err error) {
	ctx, span := tracer.Start(ctx, "BookingCommands.Create")
	defer func() { endSpan(span, err) }()

	now := uc.clock.Now()
	b, err := booking.NewBooking(in.CustomerName, in.Phone, in.Date, in.Time, in.PartySize, in.SpecialRequests, now)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	slot := b.Slot()
	span.SetAttributes(attribute.String("booking.slot", slot.Key()))

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		repo := tx.Bookings()
		if err := repo.LockSlot(ctx, tx.DB(), slot); err != nil {
			return err
		}

		occupied, err := repo.CountAt(ctx, tx.DB(), slot)
		if err != nil {
			return err
		}
		if !booking.HasCapacity(occupied) {
			return ErrCapacityExceeded
		}

		id, err := repo.Insert(ctx, tx.DB(), b)
		if err != nil {
			return err
		}
		b.AssignID(id)

		return enqueueEvent(ctx, tx, TopicBookingCreated, BookingCreatedEvent{
			BookingID:  id,
			Date:       slot.Date.String(),
			Time:       slot.Time.String(),
			PartySize:  b.PartySize(),
			OccurredAt: now,
		}, now)
	})
	if err != nil {
		if errs.Is(err, ErrCapacityExceeded) {
			slog.InfoContext(ctx, "slot fully booked", "slot", slot.Key())
			return nil, err
		}
		return nil, shared.MarkStorageErr(err, nil)
	}

	return &CreateBookingResult{BookingID: b.ID()}, nil
}

// UpdateStatus accepts any transition between the four statuses.
func (uc *bookingUseCaseImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (err error) {
	ctx, span := tracer.Start(ctx, "BookingCommands.UpdateStatus")
	defer func() { endSpan(span, err) }()

	next, err := booking.ParseStatus(status)
	if err != nil {
		return errs.Mark(err, ErrInvalidStatus)
	}
	span.SetAttributes(attribute.String("booking.id", id.String()), attribute.String("booking.status", next.String()))

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// row lock keeps From accurate under concurrent status changes
		current, err := tx.Bookings().LockStatus(ctx, tx.DB(), id)
		if err != nil {
			return err
		}

		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), id, next); err != nil {
			return err
		}

		now := uc.clock.Now()
		return enqueueEvent(ctx, tx, TopicBookingStatusChanged, BookingStatusChangedEvent{
			BookingID:  id,
			From:       current.String(),
			To:         next.String(),
			OccurredAt: now,
		}, now)
	})
	if err != nil {
		return shared.MarkStorageErr(err, ErrBookingNotFound)
	}
	return nil
}
