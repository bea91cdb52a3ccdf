package converter

import (
	"barista-cafe-api/internal/domain/booking"
	sqlc "barista-cafe-api/internal/infra/sqlc/generated"
	"barista-cafe-api/internal/pkg/pgconv"
)

func BookingToInfra(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		CustomerName:    b.CustomerName(),
		Phone:           b.Phone(),
		BookingDate:     pgconv.DateToPgtype(b.Date().Time()),
		BookingTime:     pgconv.ClockToPgtype(b.Time().Minutes()),
		NumberOfPeople:  int32(b.PartySize()), // #nosec G115 -- bounded 1..20 by the domain
		SpecialRequests: pgconv.StringPtrToPgtype(b.SpecialRequests()),
		Status:          b.Status().String(),
	}
}

func SlotToInfra(slot booking.Slot) sqlc.CountBookingsAtParams {
	return sqlc.CountBookingsAtParams{
		BookingDate: pgconv.DateToPgtype(slot.Date.Time()),
		BookingTime: pgconv.ClockToPgtype(slot.Time.Minutes()),
	}
}
