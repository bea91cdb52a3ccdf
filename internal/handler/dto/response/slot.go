package response

import (
	"barista-cafe-api/internal/domain/booking"
)

type SlotResponse struct {
	Time          string `json:"time" example:"09:30"`
	Available     bool   `json:"available"`
	BookingsCount int    `json:"bookingsCount"`
}

func FromTimeSlots(slots []booking.TimeSlot) []SlotResponse {
	out := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotResponse{
			Time:          s.Time.String(),
			Available:     s.Available,
			BookingsCount: s.BookingsCount,
		})
	}
	return out
}
