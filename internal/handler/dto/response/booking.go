package response

import (
	"time"

	"barista-cafe-api/internal/domain/booking"
	"barista-cafe-api/internal/domain/menu"
	"barista-cafe-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var viewCopyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: booking.Date{},
			DstType: copier.String,
			Fn:      func(src any) (any, error) { return src.(booking.Date).String(), nil },
		},
		{
			SrcType: booking.TimeOfDay{},
			DstType: copier.String,
			Fn:      func(src any) (any, error) { return src.(booking.TimeOfDay).String(), nil },
		},
		{
			SrcType: menu.Price{},
			DstType: copier.String,
			Fn:      func(src any) (any, error) { return src.(menu.Price).String(), nil },
		},
		{
			SrcType: menu.Category(""),
			DstType: copier.String,
			Fn:      func(src any) (any, error) { return src.(menu.Category).String(), nil },
		},
	},
}

// BookingResponse mirrors the bookings row, hence snake_case.
type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	CustomerName    string    `json:"customer_name"`
	Phone           string    `json:"phone"`
	BookingDate     string    `json:"booking_date" copier:"Date" example:"2025-06-01"`
	BookingTime     string    `json:"booking_time" copier:"Time" example:"10:00"`
	NumberOfPeople  int       `json:"number_of_people" copier:"PartySize"`
	SpecialRequests *string   `json:"special_requests"`
	Status          string    `json:"status" example:"pending"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CreateBookingResponse struct {
	Message   string    `json:"message" example:"Booking created successfully"`
	BookingID uuid.UUID `json:"bookingId"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var resp BookingResponse
	if err := copier.CopyWithOption(&resp, v, viewCopyOption); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromBookingViews(views []*queries.BookingView) ([]*BookingResponse, error) {
	out := make([]*BookingResponse, 0, len(views))
	for _, v := range views {
		resp, err := FromBookingView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}
