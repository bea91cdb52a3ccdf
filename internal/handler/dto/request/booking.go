package request

import (
	"encoding/json"
	"strconv"
	"strings"

	"barista-cafe-api/internal/domain/booking"
	"barista-cafe-api/internal/handler/httperr"
	"barista-cafe-api/internal/pkg/errs"
	"barista-cafe-api/internal/usecase/commands"
)

type CreateBookingRequest struct {
	Name    string      `json:"name" example:"Ana"`
	Phone   string      `json:"phone" example:"555-1234"`
	Date    string      `json:"date" example:"2025-06-01"`
	Time    string      `json:"time" example:"10:00"`
	People  json.Number `json:"people" swaggertype:"integer" example:"2"`
	Message *string     `json:"message,omitempty" example:"Window seat"`
}

// ToInput validates every field and reports all failures together.
func (r CreateBookingRequest) ToInput() (commands.CreateBookingInput, []httperr.FieldError) {
	var fieldErrs []httperr.FieldError
	add := func(field, msg string) {
		fieldErrs = append(fieldErrs, httperr.FieldError{Field: field, Message: msg})
	}

	name, err := booking.NewCustomerName(r.Name)
	switch {
	case errs.Is(err, booking.ErrEmptyCustomerName):
		add("name", "Name is required")
	case err != nil:
		add("name", "Name must be at most 100 characters")
	}

	phone, err := booking.NewPhone(r.Phone)
	switch {
	case errs.Is(err, booking.ErrEmptyPhone):
		add("phone", "Phone is required")
	case err != nil:
		add("phone", "Phone must be at most 20 characters")
	}

	date, err := booking.ParseDate(strings.TrimSpace(r.Date))
	if err != nil {
		add("date", "Valid date is required")
	}

	at, err := booking.ParseTimeOfDay(strings.TrimSpace(r.Time))
	if err != nil {
		add("time", "Valid time is required")
	}

	people, err := strconv.Atoi(strings.TrimSpace(r.People.String()))
	if err != nil {
		add("people", "Number of people must be between 1 and 20")
	} else if _, err := booking.NewPartySize(people); err != nil {
		add("people", "Number of people must be between 1 and 20")
	}

	if len(fieldErrs) > 0 {
		return commands.CreateBookingInput{}, fieldErrs
	}

	return commands.CreateBookingInput{
		CustomerName:    name.String(),
		Phone:           phone.String(),
		Date:            date,
		Time:            at,
		PartySize:       people,
		SpecialRequests: r.Message,
	}, nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" example:"confirmed"`
}
