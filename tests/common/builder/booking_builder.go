//go:build unit || e2e

package builder

import (
	"encoding/json"
	"strconv"
	"time"

	"barista-cafe-api/internal/domain/booking"
	reqdto "barista-cafe-api/internal/handler/dto/request"
	sqlc "barista-cafe-api/internal/infra/sqlc/generated"
	"barista-cafe-api/internal/pkg/pgconv"
	"barista-cafe-api/internal/usecase/commands"
	"barista-cafe-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID              uuid.UUID
	CustomerName    string
	Phone           string
	Date            string
	Time            string
	People          int
	SpecialRequests *string
	Status          booking.Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:           uuid.New(),
		CustomerName: "Ana",
		Phone:        "555-1234",
		Date:         "2025-06-01",
		Time:         "10:00",
		People:       2,
		Status:       booking.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	date, err := booking.ParseDate(b.Date)
	if err != nil {
		return nil, err
	}
	at, err := booking.ParseTimeOfDay(b.Time)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.CustomerName, b.Phone, date, at, b.People, b.SpecialRequests, b.CreatedAt)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Name:    b.CustomerName,
		Phone:   b.Phone,
		Date:    b.Date,
		Time:    b.Time,
		People:  json.Number(strconv.Itoa(b.People)),
		Message: b.SpecialRequests,
	}
}

func (b *BookingBuilder) BuildCreateInput() commands.CreateBookingInput {
	date, _ := booking.ParseDate(b.Date)
	at, _ := booking.ParseTimeOfDay(b.Time)
	return commands.CreateBookingInput{
		CustomerName:    b.CustomerName,
		Phone:           b.Phone,
		Date:            date,
		Time:            at,
		PartySize:       b.People,
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	date, _ := booking.ParseDate(b.Date)
	at, _ := booking.ParseTimeOfDay(b.Time)
	return &queries.BookingView{
		ID:              b.ID,
		CustomerName:    b.CustomerName,
		Phone:           b.Phone,
		Date:            date,
		Time:            at,
		PartySize:       b.People,
		SpecialRequests: b.SpecialRequests,
		Status:          b.Status.String(),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildInfra() sqlc.Booking {
	date, _ := booking.ParseDate(b.Date)
	at, _ := booking.ParseTimeOfDay(b.Time)
	return sqlc.Booking{
		ID:              b.ID,
		CustomerName:    b.CustomerName,
		Phone:           b.Phone,
		BookingDate:     pgconv.DateToPgtype(date.Time()),
		BookingTime:     pgconv.ClockToPgtype(at.Minutes()),
		NumberOfPeople:  int32(b.People),
		SpecialRequests: pgconv.StringPtrToPgtype(b.SpecialRequests),
		Status:          b.Status.String(),
		CreatedAt:       pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithCustomerName(name string) *BookingBuilder {
	b.CustomerName = name
	return b
}

func (b *BookingBuilder) WithPhone(phone string) *BookingBuilder {
	b.Phone = phone
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithTime(t string) *BookingBuilder {
	b.Time = t
	return b
}

func (b *BookingBuilder) WithPeople(n int) *BookingBuilder {
	b.People = n
	return b
}

func (b *BookingBuilder) WithSpecialRequests(s string) *BookingBuilder {
	b.SpecialRequests = &s
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = booking.StatusCancelled
	return b
}
