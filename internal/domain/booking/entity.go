package booking

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	id              uuid.UUID
	customerName    CustomerName
	phone           Phone
	date            Date
	time            TimeOfDay
	partySize       PartySize
	specialRequests *string
	status          Status
	createdAt       time.Time
	updatedAt       time.Time
}

// NewBooking returns a pending booking. The id stays uuid.Nil until the store assigns one.
func NewBooking(name, phone string, date Date, at TimeOfDay, people int, specialRequests *string, now time.Time) (*Booking, error) {
	customerName, err := NewCustomerName(name)
	if err != nil {
		return nil, err
	}
	ph, err := NewPhone(phone)
	if err != nil {
		return nil, err
	}
	if date.IsZero() {
		return nil, ErrInvalidDate
	}
	partySize, err := NewPartySize(people)
	if err != nil {
		return nil, err
	}

	return &Booking{
		customerName:    customerName,
		phone:           ph,
		date:            date,
		time:            at,
		partySize:       partySize,
		specialRequests: normalizeRequests(specialRequests),
		status:          StatusPending,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func normalizeRequests(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) CustomerName() string     { return b.customerName.String() }
func (b *Booking) Phone() string            { return b.phone.String() }
func (b *Booking) Date() Date               { return b.date }
func (b *Booking) Time() TimeOfDay          { return b.time }
func (b *Booking) PartySize() int           { return b.partySize.Value() }
func (b *Booking) SpecialRequests() *string { return b.specialRequests }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }

// Slot identifies the capacity unit this booking occupies.
func (b *Booking) Slot() Slot {
	return Slot{Date: b.date, Time: b.time}
}

// AssignID records the store-assigned identity after insert.
func (b *Booking) AssignID(id uuid.UUID) {
	b.id = id
}

type Slot struct {
	Date Date
	Time TimeOfDay
}

// Key is stable per (date, time) and used to serialise writers of the same slot.
func (s Slot) Key() string {
	return s.Date.String() + "|" + s.Time.String()
}
