package queries

import (
	"time"

	"barista-cafe-api/internal/domain/booking"
	"barista-cafe-api/internal/domain/menu"

	"github.com/google/uuid"
)

// BookingView represents read-optimized booking data
type BookingView struct {
	ID              uuid.UUID
	CustomerName    string
	Phone           string
	Date            booking.Date
	Time            booking.TimeOfDay
	PartySize       int
	SpecialRequests *string
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// MenuItemView represents read-optimized menu data
type MenuItemView struct {
	ID            uuid.UUID
	Name          string
	Description   string
	Price         menu.Price
	Category      menu.Category
	IsAvailable   bool
	IsRecommended bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
