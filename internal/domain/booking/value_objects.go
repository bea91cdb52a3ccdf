package booking

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"barista-cafe-api/internal/pkg/errs"
)

const (
	MaxCustomerNameLength = 100
	MaxPhoneLength        = 20
	MinPartySize          = 1
	MaxPartySize          = 20

	dateLayout = "2006-01-02"
)

var (
	ErrEmptyCustomerName   = errs.New("customer name is required")
	ErrCustomerNameTooLong = errs.New("customer name is too long")
	ErrEmptyPhone          = errs.New("phone is required")
	ErrPhoneTooLong        = errs.New("phone is too long")
	ErrInvalidDate         = errs.New("date must be an ISO-8601 calendar date")
	ErrInvalidTime         = errs.New("time must be HH:MM in 24h format")
	ErrInvalidPartySize    = errs.New("party size must be between 1 and 20")
)

var timeOfDayPattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):([0-5][0-9])$`)

type CustomerName struct {
	value string
}

func NewCustomerName(s string) (CustomerName, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return CustomerName{}, ErrEmptyCustomerName
	}
	if utf8.RuneCountInString(v) > MaxCustomerNameLength {
		return CustomerName{}, ErrCustomerNameTooLong
	}
	return CustomerName{value: v}, nil
}

func (n CustomerName) String() string { return n.value }

type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return Phone{}, ErrEmptyPhone
	}
	if utf8.RuneCountInString(v) > MaxPhoneLength {
		return Phone{}, ErrPhoneTooLong
	}
	return Phone{value: v}, nil
}

func (p Phone) String() string { return p.value }

type PartySize struct {
	value int
}

func NewPartySize(n int) (PartySize, error) {
	if n < MinPartySize || n > MaxPartySize {
		return PartySize{}, ErrInvalidPartySize
	}
	return PartySize{value: n}, nil
}

func (p PartySize) Value() int { return p.value }

// Date is a calendar date without a time-of-day component, held at UTC midnight.
type Date struct {
	t time.Time
}

// ParseDate accepts a plain date or a full RFC 3339 timestamp, keeping the date part as written.
func ParseDate(s string) (Date, error) {
	v := strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, v); err == nil {
		return Date{t: t}, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return NewDate(t), nil
	}
	return Date{}, ErrInvalidDate
}

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) Time() time.Time { return d.t }
func (d Date) IsZero() bool    { return d.t.IsZero() }
func (d Date) String() string  { return d.t.Format(dateLayout) }

// TimeOfDay has minute resolution.
type TimeOfDay struct {
	minutes int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	m := timeOfDayPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return TimeOfDay{}, ErrInvalidTime
	}
	h, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	return TimeOfDay{minutes: h*60 + mm}, nil
}

func TimeOfDayFromMinutes(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes >= 24*60 {
		return TimeOfDay{}, ErrInvalidTime
	}
	return TimeOfDay{minutes: minutes}, nil
}

func (t TimeOfDay) Minutes() int { return t.minutes }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}
