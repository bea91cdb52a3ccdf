package booking

import (
	"strings"

	"barista-cafe-api/internal/pkg/errs"
)

var ErrInvalidStatus = errs.New("status must be one of pending, confirmed, cancelled, completed")

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// Any valid status may follow any other; no transition table is enforced.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.TrimSpace(s))
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
