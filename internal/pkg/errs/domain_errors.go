package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Booking errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrCapacityExceeded = errors.New("time slot is fully booked")
	ErrInvalidStatus    = errors.New("invalid booking status")

	// Storage errors
	ErrStorageFailure = errors.New("storage operation failed")
	ErrStorageTimeout = errors.New("storage operation timed out")
)
