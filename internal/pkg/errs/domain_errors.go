package errs

import "errors"

// Sentinel errors shared by the usecase layers. Commands and queries translate
// infra error kinds into these; handlers branch on them with errors.Is.
var (
	// Inventory errors
	ErrRoomNotFound    = errors.New("room not found")
	ErrVenueNotFound   = errors.New("venue not found")
	ErrRoomNumberTaken = errors.New("room number already in use")

	// Booking errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrBookingConflict  = errors.New("resource unavailable for requested range")
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
