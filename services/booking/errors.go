package booking

import "errors"

var (
	// ErrDraftIncomplete is returned when finalize runs before every step
	// of the draft passes validation.
	ErrDraftIncomplete = errors.New("booking draft is incomplete")
	// ErrBookingNotFound is returned when no ledger entry matches the id.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrInvalidStatus is returned for a status outside the known lifecycle.
	ErrInvalidStatus = errors.New("invalid booking status")
	// ErrTerminalStatus is returned when a cancelled or completed booking
	// is asked to change status again.
	ErrTerminalStatus = errors.New("booking is in a terminal status")
)
