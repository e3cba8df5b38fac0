package bookingRepo

import (
	"context"

	"petsitter/models"
)

// BookingRepository persists the booking ledger. Entries are append-only;
// only the status field is ever updated.
type BookingRepository interface {
	// All returns the full ledger, newest first.
	All(ctx context.Context) ([]models.Booking, error)
	// Insert stores a newly finalized booking.
	Insert(ctx context.Context, booking *models.Booking) error
	// UpdateStatus replaces the status of the matching entry.
	UpdateStatus(ctx context.Context, id int64, status models.BookingStatus) error
}
