package booking

import (
	"context"

	"petsitter/models"
)

// SessionService owns the per-profile booking draft: the multi-step form
// state accumulated between service selection and finalization.
type SessionService interface {
	// Initialize clears any prior draft and starts a new one at step 1
	// with the selected listing's identity and price.
	Initialize(ctx context.Context, profileID string, listing models.Listing) *models.BookingDraft
	// Draft returns the current draft, or a fresh empty one when none is
	// stored (or the store is unreachable).
	Draft(ctx context.Context, profileID string) *models.BookingDraft
	// Update merges the provided fields into the draft, recomputes the
	// derived stay length and total price, and persists the result.
	Update(ctx context.Context, profileID string, upd models.DraftUpdate) *models.BookingDraft
	// SetStep sets the current step, clamped to [1, 4].
	SetStep(ctx context.Context, profileID string, step int) *models.BookingDraft
	// Finalize converts a step-4-valid draft into a pending Booking,
	// appends it to the ledger and clears the draft.
	Finalize(ctx context.Context, profileID string) (*models.Booking, error)
	// Clear resets the draft without creating a booking.
	Clear(ctx context.Context, profileID string)
}

// LedgerService owns the finalized bookings, newest first. Entries are
// never deleted; only their status changes.
type LedgerService interface {
	Create(booking *models.Booking)
	Bookings() []models.Booking
	BookingByID(id int64) (*models.Booking, error)
	SetStatus(id int64, status models.BookingStatus) error
	Cancel(id int64) error
}

// DraftStore persists the singleton draft per profile.
type DraftStore interface {
	Get(ctx context.Context, profileID string) (*models.BookingDraft, error)
	Save(ctx context.Context, profileID string, draft *models.BookingDraft) error
	Delete(ctx context.Context, profileID string) error
}

// ConfirmationEnqueuer schedules the fire-and-forget booking confirmation
// message after a successful finalize.
type ConfirmationEnqueuer interface {
	EnqueueBookingConfirmation(booking *models.Booking) error
}
