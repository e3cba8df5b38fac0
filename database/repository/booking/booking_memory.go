package bookingRepo

import (
	"context"
	"sync"

	"petsitter/models"
)

// MemoryBookingRepo is an in-memory BookingRepository used in tests and as
// a fallback when no database is configured.
type MemoryBookingRepo struct {
	mu       sync.RWMutex
	bookings []models.Booking
}

func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{}
}

func (r *MemoryBookingRepo) All(ctx context.Context) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out, nil
}

func (r *MemoryBookingRepo) Insert(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append([]models.Booking{*booking}, r.bookings...)
	return nil
}

func (r *MemoryBookingRepo) UpdateStatus(ctx context.Context, id int64, status models.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings[i].Status = status
			break
		}
	}
	return nil
}
