package booking

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	bookingRepo "petsitter/database/repository/booking"
	"petsitter/models"
)

// DefaultLedgerService keeps the booking ledger in memory, newest first, and
// mirrors every change to the repository. Repository failures are logged and
// the in-memory ledger stays authoritative for the session.
type DefaultLedgerService struct {
	repo   bookingRepo.BookingRepository
	logger *zap.Logger

	mu       sync.RWMutex
	bookings []models.Booking
}

// NewDefaultLedgerService loads any persisted bookings into memory. A repo
// failure leaves the ledger empty rather than blocking startup.
func NewDefaultLedgerService(repo bookingRepo.BookingRepository, logger *zap.Logger) *DefaultLedgerService {
	s := &DefaultLedgerService{repo: repo, logger: logger}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	persisted, err := repo.All(ctx)
	if err != nil {
		logger.Error("Failed to load booking ledger, starting empty", zap.Error(err))
		return s
	}
	s.bookings = persisted
	return s
}

func (s *DefaultLedgerService) Create(booking *models.Booking) {
	s.mu.Lock()
	s.bookings = append([]models.Booking{*booking}, s.bookings...)
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.repo.Insert(ctx, booking); err != nil {
		s.logger.Error("Failed to persist booking", zap.Int64("booking", booking.ID), zap.Error(err))
	}
}

func (s *DefaultLedgerService) Bookings() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

func (s *DefaultLedgerService) BookingByID(id int64) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			b := s.bookings[i]
			return &b, nil
		}
	}
	return nil, ErrBookingNotFound
}

// SetStatus moves a booking to the given status. Missing ids are a no-op;
// terminal bookings reject further changes.
func (s *DefaultLedgerService) SetStatus(id int64, status models.BookingStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	s.mu.Lock()
	idx := -1
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return nil
	}
	if s.bookings[idx].Status.Terminal() {
		s.mu.Unlock()
		return ErrTerminalStatus
	}
	s.bookings[idx].Status = status
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		s.logger.Error("Failed to persist booking status", zap.Int64("booking", id), zap.Error(err))
	}
	return nil
}

func (s *DefaultLedgerService) Cancel(id int64) error {
	return s.SetStatus(id, models.StatusCancelled)
}
