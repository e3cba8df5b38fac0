package booking

import (
	"context"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"

	"petsitter/models"
)

const dateLayout = "2006-01-02"

// DefaultSessionService implements SessionService on top of a DraftStore.
// Store failures degrade to in-request state: the caller always gets a
// usable draft back and the failure is logged.
type DefaultSessionService struct {
	store    DraftStore
	ledger   LedgerService
	enqueuer ConfirmationEnqueuer
	logger   *zap.Logger

	mu     sync.Mutex
	lastID int64
}

// NewDefaultSessionService creates the draft service. enqueuer may be nil;
// finalization then skips the confirmation message.
func NewDefaultSessionService(store DraftStore, ledger LedgerService, enqueuer ConfirmationEnqueuer, logger *zap.Logger) *DefaultSessionService {
	return &DefaultSessionService{
		store:    store,
		ledger:   ledger,
		enqueuer: enqueuer,
		logger:   logger,
	}
}

func (s *DefaultSessionService) Initialize(ctx context.Context, profileID string, listing models.Listing) *models.BookingDraft {
	draft := models.EmptyDraft()
	draft.ServiceID = listing.ID
	draft.ServiceKind = listing.Kind
	draft.ServiceName = listing.Name
	draft.ServicePrice = listing.Price
	s.save(ctx, profileID, draft)
	return draft
}

func (s *DefaultSessionService) Draft(ctx context.Context, profileID string) *models.BookingDraft {
	draft, err := s.store.Get(ctx, profileID)
	if err != nil {
		s.logger.Error("Failed to load booking draft, using empty draft", zap.String("profile", profileID), zap.Error(err))
		return models.EmptyDraft()
	}
	if draft == nil {
		return models.EmptyDraft()
	}
	return draft
}

func (s *DefaultSessionService) Update(ctx context.Context, profileID string, upd models.DraftUpdate) *models.BookingDraft {
	draft := s.Draft(ctx, profileID)
	draft.Apply(upd)
	recompute(draft)
	s.save(ctx, profileID, draft)
	return draft
}

func (s *DefaultSessionService) SetStep(ctx context.Context, profileID string, step int) *models.BookingDraft {
	if step < 1 {
		step = 1
	}
	if step > 4 {
		step = 4
	}
	draft := s.Draft(ctx, profileID)
	draft.CurrentStep = step
	s.save(ctx, profileID, draft)
	return draft
}

func (s *DefaultSessionService) Finalize(ctx context.Context, profileID string) (*models.Booking, error) {
	draft, err := s.store.Get(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if draft == nil || !draftComplete(draft) {
		return nil, ErrDraftIncomplete
	}

	booking := models.BookingFromDraft(draft, s.nextID(), time.Now())
	s.ledger.Create(booking)

	if err := s.store.Delete(ctx, profileID); err != nil {
		s.logger.Error("Failed to clear booking draft after finalize", zap.String("profile", profileID), zap.Error(err))
	}
	if s.enqueuer != nil {
		if err := s.enqueuer.EnqueueBookingConfirmation(booking); err != nil {
			s.logger.Error("Failed to enqueue booking confirmation", zap.Int64("booking", booking.ID), zap.Error(err))
		}
	}
	return booking, nil
}

func (s *DefaultSessionService) Clear(ctx context.Context, profileID string) {
	if err := s.store.Delete(ctx, profileID); err != nil {
		s.logger.Error("Failed to clear booking draft", zap.String("profile", profileID), zap.Error(err))
	}
}

func (s *DefaultSessionService) save(ctx context.Context, profileID string, draft *models.BookingDraft) {
	if err := s.store.Save(ctx, profileID, draft); err != nil {
		s.logger.Error("Failed to save booking draft", zap.String("profile", profileID), zap.Error(err))
	}
}

// nextID issues wall-clock millisecond ids, bumped past the previous one so
// two finalizations in the same millisecond stay distinct.
func (s *DefaultSessionService) nextID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// recompute refreshes TotalDays and TotalPrice from the current dates and
// service price. The stay length counts both endpoints, so a same-day stay
// is one day; order of the two dates does not matter. Derived fields are
// only written once their inputs are present and parseable.
func recompute(d *models.BookingDraft) {
	start, errStart := time.Parse(dateLayout, d.StartDate)
	end, errEnd := time.Parse(dateLayout, d.EndDate)
	if errStart != nil || errEnd != nil {
		return
	}
	d.TotalDays = int(math.Ceil(math.Abs(end.Sub(start).Hours())/24)) + 1
	if d.ServicePrice > 0 && d.TotalDays > 0 {
		d.TotalPrice = d.ServicePrice * float64(d.TotalDays)
	}
}
