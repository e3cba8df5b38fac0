package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	bookingRepo "petsitter/database/repository/booking"
	"petsitter/models"
)

const testProfile = "profile-1"

func str(s string) *string { return &s }

func newTestSession(t *testing.T) (*DefaultSessionService, *DefaultLedgerService) {
	t.Helper()
	ledger := NewDefaultLedgerService(bookingRepo.NewMemoryBookingRepo(), zap.NewNop())
	session := NewDefaultSessionService(NewMemoryDraftStore(), ledger, nil, zap.NewNop())
	return session, ledger
}

func testListing() models.Listing {
	return models.Listing{
		ID:    5,
		Kind:  models.KindSitter,
		Name:  "Cristina Georgescu",
		Price: 25,
	}
}

func TestInitializeStartsAtStepOne(t *testing.T) {
	session, _ := newTestSession(t)
	ctx := context.Background()

	draft := session.Initialize(ctx, testProfile, testListing())
	require.Equal(t, int64(5), draft.ServiceID)
	require.Equal(t, "Cristina Georgescu", draft.ServiceName)
	require.Equal(t, 25.0, draft.ServicePrice)
	require.Equal(t, 1, draft.CurrentStep)
	require.Zero(t, draft.TotalDays)
	require.Zero(t, draft.TotalPrice)
}

func TestInitializeReplacesExistingDraft(t *testing.T) {
	session, _ := newTestSession(t)
	ctx := context.Background()

	session.Initialize(ctx, testProfile, testListing())
	session.Update(ctx, testProfile, models.DraftUpdate{OwnerName: str("Ion")})

	other := testListing()
	other.ID = 7
	draft := session.Initialize(ctx, testProfile, other)
	require.Equal(t, int64(7), draft.ServiceID)
	require.Empty(t, draft.OwnerName)
}

func TestDraftReturnsEmptyWhenNoneStored(t *testing.T) {
	session, _ := newTestSession(t)

	draft := session.Draft(context.Background(), "unknown-profile")
	require.Equal(t, 1, draft.CurrentStep)
	require.Zero(t, draft.ServiceID)
}

func TestUpdateComputesStayLengthAndTotal(t *testing.T) {
	session, _ := newTestSession(t)
	ctx := context.Background()

	session.Initialize(ctx, testProfile, testListing())

	draft := session.Update(ctx, testProfile, models.DraftUpdate{
		StartDate: str("2026-02-10"),
		EndDate:   str("2026-02-12"),
	})
	require.Equal(t, 3, draft.TotalDays)
	require.Equal(t, 75.0, draft.TotalPrice)
}

func TestUpdateSameDayStayIsOneDay(t *testing.T) {
	session, _ := newTestSession(t)
	ctx := context.Background()

	session.Initialize(ctx, testProfile, testListing())

	draft := session.Update(ctx, testProfile, models.DraftUpdate{
		StartDate: str("2026-02-10"),
		EndDate:   str("2026-02-10"),
	})
	require.Equal(t, 1, draft.TotalDays)
	require.Equal(t, 25.0, draft.TotalPrice)
}

func TestUpdateReversedDatesStillComputes(t *testing.T) {
	session, _ := newTestSession(t)
	ctx := context.Background()

	session.Initialize(ctx, testProfile, testListing())

	draft := session.Update(ctx, testProfile, models.DraftUpdate{
		StartDate: str("2026-02-12"),
		EndDate:   str("2026-02-10"),
	})
	require.Equal(t, 3, draft.TotalDays)
}

func TestUpdateSingleDateLeavesDerivedUnset(t *testing.T) {
	session, _ := newTestSession(t)
	ctx := context.Background()

	session.Initialize(ctx, testProfile, testListing())

	draft := session.Update(ctx, testProfile, models.DraftUpdate{
		StartDate: str("2026-02-10"),
	})
	require.Zero(t, draft.TotalDays)
	require.Zero(t, draft.TotalPrice)
}

func TestUpdateRecomputesOnDateChange(t *testing.T) {
	session, _ := newTestSession(t)
	ctx := context.Background()

	session.Initialize(ctx, testProfile, testListing())

	session.Update(ctx, testProfile, models.DraftUpdate{
		StartDate: str("2026-02-10"),
		EndDate:   str("2026-02-12"),
	})
	draft := session.Update(ctx, testProfile, models.DraftUpdate{
		EndDate: str("2026-02-14"),
	})
	require.Equal(t, 5, draft.TotalDays)
	require.Equal(t, 125.0, draft.TotalPrice)
}

func TestSetStepClampsToRange(t *testing.T) {
	session, _ := newTestSession(t)
	ctx := context.Background()

	session.Initialize(ctx, testProfile, testListing())

	require.Equal(t, 1, session.SetStep(ctx, testProfile, 0).CurrentStep)
	require.Equal(t, 4, session.SetStep(ctx, testProfile, 9).CurrentStep)
	require.Equal(t, 3, session.SetStep(ctx, testProfile, 3).CurrentStep)
}

// brokenDraftStore reads fine but fails every write.
type brokenDraftStore struct {
	*MemoryDraftStore
}

func (s *brokenDraftStore) Save(context.Context, string, *models.BookingDraft) error {
	return errors.New("store down")
}

func (s *brokenDraftStore) Delete(context.Context, string) error {
	return errors.New("store down")
}

func TestStoreWriteFailuresAreNotSurfaced(t *testing.T) {
	ledger := NewDefaultLedgerService(bookingRepo.NewMemoryBookingRepo(), zap.NewNop())
	session := NewDefaultSessionService(&brokenDraftStore{NewMemoryDraftStore()}, ledger, nil, zap.NewNop())
	ctx := context.Background()

	// the caller still gets a usable draft back from every operation
	draft := session.Initialize(ctx, testProfile, testListing())
	require.Equal(t, int64(5), draft.ServiceID)

	draft = session.Update(ctx, testProfile, models.DraftUpdate{StartDate: str("2026-02-10")})
	require.Equal(t, "2026-02-10", draft.StartDate)

	session.Clear(ctx, testProfile)
}

func TestClearRemovesDraft(t *testing.T) {
	session, _ := newTestSession(t)
	ctx := context.Background()

	session.Initialize(ctx, testProfile, testListing())
	session.Clear(ctx, testProfile)

	draft := session.Draft(ctx, testProfile)
	require.Zero(t, draft.ServiceID)
}
