package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	bookingRepo "petsitter/database/repository/booking"
	"petsitter/models"
)

// fillDraft walks a draft through every step so it can be finalized.
func fillDraft(t *testing.T, session *DefaultSessionService) {
	t.Helper()
	ctx := context.Background()
	session.Initialize(ctx, testProfile, testListing())
	session.Update(ctx, testProfile, models.DraftUpdate{
		StartDate:    str("2026-02-10"),
		EndDate:      str("2026-02-12"),
		PetName:      str("Rex"),
		PetType:      str("dog"),
		OwnerName:    str("Ion Popescu"),
		OwnerEmail:   str("ion@example.com"),
		OwnerPhone:   str("0712345678"),
		OwnerAddress: str("Str. Florilor 3, București"),
	})
}

func TestFinalizeCreatesPendingBookingAndClearsDraft(t *testing.T) {
	session, ledger := newTestSession(t)
	ctx := context.Background()
	fillDraft(t, session)

	created, err := session.Finalize(ctx, testProfile)
	require.NoError(t, err)
	require.Equal(t, models.StatusPending, created.Status)
	require.Equal(t, 3, created.TotalDays)
	require.Equal(t, 75.0, created.TotalPrice)

	all := ledger.Bookings()
	require.Len(t, all, 1)
	require.Equal(t, created.ID, all[0].ID)

	// the draft is gone, so confirming again fails
	_, err = session.Finalize(ctx, testProfile)
	require.ErrorIs(t, err, ErrDraftIncomplete)
}

func TestFinalizeRejectsIncompleteDraft(t *testing.T) {
	session, ledger := newTestSession(t)
	ctx := context.Background()

	session.Initialize(ctx, testProfile, testListing())

	_, err := session.Finalize(ctx, testProfile)
	require.ErrorIs(t, err, ErrDraftIncomplete)
	require.Empty(t, ledger.Bookings())
}

func TestFinalizeRejectsMalformedDates(t *testing.T) {
	session, ledger := newTestSession(t)
	ctx := context.Background()

	fillDraft(t, session)
	session.Update(ctx, testProfile, models.DraftUpdate{StartDate: str("not-a-date")})

	_, err := session.Finalize(ctx, testProfile)
	require.ErrorIs(t, err, ErrDraftIncomplete)
	require.Empty(t, ledger.Bookings())
}

func TestLedgerNewestFirst(t *testing.T) {
	session, ledger := newTestSession(t)
	ctx := context.Background()

	fillDraft(t, session)
	first, err := session.Finalize(ctx, testProfile)
	require.NoError(t, err)

	fillDraft(t, session)
	second, err := session.Finalize(ctx, testProfile)
	require.NoError(t, err)

	all := ledger.Bookings()
	require.Equal(t, []int64{second.ID, first.ID}, []int64{all[0].ID, all[1].ID})
	require.Greater(t, second.ID, first.ID)
}

func TestBookingByID(t *testing.T) {
	session, ledger := newTestSession(t)
	fillDraft(t, session)
	created, err := session.Finalize(context.Background(), testProfile)
	require.NoError(t, err)

	got, err := ledger.BookingByID(created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)

	_, err = ledger.BookingByID(424242)
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestSetStatusLifecycle(t *testing.T) {
	session, ledger := newTestSession(t)
	fillDraft(t, session)
	created, err := session.Finalize(context.Background(), testProfile)
	require.NoError(t, err)

	require.NoError(t, ledger.SetStatus(created.ID, models.StatusConfirmed))
	got, err := ledger.BookingByID(created.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusConfirmed, got.Status)
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	session, ledger := newTestSession(t)
	fillDraft(t, session)
	created, err := session.Finalize(context.Background(), testProfile)
	require.NoError(t, err)

	require.ErrorIs(t, ledger.SetStatus(created.ID, "shipped"), ErrInvalidStatus)
}

func TestSetStatusAbsentIDIsNoop(t *testing.T) {
	_, ledger := newTestSession(t)
	require.NoError(t, ledger.SetStatus(424242, models.StatusConfirmed))
}

func TestTerminalStatusRejectsFurtherChanges(t *testing.T) {
	session, ledger := newTestSession(t)
	fillDraft(t, session)
	created, err := session.Finalize(context.Background(), testProfile)
	require.NoError(t, err)

	require.NoError(t, ledger.Cancel(created.ID))
	got, err := ledger.BookingByID(created.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusCancelled, got.Status)

	require.ErrorIs(t, ledger.SetStatus(created.ID, models.StatusConfirmed), ErrTerminalStatus)
	require.ErrorIs(t, ledger.Cancel(created.ID), ErrTerminalStatus)
}

func TestLedgerLoadsPersistedBookings(t *testing.T) {
	repo := bookingRepo.NewMemoryBookingRepo()
	ledger := NewDefaultLedgerService(repo, zap.NewNop())
	session := NewDefaultSessionService(NewMemoryDraftStore(), ledger, nil, zap.NewNop())

	fillDraft(t, session)
	created, err := session.Finalize(context.Background(), testProfile)
	require.NoError(t, err)

	// a fresh ledger over the same repo picks the booking back up
	reloaded := NewDefaultLedgerService(repo, zap.NewNop())
	got, err := reloaded.BookingByID(created.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusPending, got.Status)
}
