package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	bookingRepoPkg "petsitter/database/repository/booking"
	listingRepoPkg "petsitter/database/repository/listing"
	"petsitter/middleware"
	"petsitter/models"
	"petsitter/services/booking"
	"petsitter/services/catalog"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	listings := catalog.NewDefaultListingService(
		listingRepoPkg.NewMemoryListingRepo(),
		catalog.NewMemoryFavoriteStore(),
		zap.NewNop(),
	)
	ledger := booking.NewDefaultLedgerService(bookingRepoPkg.NewMemoryBookingRepo(), zap.NewNop())
	session := booking.NewDefaultSessionService(booking.NewMemoryDraftStore(), ledger, nil, zap.NewNop())

	r := gin.New()
	r.Use(middleware.ProfileMiddleware())

	r.POST("/api/booking/initialize", InitializeDraftHandler(session, listings))
	r.GET("/api/booking/draft", GetDraftHandler(session))
	r.PATCH("/api/booking/draft", UpdateDraftHandler(session))
	r.POST("/api/booking/confirm", ConfirmBookingHandler(session))
	r.GET("/api/bookings", ListBookingsHandler(ledger))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, profile, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if profile != "" {
		req.Header.Set(middleware.ProfileHeader, profile)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBookingFlowOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	profile := "test-profile"

	// initialize against seed listing 1 (price 25)
	w := doJSON(t, r, http.MethodPost, "/api/booking/initialize", profile,
		`{"serviceId": 1, "serviceType": "sitter"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// premature confirm is rejected
	w = doJSON(t, r, http.MethodPost, "/api/booking/confirm", profile, "")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// fill the remaining steps
	w = doJSON(t, r, http.MethodPatch, "/api/booking/draft", profile, `{
		"startDate": "2026-02-10",
		"endDate": "2026-02-12",
		"petName": "Rex",
		"petType": "dog",
		"ownerName": "Ion Popescu",
		"ownerEmail": "ion@example.com",
		"ownerPhone": "0712345678",
		"ownerAddress": "Str. Florilor 3"
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	var draft models.BookingDraft
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &draft))
	require.Equal(t, 3, draft.TotalDays)
	require.Equal(t, 75.0, draft.TotalPrice)

	w = doJSON(t, r, http.MethodPost, "/api/booking/confirm", profile, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, models.StatusPending, created.Status)

	// ledger has the booking, draft is cleared
	w = doJSON(t, r, http.MethodGet, "/api/bookings", profile, "")
	require.Equal(t, http.StatusOK, w.Code)
	var all []models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	require.Len(t, all, 1)

	w = doJSON(t, r, http.MethodGet, "/api/booking/draft", profile, "")
	require.Equal(t, http.StatusOK, w.Code)
	var cleared models.BookingDraft
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cleared))
	require.Zero(t, cleared.ServiceID)
}

func TestProfileHeaderIsMintedWhenAbsent(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/booking/draft", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Header().Get(middleware.ProfileHeader))
}

func TestDraftsAreScopedPerProfile(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/booking/initialize", "profile-a",
		`{"serviceId": 2, "serviceType": "sitter"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/booking/draft", "profile-b", "")
	require.Equal(t, http.StatusOK, w.Code)
	var draft models.BookingDraft
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &draft))
	require.Zero(t, draft.ServiceID)
}
