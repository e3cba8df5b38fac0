package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"petsitter/middleware"
	"petsitter/models"
	"petsitter/services/booking"
	"petsitter/services/catalog"
	"petsitter/utils"
)

// InitializeDraftHandler starts a new draft for the selected listing,
// replacing any draft in progress.
func InitializeDraftHandler(session booking.SessionService, listings catalog.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			ServiceID   int64              `json:"serviceId"`
			ServiceKind models.ListingKind `json:"serviceType"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		if input.ServiceKind == "" {
			input.ServiceKind = models.KindSitter
		}

		listing := listings.ListingByID(input.ServiceKind, input.ServiceID)
		c.JSON(http.StatusOK, session.Initialize(c.Request.Context(), middleware.ProfileID(c), listing))
	}
}

// GetDraftHandler returns the current draft, empty when none exists.
func GetDraftHandler(session booking.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, session.Draft(c.Request.Context(), middleware.ProfileID(c)))
	}
}

// UpdateDraftHandler merges the posted fields into the draft and returns the
// draft with recomputed totals.
func UpdateDraftHandler(session booking.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var upd models.DraftUpdate
		if err := c.ShouldBindJSON(&upd); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid draft update", err.Error())
			return
		}
		c.JSON(http.StatusOK, session.Update(c.Request.Context(), middleware.ProfileID(c), upd))
	}
}

// SetStepHandler moves the draft to the requested form step.
func SetStepHandler(session booking.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Step int `json:"step"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid step payload", err.Error())
			return
		}
		c.JSON(http.StatusOK, session.SetStep(c.Request.Context(), middleware.ProfileID(c), input.Step))
	}
}

// ConfirmBookingHandler finalizes a complete draft into a pending booking.
func ConfirmBookingHandler(session booking.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		created, err := session.Finalize(c.Request.Context(), middleware.ProfileID(c))
		if err != nil {
			if errors.Is(err, booking.ErrDraftIncomplete) {
				utils.JSONError(c, http.StatusUnprocessableEntity, "booking draft is incomplete", "complete all form steps before confirming")
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "failed to confirm booking", err.Error())
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// ClearDraftHandler discards the draft without creating a booking.
func ClearDraftHandler(session booking.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session.Clear(c.Request.Context(), middleware.ProfileID(c))
		c.JSON(http.StatusOK, gin.H{"status": "cleared"})
	}
}

// ListBookingsHandler returns the ledger, newest first.
func ListBookingsHandler(ledger booking.LedgerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, ledger.Bookings())
	}
}

// GetBookingHandler returns one ledger entry by id.
func GetBookingHandler(ledger booking.LedgerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid booking id", c.Param("id"))
			return
		}
		b, err := ledger.BookingByID(id)
		if err != nil {
			utils.JSONError(c, http.StatusNotFound, "booking not found", c.Param("id"))
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

// SetBookingStatusHandler moves a booking through its lifecycle.
func SetBookingStatusHandler(ledger booking.LedgerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid booking id", c.Param("id"))
			return
		}
		var input struct {
			Status models.BookingStatus `json:"status"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid status payload", err.Error())
			return
		}
		if err := ledger.SetStatus(id, input.Status); err != nil {
			status := http.StatusInternalServerError
			switch {
			case errors.Is(err, booking.ErrInvalidStatus):
				status = http.StatusBadRequest
			case errors.Is(err, booking.ErrTerminalStatus):
				status = http.StatusConflict
			}
			utils.JSONError(c, status, "failed to update booking status", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "updated"})
	}
}

// CancelBookingHandler cancels a booking.
func CancelBookingHandler(ledger booking.LedgerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid booking id", c.Param("id"))
			return
		}
		if err := ledger.Cancel(id); err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, booking.ErrTerminalStatus) {
				status = http.StatusConflict
			}
			utils.JSONError(c, status, "failed to cancel booking", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
	}
}
