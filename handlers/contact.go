package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petsitter/models"
	"petsitter/services/catalog"
	"petsitter/services/mailer"
	"petsitter/utils"
)

// ComposeContactHandler returns a pre-filled contact message for a listing.
// The client opens the mailto URL in the user's own mail program; nothing
// is sent server-side.
func ComposeContactHandler(listings catalog.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			ListingID   int64              `json:"listingId"`
			ListingKind models.ListingKind `json:"kind"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid contact payload", err.Error())
			return
		}
		if input.ListingKind == "" {
			input.ListingKind = models.KindSitter
		}
		listing := listings.ListingByID(input.ListingKind, input.ListingID)
		c.JSON(http.StatusOK, mailer.ComposeContact(listing))
	}
}
