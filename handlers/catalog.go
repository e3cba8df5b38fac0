package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"petsitter/models"
	"petsitter/services/catalog"
	"petsitter/utils"
)

var errInvalidPrice = errors.New("invalid price bound")

// ListListingsHandler returns all listings of a kind, optionally filtered
// through query params (serviceType, location, minPrice, maxPrice).
func ListListingsHandler(svc catalog.ListingService, kind models.ListingKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		criteria, hasCriteria, err := criteriaFromQuery(c)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid filter criteria", err.Error())
			return
		}
		if hasCriteria {
			c.JSON(http.StatusOK, svc.Filter(kind, criteria))
			return
		}
		c.JSON(http.StatusOK, svc.Listings(kind))
	}
}

// GetListingHandler returns one listing by id. Unknown ids resolve to the
// first seed listing rather than a 404.
func GetListingHandler(svc catalog.ListingService, kind models.ListingKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid listing id", c.Param("id"))
			return
		}
		c.JSON(http.StatusOK, svc.ListingByID(kind, id))
	}
}

// AddListingHandler creates a new listing from the posted fields.
func AddListingHandler(svc catalog.ListingService, kind models.ListingKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input catalog.AddListingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid listing payload", err.Error())
			return
		}
		listing := svc.Add(kind, input)
		c.JSON(http.StatusCreated, listing)
	}
}

// FavoriteListingHandler flips the favorite flag of a listing.
func FavoriteListingHandler(svc catalog.ListingService, kind models.ListingKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid listing id", c.Param("id"))
			return
		}
		svc.ToggleFavorite(kind, id)
		c.JSON(http.StatusOK, svc.ListingByID(kind, id))
	}
}

// ListingFacetsHandler returns the distinct service types and locations
// present in the catalog, for building filter controls.
func ListingFacetsHandler(svc catalog.ListingService, kind models.ListingKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"serviceTypes": svc.ServiceTypes(kind),
			"locations":    svc.Locations(kind),
		})
	}
}

func criteriaFromQuery(c *gin.Context) (catalog.Criteria, bool, error) {
	var criteria catalog.Criteria
	has := false

	if v := c.Query("serviceType"); v != "" {
		criteria.ServiceType = v
		has = true
	}
	if v := c.Query("location"); v != "" {
		criteria.Location = v
		has = true
	}
	if v := c.Query("minPrice"); v != "" {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return criteria, false, errInvalidPrice
		}
		criteria.MinPrice = &min
		has = true
	}
	if v := c.Query("maxPrice"); v != "" {
		max, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return criteria, false, errInvalidPrice
		}
		criteria.MaxPrice = &max
		has = true
	}
	return criteria, has, nil
}
