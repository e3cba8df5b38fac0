package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petsitter/services/petapi"
	"petsitter/utils"
)

// BreedInfoHandler looks up breed details for a pet type. A missing breed
// is not an error; the client renders "no info available" for null.
func BreedInfoHandler(breeds petapi.BreedService) gin.HandlerFunc {
	return func(c *gin.Context) {
		petType := c.Param("petType")
		breed := c.Query("breed")
		if breed == "" {
			utils.JSONError(c, http.StatusBadRequest, "missing breed query parameter", "")
			return
		}
		info, err := breeds.BreedInfo(c.Request.Context(), petType, breed)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "breed lookup failed", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"breedInfo": info})
	}
}
