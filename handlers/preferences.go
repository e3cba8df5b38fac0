package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petsitter/middleware"
	"petsitter/services/preferences"
	"petsitter/utils"
)

// GetDarkModeHandler returns the profile's dark mode flag.
func GetDarkModeHandler(prefs preferences.PreferenceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		enabled := prefs.DarkMode(c.Request.Context(), middleware.ProfileID(c))
		c.JSON(http.StatusOK, gin.H{"darkMode": enabled})
	}
}

// SetDarkModeHandler stores the profile's dark mode flag.
func SetDarkModeHandler(prefs preferences.PreferenceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			DarkMode bool `json:"darkMode"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid preference payload", err.Error())
			return
		}
		if err := prefs.SetDarkMode(c.Request.Context(), middleware.ProfileID(c), input.DarkMode); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to save preference", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"darkMode": input.DarkMode})
	}
}
