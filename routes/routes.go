package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"petsitter/handlers"
	"petsitter/middleware"
)

// RegisterSitterRoutes registers the sitter-listing endpoints.
func RegisterSitterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sitters")
	{
		api.GET("", hb.ListSittersHandler)
		api.GET("/facets", hb.SitterFacetsHandler)
		api.GET("/:id", hb.GetSitterHandler)
		api.POST("", hb.AddSitterHandler)
		api.POST("/:id/favorite", hb.FavoriteSitterHandler)
	}
}

// RegisterPetAdRoutes registers the pet-sitting-request endpoints.
func RegisterPetAdRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/petads")
	{
		api.GET("", hb.ListPetAdsHandler)
		api.GET("/facets", hb.PetAdFacetsHandler)
		api.GET("/:id", hb.GetPetAdHandler)
		api.POST("", hb.AddPetAdHandler)
		api.POST("/:id/favorite", hb.FavoritePetAdHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	draftGroup := r.Group("/api/booking")
	{
		draftGroup.POST("/initialize", hb.InitializeDraftHandler)
		draftGroup.GET("/draft", hb.GetDraftHandler)
		draftGroup.PATCH("/draft", hb.UpdateDraftHandler)
		draftGroup.PUT("/step", hb.SetStepHandler)
		draftGroup.POST("/confirm", hb.ConfirmBookingHandler)
		draftGroup.DELETE("/draft", hb.ClearDraftHandler)
	}

	ledgerGroup := r.Group("/api/bookings")
	{
		ledgerGroup.GET("", hb.ListBookingsHandler)
		ledgerGroup.GET("/:id", hb.GetBookingHandler)
		ledgerGroup.PUT("/:id/status", hb.SetBookingStatusHandler)
		ledgerGroup.POST("/:id/cancel", hb.CancelBookingHandler)
	}
}

// RegisterSupportRoutes registers breed lookup, preferences and contact
// composition.
func RegisterSupportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/breeds/:petType", hb.BreedInfoHandler)

	prefs := r.Group("/api/preferences")
	{
		prefs.GET("/darkmode", hb.GetDarkModeHandler)
		prefs.PUT("/darkmode", hb.SetDarkModeHandler)
	}

	r.POST("/api/contact/compose", hb.ComposeContactHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "petsitter up"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.ProfileHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.ProfileHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.ProfileMiddleware())

	RegisterHealthRoute(r)
	RegisterSitterRoutes(r, hb)
	RegisterPetAdRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterSupportRoutes(r, hb)
}
