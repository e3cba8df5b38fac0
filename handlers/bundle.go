package handlers

import (
	"github.com/gin-gonic/gin"

	"petsitter/models"
	"petsitter/services/booking"
	"petsitter/services/catalog"
	"petsitter/services/petapi"
	"petsitter/services/preferences"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Catalog endpoints, one set per listing kind
	ListSittersHandler    gin.HandlerFunc
	GetSitterHandler      gin.HandlerFunc
	AddSitterHandler      gin.HandlerFunc
	FavoriteSitterHandler gin.HandlerFunc
	SitterFacetsHandler   gin.HandlerFunc

	ListPetAdsHandler    gin.HandlerFunc
	GetPetAdHandler      gin.HandlerFunc
	AddPetAdHandler      gin.HandlerFunc
	FavoritePetAdHandler gin.HandlerFunc
	PetAdFacetsHandler   gin.HandlerFunc

	// Booking draft endpoints
	InitializeDraftHandler gin.HandlerFunc
	GetDraftHandler        gin.HandlerFunc
	UpdateDraftHandler     gin.HandlerFunc
	SetStepHandler         gin.HandlerFunc
	ConfirmBookingHandler  gin.HandlerFunc
	ClearDraftHandler      gin.HandlerFunc

	// Ledger endpoints
	ListBookingsHandler     gin.HandlerFunc
	GetBookingHandler       gin.HandlerFunc
	SetBookingStatusHandler gin.HandlerFunc
	CancelBookingHandler    gin.HandlerFunc

	// Supporting endpoints
	BreedInfoHandler      gin.HandlerFunc
	GetDarkModeHandler    gin.HandlerFunc
	SetDarkModeHandler    gin.HandlerFunc
	ComposeContactHandler gin.HandlerFunc
}

// NewHandlerBundle wires every handler to its service.
func NewHandlerBundle(
	listings catalog.ListingService,
	session booking.SessionService,
	ledger booking.LedgerService,
	breeds petapi.BreedService,
	prefs preferences.PreferenceService,
) *HandlerBundle {
	return &HandlerBundle{
		ListSittersHandler:    ListListingsHandler(listings, models.KindSitter),
		GetSitterHandler:      GetListingHandler(listings, models.KindSitter),
		AddSitterHandler:      AddListingHandler(listings, models.KindSitter),
		FavoriteSitterHandler: FavoriteListingHandler(listings, models.KindSitter),
		SitterFacetsHandler:   ListingFacetsHandler(listings, models.KindSitter),

		ListPetAdsHandler:    ListListingsHandler(listings, models.KindPetAd),
		GetPetAdHandler:      GetListingHandler(listings, models.KindPetAd),
		AddPetAdHandler:      AddListingHandler(listings, models.KindPetAd),
		FavoritePetAdHandler: FavoriteListingHandler(listings, models.KindPetAd),
		PetAdFacetsHandler:   ListingFacetsHandler(listings, models.KindPetAd),

		InitializeDraftHandler: InitializeDraftHandler(session, listings),
		GetDraftHandler:        GetDraftHandler(session),
		UpdateDraftHandler:     UpdateDraftHandler(session),
		SetStepHandler:         SetStepHandler(session),
		ConfirmBookingHandler:  ConfirmBookingHandler(session),
		ClearDraftHandler:      ClearDraftHandler(session),

		ListBookingsHandler:     ListBookingsHandler(ledger),
		GetBookingHandler:       GetBookingHandler(ledger),
		SetBookingStatusHandler: SetBookingStatusHandler(ledger),
		CancelBookingHandler:    CancelBookingHandler(ledger),

		BreedInfoHandler:      BreedInfoHandler(breeds),
		GetDarkModeHandler:    GetDarkModeHandler(prefs),
		SetDarkModeHandler:    SetDarkModeHandler(prefs),
		ComposeContactHandler: ComposeContactHandler(listings),
	}
}
