package catalog

import (
	"context"

	"petsitter/models"
)

// ListingService owns the marketplace catalog: the built-in seed set plus
// user-added entries, with favorite toggling and filtered views.
type ListingService interface {
	// Listings returns all listings of a kind, user entries first.
	Listings(kind models.ListingKind) []models.Listing
	// ListingByID returns the matching listing. A miss resolves to the
	// first seed listing of the kind; lookups never report "not found".
	ListingByID(kind models.ListingKind, id int64) models.Listing
	// Add creates a listing with a fresh id and persists it.
	Add(kind models.ListingKind, input AddListingInput) models.Listing
	// ToggleFavorite flips the favorite flag and persists the favorited
	// id set for the kind.
	ToggleFavorite(kind models.ListingKind, id int64)
	// Filter returns the matching, sorted subset of Listings(kind).
	Filter(kind models.ListingKind, criteria Criteria) []models.Listing
	// ServiceTypes returns the distinct categories present in the catalog.
	ServiceTypes(kind models.ListingKind) []models.ServiceType
	// Locations returns the distinct locations present in the catalog.
	Locations(kind models.ListingKind) []string
}

// AddListingInput carries the caller-provided fields for a new listing.
// Field presence is the caller's responsibility; this layer accepts any
// well-typed payload.
type AddListingInput struct {
	Title       string             `json:"title"`
	Name        string             `json:"name"`
	Contact     string             `json:"contact"`
	Description string             `json:"description"`
	Location    string             `json:"location"`
	Price       float64            `json:"price"`
	ServiceType models.ServiceType `json:"serviceType"`
	Image       string             `json:"image"`
	Pet         *models.PetInfo    `json:"pet,omitempty"`
}

// FavoriteStore persists the set of favorited listing ids per storage key.
type FavoriteStore interface {
	Load(ctx context.Context, key string) ([]int64, error)
	Save(ctx context.Context, key string, ids []int64) error
}

// Storage keys for favorited id sets.
const (
	FavoriteJobsKey   = "favoriteJobs"
	FavoritePetAdsKey = "favoritePetAds"
)

// FavoriteKey returns the storage key for a listing kind.
func FavoriteKey(kind models.ListingKind) string {
	if kind == models.KindPetAd {
		return FavoritePetAdsKey
	}
	return FavoriteJobsKey
}
