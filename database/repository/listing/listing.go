package listingRepo

import (
	"context"

	"petsitter/models"
)

// ListingRepository persists user-added listings. The built-in seed set
// never passes through here; only user entries are stored.
type ListingRepository interface {
	// All returns the stored listings for a kind, newest first.
	All(ctx context.Context, kind models.ListingKind) ([]models.Listing, error)
	// Insert stores a newly created listing.
	Insert(ctx context.Context, listing *models.Listing) error
}
