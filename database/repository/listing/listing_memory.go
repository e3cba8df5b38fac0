package listingRepo

import (
	"context"
	"sync"

	"petsitter/models"
)

// MemoryListingRepo is an in-memory ListingRepository used in tests and as
// a fallback when no database is configured.
type MemoryListingRepo struct {
	mu       sync.RWMutex
	listings map[models.ListingKind][]models.Listing
}

func NewMemoryListingRepo() *MemoryListingRepo {
	return &MemoryListingRepo{listings: make(map[models.ListingKind][]models.Listing)}
}

func (r *MemoryListingRepo) All(ctx context.Context, kind models.ListingKind) ([]models.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Listing, len(r.listings[kind]))
	copy(out, r.listings[kind])
	return out, nil
}

func (r *MemoryListingRepo) Insert(ctx context.Context, listing *models.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listings[listing.Kind] = append([]models.Listing{*listing}, r.listings[listing.Kind]...)
	return nil
}
