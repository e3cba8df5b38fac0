package catalog

import (
	"context"
	"sync"
	"time"

	"petsitter/models"

	listingRepo "petsitter/database/repository/listing"

	"go.uber.org/zap"
)

// DefaultListingService implements ListingService. The in-memory catalog
// is the source of truth for the session; repository and favorite-store
// writes are best-effort and failures only get logged.
type DefaultListingService struct {
	repo   listingRepo.ListingRepository
	favs   FavoriteStore
	logger *zap.Logger

	mu     sync.RWMutex
	user   map[models.ListingKind][]models.Listing
	seeds  map[models.ListingKind][]models.Listing
	lastID int64
}

// NewDefaultListingService loads user listings and favorite flags from the
// backing stores. Load failures degrade to an empty user set.
func NewDefaultListingService(repo listingRepo.ListingRepository, favs FavoriteStore, logger *zap.Logger) *DefaultListingService {
	s := &DefaultListingService{
		repo:   repo,
		favs:   favs,
		logger: logger,
		user:   make(map[models.ListingKind][]models.Listing),
		seeds: map[models.ListingKind][]models.Listing{
			models.KindSitter: seedSitters(),
			models.KindPetAd:  seedPetAds(),
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, kind := range []models.ListingKind{models.KindSitter, models.KindPetAd} {
		stored, err := repo.All(ctx, kind)
		if err != nil {
			logger.Warn("failed to load user listings, starting empty",
				zap.String("kind", string(kind)), zap.Error(err))
			continue
		}
		s.user[kind] = stored
	}
	s.loadFavorites(ctx)
	return s
}

// loadFavorites applies the persisted favorited-id sets to the catalog.
func (s *DefaultListingService) loadFavorites(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, kind := range []models.ListingKind{models.KindSitter, models.KindPetAd} {
		ids, err := s.favs.Load(ctx, FavoriteKey(kind))
		if err != nil {
			s.logger.Warn("failed to load favorites",
				zap.String("kind", string(kind)), zap.Error(err))
			continue
		}
		favorited := make(map[int64]bool, len(ids))
		for _, id := range ids {
			favorited[id] = true
		}
		for i := range s.user[kind] {
			s.user[kind][i].IsFavorite = favorited[s.user[kind][i].ID]
		}
		for i := range s.seeds[kind] {
			s.seeds[kind][i].IsFavorite = favorited[s.seeds[kind][i].ID]
		}
	}
}

func (s *DefaultListingService) Listings(kind models.ListingKind) []models.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Listing, 0, len(s.user[kind])+len(s.seeds[kind]))
	out = append(out, s.user[kind]...)
	out = append(out, s.seeds[kind]...)
	return out
}

func (s *DefaultListingService) ListingByID(kind models.ListingKind, id int64) models.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, set := range [][]models.Listing{s.user[kind], s.seeds[kind]} {
		for _, l := range set {
			if l.ID == id {
				return l
			}
		}
	}
	// Lookups never report "not found": a miss resolves to the first seed.
	s.logger.Debug("listing lookup miss, falling back to first seed",
		zap.String("kind", string(kind)), zap.Int64("id", id))
	return s.seeds[kind][0]
}

func (s *DefaultListingService) Add(kind models.ListingKind, input AddListingInput) models.Listing {
	s.mu.Lock()
	listing := models.Listing{
		ID:          s.nextID(),
		Kind:        kind,
		Title:       input.Title,
		Name:        input.Name,
		Contact:     input.Contact,
		Description: input.Description,
		Location:    input.Location,
		Price:       input.Price,
		Currency:    "RON",
		ServiceType: input.ServiceType,
		Image:       input.Image,
		Rating:      5.0,
		Pet:         input.Pet,
	}
	if kind == models.KindPetAd {
		listing.ServiceType = models.ServiceSitting
	}
	if listing.Image == "" {
		listing.Image = defaultImage(listing.ServiceType)
	}
	s.user[kind] = append([]models.Listing{listing}, s.user[kind]...)
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.repo.Insert(ctx, &listing); err != nil {
		s.logger.Warn("failed to persist listing, keeping in-memory copy",
			zap.Int64("id", listing.ID), zap.Error(err))
	}
	return listing
}

// nextID returns a fresh UnixMilli-based id, bumped past the last one
// handed out so two adds in the same millisecond stay distinct.
// Caller must hold s.mu.
func (s *DefaultListingService) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *DefaultListingService) ToggleFavorite(kind models.ListingKind, id int64) {
	s.mu.Lock()
	found := false
	for _, set := range [][]models.Listing{s.user[kind], s.seeds[kind]} {
		for i := range set {
			if set[i].ID == id {
				set[i].IsFavorite = !set[i].IsFavorite
				found = true
			}
		}
	}
	var favorited []int64
	if found {
		for _, set := range [][]models.Listing{s.user[kind], s.seeds[kind]} {
			for _, l := range set {
				if l.IsFavorite {
					favorited = append(favorited, l.ID)
				}
			}
		}
	}
	s.mu.Unlock()

	if !found {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.favs.Save(ctx, FavoriteKey(kind), favorited); err != nil {
		s.logger.Warn("failed to persist favorites",
			zap.String("kind", string(kind)), zap.Error(err))
	}
}

func (s *DefaultListingService) Filter(kind models.ListingKind, criteria Criteria) []models.Listing {
	return ApplyFilter(s.Listings(kind), criteria)
}

func (s *DefaultListingService) ServiceTypes(kind models.ListingKind) []models.ServiceType {
	seen := make(map[models.ServiceType]bool)
	var types []models.ServiceType
	for _, l := range s.Listings(kind) {
		if !seen[l.ServiceType] {
			seen[l.ServiceType] = true
			types = append(types, l.ServiceType)
		}
	}
	return types
}

func (s *DefaultListingService) Locations(kind models.ListingKind) []string {
	seen := make(map[string]bool)
	var locations []string
	for _, l := range s.Listings(kind) {
		if !seen[l.Location] {
			seen[l.Location] = true
			locations = append(locations, l.Location)
		}
	}
	return locations
}
