package petapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"petsitter/models"
)

const (
	breedCacheTTL      = 24 * time.Hour
	breedKeyPrefix     = "breed:"
	defaultHTTPTimeout = 10 * time.Second
)

// BreedService looks up breed information for a pet type and breed name.
// A nil result with a nil error means no information is available; lookup
// failures never surface as errors to the caller.
type BreedService interface {
	BreedInfo(ctx context.Context, petType, breed string) (*models.BreedInfo, error)
}

// DefaultBreedService queries thedogapi / thecatapi breed search endpoints
// and caches normalized results in Redis.
type DefaultBreedService struct {
	dogBaseURL string
	catBaseURL string
	httpClient *http.Client
	cache      *redis.Client
	logger     *zap.Logger
}

// NewDefaultBreedService creates the breed client. cache may be nil to
// disable caching.
func NewDefaultBreedService(dogBaseURL, catBaseURL string, cache *redis.Client, logger *zap.Logger) *DefaultBreedService {
	return &DefaultBreedService{
		dogBaseURL: strings.TrimRight(dogBaseURL, "/"),
		catBaseURL: strings.TrimRight(catBaseURL, "/"),
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		cache:      cache,
		logger:     logger,
	}
}

// dogBreed and catBreed mirror the upstream response shapes; only the
// fields we normalize are declared.
type dogBreed struct {
	Name        string `json:"name"`
	Temperament string `json:"temperament"`
	LifeSpan    string `json:"life_span"`
	BredFor     string `json:"bred_for"`
	Origin      string `json:"origin"`
	Weight      struct {
		Metric string `json:"metric"`
	} `json:"weight"`
	Height struct {
		Metric string `json:"metric"`
	} `json:"height"`
	Image struct {
		URL string `json:"url"`
	} `json:"image"`
}

type catBreed struct {
	Name        string `json:"name"`
	Temperament string `json:"temperament"`
	LifeSpan    string `json:"life_span"`
	Description string `json:"description"`
	Origin      string `json:"origin"`
	Weight      struct {
		Metric string `json:"metric"`
	} `json:"weight"`
	AffectionLevel int `json:"affection_level"`
	ChildFriendly  int `json:"child_friendly"`
	DogFriendly    int `json:"dog_friendly"`
	EnergyLevel    int `json:"energy_level"`
	Image          struct {
		URL string `json:"url"`
	} `json:"image"`
}

func (s *DefaultBreedService) BreedInfo(ctx context.Context, petType, breed string) (*models.BreedInfo, error) {
	petType = strings.ToLower(strings.TrimSpace(petType))
	breed = strings.TrimSpace(breed)
	if breed == "" || (petType != "dog" && petType != "cat") {
		return nil, nil
	}

	cacheKey := breedKeyPrefix + petType + ":" + strings.ToLower(breed)
	if cached := s.fromCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	var info *models.BreedInfo
	if petType == "dog" {
		info = s.lookupDog(ctx, breed)
	} else {
		info = s.lookupCat(ctx, breed)
	}
	if info != nil {
		s.toCache(ctx, cacheKey, info)
	}
	return info, nil
}

func (s *DefaultBreedService) lookupDog(ctx context.Context, breed string) *models.BreedInfo {
	var results []dogBreed
	if err := s.search(ctx, s.dogBaseURL, breed, &results); err != nil {
		s.logger.Warn("Dog breed lookup failed", zap.String("breed", breed), zap.Error(err))
		return nil
	}
	if len(results) == 0 {
		return nil
	}
	b := results[0]
	info := &models.BreedInfo{
		Name:        b.Name,
		Temperament: b.Temperament,
		LifeSpan:    b.LifeSpan,
		Weight:      b.Weight.Metric,
		Height:      b.Height.Metric,
		Description: b.BredFor,
		Origin:      b.Origin,
		ImageURL:    b.Image.URL,
	}
	if info.Weight != "" {
		info.Weight += " kg"
	}
	if info.Height != "" {
		info.Height += " cm"
	}
	return info
}

func (s *DefaultBreedService) lookupCat(ctx context.Context, breed string) *models.BreedInfo {
	var results []catBreed
	if err := s.search(ctx, s.catBaseURL, breed, &results); err != nil {
		s.logger.Warn("Cat breed lookup failed", zap.String("breed", breed), zap.Error(err))
		return nil
	}
	if len(results) == 0 {
		return nil
	}
	b := results[0]
	info := &models.BreedInfo{
		Name:        b.Name,
		Temperament: b.Temperament,
		LifeSpan:    b.LifeSpan,
		Weight:      b.Weight.Metric,
		Description: b.Description,
		Origin:      b.Origin,
		ImageURL:    b.Image.URL,
		Traits: &models.BreedTraits{
			AffectionLevel: b.AffectionLevel,
			ChildFriendly:  b.ChildFriendly,
			DogFriendly:    b.DogFriendly,
			EnergyLevel:    b.EnergyLevel,
		},
	}
	if info.Weight != "" {
		info.Weight += " kg"
	}
	return info
}

func (s *DefaultBreedService) search(ctx context.Context, baseURL, query string, out interface{}) error {
	reqURL := fmt.Sprintf("%s/breeds/search?q=%s", baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build breed request: %w", err)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to query breed API: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("breed API returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode breed response: %w", err)
	}
	return nil
}

func (s *DefaultBreedService) fromCache(ctx context.Context, key string) *models.BreedInfo {
	if s.cache == nil {
		return nil
	}
	data, err := s.cache.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		s.logger.Warn("Breed cache read failed", zap.String("key", key), zap.Error(err))
		return nil
	}
	var info models.BreedInfo
	if err := json.Unmarshal([]byte(data), &info); err != nil {
		return nil
	}
	return &info
}

func (s *DefaultBreedService) toCache(ctx context.Context, key string, info *models.BreedInfo) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(info)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, breedCacheTTL).Err(); err != nil {
		s.logger.Warn("Breed cache write failed", zap.String("key", key), zap.Error(err))
	}
}
