package preferences

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const darkModeKeyPrefix = "darkMode:"

// PreferenceService stores per-profile UI preferences.
type PreferenceService interface {
	DarkMode(ctx context.Context, profileID string) bool
	SetDarkMode(ctx context.Context, profileID string, enabled bool) error
}

// DefaultPreferenceService keeps preferences in Redis as boolean strings.
type DefaultPreferenceService struct {
	cache  *redis.Client
	logger *zap.Logger
}

func NewDefaultPreferenceService(cache *redis.Client, logger *zap.Logger) *DefaultPreferenceService {
	return &DefaultPreferenceService{cache: cache, logger: logger}
}

// DarkMode returns the stored flag, defaulting to false when unset or when
// the store is unreachable.
func (s *DefaultPreferenceService) DarkMode(ctx context.Context, profileID string) bool {
	val, err := s.cache.Get(ctx, darkModeKeyPrefix+profileID).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		s.logger.Warn("Failed to read dark mode preference", zap.String("profile", profileID), zap.Error(err))
		return false
	}
	enabled, err := strconv.ParseBool(val)
	if err != nil {
		return false
	}
	return enabled
}

func (s *DefaultPreferenceService) SetDarkMode(ctx context.Context, profileID string, enabled bool) error {
	if err := s.cache.Set(ctx, darkModeKeyPrefix+profileID, strconv.FormatBool(enabled), 0).Err(); err != nil {
		return fmt.Errorf("failed to save dark mode preference: %w", err)
	}
	return nil
}
