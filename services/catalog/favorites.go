package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-redis/redis/v8"
)

// RedisFavoriteStore persists favorited id sets as JSON arrays in Redis.
type RedisFavoriteStore struct {
	client *redis.Client
}

func NewRedisFavoriteStore(client *redis.Client) *RedisFavoriteStore {
	return &RedisFavoriteStore{client: client}
}

func (s *RedisFavoriteStore) Load(ctx context.Context, key string) ([]int64, error) {
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites %q: %w", key, err)
	}
	var ids []int64
	if err := json.Unmarshal([]byte(data), &ids); err != nil {
		return nil, fmt.Errorf("failed to unmarshal favorites %q: %w", key, err)
	}
	return ids, nil
}

func (s *RedisFavoriteStore) Save(ctx context.Context, key string, ids []int64) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to marshal favorites %q: %w", key, err)
	}
	// Favorites survive the session, no TTL.
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save favorites %q: %w", key, err)
	}
	return nil
}

// MemoryFavoriteStore keeps favorited id sets in memory; it serializes
// through JSON the same way the Redis store does, so round-trip behavior
// matches.
type MemoryFavoriteStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryFavoriteStore() *MemoryFavoriteStore {
	return &MemoryFavoriteStore{data: make(map[string][]byte)}
}

func (s *MemoryFavoriteStore) Load(ctx context.Context, key string) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	var ids []int64
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *MemoryFavoriteStore) Save(ctx context.Context, key string, ids []int64) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = raw
	return nil
}
