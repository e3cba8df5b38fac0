package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-redis/redis/v8"

	"petsitter/models"
)

const draftKeyPrefix = "bookingDraft:"

// RedisDraftStore keeps each profile's draft as a JSON blob under
// "bookingDraft:<profileID>". Drafts have no TTL; they survive until
// finalized or cleared, like the browser-local state they replace.
type RedisDraftStore struct {
	client *redis.Client
}

func NewRedisDraftStore(client *redis.Client) *RedisDraftStore {
	return &RedisDraftStore{client: client}
}

func (s *RedisDraftStore) Get(ctx context.Context, profileID string) (*models.BookingDraft, error) {
	data, err := s.client.Get(ctx, draftKeyPrefix+profileID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking draft: %w", err)
	}
	var draft models.BookingDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking draft: %w", err)
	}
	return &draft, nil
}

func (s *RedisDraftStore) Save(ctx context.Context, profileID string, draft *models.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal booking draft: %w", err)
	}
	if err := s.client.Set(ctx, draftKeyPrefix+profileID, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save booking draft: %w", err)
	}
	return nil
}

func (s *RedisDraftStore) Delete(ctx context.Context, profileID string) error {
	if err := s.client.Del(ctx, draftKeyPrefix+profileID).Err(); err != nil {
		return fmt.Errorf("failed to delete booking draft: %w", err)
	}
	return nil
}

// MemoryDraftStore is an in-process DraftStore used in tests. It round-trips
// drafts through JSON so stored values behave like the Redis copies.
type MemoryDraftStore struct {
	mu     sync.RWMutex
	drafts map[string][]byte
}

func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{drafts: make(map[string][]byte)}
}

func (s *MemoryDraftStore) Get(_ context.Context, profileID string) (*models.BookingDraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.drafts[profileID]
	if !ok {
		return nil, nil
	}
	var draft models.BookingDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *MemoryDraftStore) Save(_ context.Context, profileID string, draft *models.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.drafts[profileID] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryDraftStore) Delete(_ context.Context, profileID string) error {
	s.mu.Lock()
	delete(s.drafts, profileID)
	s.mu.Unlock()
	return nil
}
