// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"petsitter/config"

	"github.com/go-redis/redis/v8"
)

var (
	// DraftCacheClient stores per-profile booking drafts.
	DraftCacheClient *redis.Client
	// PrefsCacheClient stores favorites and per-profile preferences.
	PrefsCacheClient *redis.Client
	// BreedCacheClient caches normalized breed lookups.
	BreedCacheClient *redis.Client
)

func newClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitRedis initializes every Redis client the service uses.
func InitRedis() {
	DraftCacheClient = newClient(config.AppConfig.RedisDraftDB)
	PrefsCacheClient = newClient(config.AppConfig.RedisPrefsDB)
	BreedCacheClient = newClient(config.AppConfig.RedisBreedDB)
}

// GetDraftCacheClient returns the draft store client.
func GetDraftCacheClient() *redis.Client {
	if DraftCacheClient == nil {
		DraftCacheClient = newClient(config.AppConfig.RedisDraftDB)
	}
	return DraftCacheClient
}

// GetPrefsCacheClient returns the favorites/preferences client.
func GetPrefsCacheClient() *redis.Client {
	if PrefsCacheClient == nil {
		PrefsCacheClient = newClient(config.AppConfig.RedisPrefsDB)
	}
	return PrefsCacheClient
}

// GetBreedCacheClient returns the breed lookup cache client.
func GetBreedCacheClient() *redis.Client {
	if BreedCacheClient == nil {
		BreedCacheClient = newClient(config.AppConfig.RedisBreedDB)
	}
	return BreedCacheClient
}
