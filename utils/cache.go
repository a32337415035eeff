// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"hirewire/config"

	"github.com/go-redis/redis/v8"
)

// DraftCacheClient holds in-progress slot selections between requests.
var DraftCacheClient *redis.Client

// InitDraftCache initializes the Redis client for draft selections.
func InitDraftCache() {
	DraftCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDraftDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := DraftCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Drafts): %v", err)
	}
}

// GetDraftCacheClient returns the Redis client for draft selections.
func GetDraftCacheClient() *redis.Client {
	if DraftCacheClient == nil {
		InitDraftCache()
	}
	return DraftCacheClient
}
