// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"luxora/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the generic cache client, used for catalog lookups.
var CacheClient *redis.Client

// CatalogCachePrefix is the prefix used for catalog cache keys.
const CatalogCachePrefix = "catalog:"

// CatalogCacheTTL is the time-to-live for catalog cache entries.
const CatalogCacheTTL = 10 * time.Minute

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}
