package utils

import (
	"context"
	"log"
	"time"

	"github.com/SachinKokare07/partner-app/config"

	"github.com/go-redis/redis/v8"
)

// AuthCachePrefix namespaces token-hash entries in the auth cache.
const AuthCachePrefix = "auth:"

// AuthCacheClient is the dedicated client for session token caching.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching, or
// nil when the cache was never initialized. Callers fall back to the
// database in that case.
func GetAuthCacheClient() *redis.Client {
	return AuthCacheClient
}

// SetAuthCacheClient replaces the auth cache client. Used by tests.
func SetAuthCacheClient(client *redis.Client) {
	AuthCacheClient = client
}
