package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Dashboard stats cache keys, one per ledger
const (
	SupplierStatsKey = "stats:suppliers"
	VendorStatsKey   = "stats:vendors"

	statsTTL = 30 * time.Second
)

var client *redis.Client

// Init initializes the Redis connection. The cache is optional: when Redis is
// unreachable every helper becomes a no-op and callers hit the database.
func Init() error {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

// hashCredentials creates a hash of email+password for cache key
func hashCredentials(email, password string) string {
	h := sha256.New()
	h.Write([]byte(email + ":" + password))
	return "auth:" + hex.EncodeToString(h.Sum(nil))[:32]
}

// GetCachedAuth checks if credentials are cached and valid
func GetCachedAuth(ctx context.Context, email, password string) (int64, bool) {
	if client == nil {
		return 0, false
	}
	adminID, err := client.Get(ctx, hashCredentials(email, password)).Int64()
	if err != nil {
		return 0, false
	}
	return adminID, true
}

// CacheAuth caches valid credentials for 15 minutes
func CacheAuth(ctx context.Context, email, password string, adminID int64) {
	if client == nil {
		return
	}
	client.Set(ctx, hashCredentials(email, password), adminID, 15*time.Minute)
}

// GetCachedStats returns a cached stats payload for the given ledger key.
func GetCachedStats(ctx context.Context, key string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// CacheStats stores a stats payload with a short TTL. Writes to the ledger
// call InvalidateStats, so the TTL only covers crash windows.
func CacheStats(ctx context.Context, key string, data []byte) {
	if client == nil {
		return
	}
	client.Set(ctx, key, data, statsTTL)
}

// InvalidateStats drops the cached stats for a ledger after any write to it.
func InvalidateStats(ctx context.Context, key string) {
	if client == nil {
		return
	}
	client.Del(ctx, key)
}
