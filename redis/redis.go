package redis

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// GetCached returns the cached JSON payload for key, or "" on a miss.
// Cache errors are treated as misses so Redis outages never fail a read.
func GetCached(key string) string {
	if Client == nil {
		return ""
	}
	val, err := Client.Get(Ctx, key).Result()
	if err != nil {
		return ""
	}
	return val
}

// SetCached stores a JSON payload under key with the given TTL.
func SetCached(key string, payload []byte, ttl time.Duration) {
	if Client == nil {
		return
	}
	if err := Client.Set(Ctx, key, payload, ttl).Err(); err != nil {
		log.Printf("Failed to cache %s: %v", key, err)
	}
}

// Invalidate drops the given cache keys after a write.
func Invalidate(keys ...string) {
	if Client == nil {
		return
	}
	if err := Client.Del(Ctx, keys...).Err(); err != nil {
		log.Printf("Failed to invalidate cache keys %v: %v", keys, err)
	}
}
