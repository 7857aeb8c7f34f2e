package utils

import (
	"context"
	"log"
	"time"

	"slotify/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// LedgerClient is the dedicated client for the reservation ledger.
	LedgerClient *redis.Client
)

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
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

// InitLedgerCache initializes the Redis client backing the reservation ledger.
func InitLedgerCache() {
	LedgerClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisLedgerDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := LedgerClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Ledger): %v", err)
	}
}

// GetLedgerClient returns the Redis client backing the reservation ledger.
func GetLedgerClient() *redis.Client {
	if LedgerClient == nil {
		InitLedgerCache()
	}
	return LedgerClient
}

// InitRedis initializes all Redis clients at startup.
func InitRedis() {
	InitCache()
	InitLedgerCache()
}
