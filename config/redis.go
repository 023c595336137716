package config

import (
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
)

// InitRedis builds the client used to cache per-post rating aggregates.
// Returns nil when REDIS_HOST is unset; callers treat a nil client as
// "cache disabled" and fall through to the database.
func InitRedis() *redis.Client {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		return nil
	}

	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
}
