package pkg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"resmap"
)

// Resource cache on Redis. Every helper is a no-op (or a miss) when Redis is
// disabled, so services never need to branch on configuration.

var ErrCacheMiss = errors.New("cache miss")

func ResourceCacheKey(kind string, id uint) string {
	return fmt.Sprintf("resource:%s:%d", kind, id)
}

func CacheSet(key string, value any, ttl time.Duration) error {
	if resmap.Redis == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return resmap.Redis.Set(ctx, key, data, ttl).Err()
}

func CacheGet(key string, dest any) error {
	if resmap.Redis == nil {
		return ErrCacheMiss
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := resmap.Redis.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func CacheDelete(key string) error {
	if resmap.Redis == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return resmap.Redis.Del(ctx, key).Err()
}
