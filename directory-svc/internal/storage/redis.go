package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"tablescout/directory-svc/internal/domain"
)

// RedisSearchCache keeps whole search results hot for a short TTL. The TTL
// must stay small because open-now filtering depends on the wall clock.
type RedisSearchCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSearchCache(client *redis.Client, ttl time.Duration) *RedisSearchCache {
	return &RedisSearchCache{Client: client, TTL: ttl}
}

func (c *RedisSearchCache) SearchKey(criteria domain.SearchCriteria) string {
	return "search:" + criteria.CacheKey()
}

func (c *RedisSearchCache) GetResult(ctx context.Context, key string) (*domain.SearchResult, bool) {
	payload, err := c.Client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var result domain.SearchResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, false
	}
	return &result, true
}

func (c *RedisSearchCache) SetResult(ctx context.Context, key string, result *domain.SearchResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, payload, c.TTL).Err()
}
