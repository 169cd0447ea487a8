package sentiment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/pscheid92/moviepulse/internal/domain"
)

const analysisKeyPrefix = "moviepulse:analysis:"

// RedisCache provides Redis-backed analysis caching for multi-instance mode.
// Expiry is handled by Redis TTLs; entries are stored as JSON.
type RedisCache struct {
	rdb *goredis.Client
	ttl time.Duration
}

func NewRedisCache(rdb *goredis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, ttl: ttl}
}

func analysisKey(movieID int) string {
	return fmt.Sprintf("%s%d", analysisKeyPrefix, movieID)
}

func (c *RedisCache) Get(ctx context.Context, movieID int) (*domain.MovieAnalysis, bool, error) {
	payload, err := c.rdb.Get(ctx, analysisKey(movieID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read cached analysis: %w", err)
	}

	var analysis domain.MovieAnalysis
	if err := json.Unmarshal(payload, &analysis); err != nil {
		// A corrupt entry is a miss; it will be overwritten by the next Set.
		return nil, false, fmt.Errorf("failed to decode cached analysis: %w", err)
	}
	return &analysis, true, nil
}

func (c *RedisCache) Set(ctx context.Context, analysis *domain.MovieAnalysis) error {
	payload, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("failed to encode analysis: %w", err)
	}

	if err := c.rdb.Set(ctx, analysisKey(analysis.Movie.ID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache analysis: %w", err)
	}
	return nil
}
