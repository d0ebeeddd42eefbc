package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"board-srv/internal/model"
	"board-srv/internal/post/repository"
	pkgRedis "board-srv/pkg/redis"
)

const (
	postsCacheKey = "board:posts:all"
	postsCacheTTL = 30 * time.Second
)

type implCache struct {
	redis pkgRedis.IRedis
}

// New - Factory function
func New(redis pkgRedis.IRedis) repository.Cache {
	return &implCache{redis: redis}
}

// GetPosts returns the cached post list or repository.ErrCacheMiss.
func (c *implCache) GetPosts(ctx context.Context) ([]model.Post, error) {
	raw, err := c.redis.Get(ctx, postsCacheKey)
	if errors.Is(err, pkgRedis.ErrNil) {
		return nil, repository.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("GetPosts cache: %w", err)
	}

	var posts []model.Post
	if err := json.Unmarshal([]byte(raw), &posts); err != nil {
		// stale or corrupt entry; treat as a miss and let the caller refill
		return nil, repository.ErrCacheMiss
	}
	return posts, nil
}

// SetPosts stores the full post list with a short TTL.
func (c *implCache) SetPosts(ctx context.Context, posts []model.Post) error {
	raw, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("SetPosts marshal: %w", err)
	}
	return c.redis.Set(ctx, postsCacheKey, raw, postsCacheTTL)
}

// Invalidate drops the cached list after any write.
func (c *implCache) Invalidate(ctx context.Context) error {
	return c.redis.Delete(ctx, postsCacheKey)
}
