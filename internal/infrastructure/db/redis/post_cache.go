package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/inkwell/publishing-api/internal/core/domain"
)

const postCacheTTL = 5 * time.Minute

// PostCache caches single-post reads in Redis.
// Key format: post:<id>
type PostCache struct {
	client *redis.Client
}

// NewPostCache creates a PostCache wrapping the given Redis client.
func NewPostCache(client *redis.Client) *PostCache {
	return &PostCache{client: client}
}

// Get returns the cached post, or (nil, nil) on a miss.
func (c *PostCache) Get(ctx context.Context, postID string) (*domain.Post, error) {
	raw, err := c.client.Get(ctx, c.key(postID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("post cache get: %w", err)
	}

	var post domain.Post
	if err := json.Unmarshal(raw, &post); err != nil {
		// A corrupt entry behaves like a miss after eviction.
		_ = c.client.Del(ctx, c.key(postID)).Err()
		return nil, nil
	}
	return &post, nil
}

// Set stores the post (expires after postCacheTTL).
func (c *PostCache) Set(ctx context.Context, post *domain.Post) error {
	raw, err := json.Marshal(post)
	if err != nil {
		return fmt.Errorf("post cache marshal: %w", err)
	}
	return c.client.Set(ctx, c.key(post.ID), raw, postCacheTTL).Err()
}

// Invalidate drops the cached entry after an update or delete.
func (c *PostCache) Invalidate(ctx context.Context, postID string) error {
	return c.client.Del(ctx, c.key(postID)).Err()
}

func (c *PostCache) key(postID string) string {
	return "post:" + postID
}
