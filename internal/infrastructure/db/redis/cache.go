package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/projecthub/projecthub/internal/core/domain"
)

const (
	projectListKey = "projects:list"
	projectListTTL = 30 * time.Second
)

// ProjectCache is a read-through cache for the full project list. The list
// is stored as a single JSON blob with a short TTL and deleted on every
// project write, so the store stays the source of truth.
type ProjectCache struct {
	client *redis.Client
}

// NewProjectCache creates a ProjectCache wrapping the given Redis client.
func NewProjectCache(client *redis.Client) *ProjectCache {
	return &ProjectCache{client: client}
}

// Get returns the cached list and whether it was present.
func (c *ProjectCache) Get(ctx context.Context) ([]*domain.Project, bool, error) {
	raw, err := c.client.Get(ctx, projectListKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var projects []*domain.Project
	if err := json.Unmarshal(raw, &projects); err != nil {
		return nil, false, fmt.Errorf("cache decode: %w", err)
	}
	return projects, true, nil
}

// Set stores the list (expires after projectListTTL).
func (c *ProjectCache) Set(ctx context.Context, projects []*domain.Project) error {
	raw, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, projectListKey, raw, projectListTTL).Err()
}

// Invalidate drops the cached list.
func (c *ProjectCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, projectListKey).Err()
}
