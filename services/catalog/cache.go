package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"scheduly/models"
	"scheduly/utils"
)

const sectionCachePrefix = "scheduly:catalog:"

// SectionCache is a Redis-backed TTL cache for registrar section lookups,
// keyed by (term, course). Lookup failures degrade to cache misses; a broken
// cache must never break the catalog.
type SectionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSectionCache wraps an already-connected Redis client.
func NewSectionCache(client *redis.Client, ttl time.Duration) *SectionCache {
	return &SectionCache{client: client, ttl: ttl}
}

func cacheKey(term, course string) string {
	return fmt.Sprintf("%s%s:%s", sectionCachePrefix, term, course)
}

func (c *SectionCache) Get(ctx context.Context, term, course string) ([]models.Section, bool) {
	data, err := c.client.Get(ctx, cacheKey(term, course)).Result()
	if err != nil {
		return nil, false
	}
	var sections []models.Section
	if err := json.Unmarshal([]byte(data), &sections); err != nil {
		utils.GetLogger().Warn("Dropping corrupt catalog cache entry",
			zap.String("term", term), zap.String("course", course), zap.Error(err))
		c.client.Del(ctx, cacheKey(term, course))
		return nil, false
	}
	return sections, true
}

func (c *SectionCache) Put(ctx context.Context, term, course string, sections []models.Section) {
	data, err := json.Marshal(sections)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cacheKey(term, course), data, c.ttl).Err(); err != nil {
		utils.GetLogger().Warn("Failed to cache catalog sections",
			zap.String("term", term), zap.String("course", course), zap.Error(err))
	}
}
