package cache

import (
	"context"
	"encoding/json"
	"time"

	"skroutz/categorytree/internal/config"
	"skroutz/categorytree/internal/domain"
	"skroutz/categorytree/internal/tree"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// ChildrenCache is a read-through Redis cache in front of a category source.
// Only successful listings are stored; not-found and transport errors pass
// straight through. Redis failures degrade to uncached lookups.
type ChildrenCache struct {
	source      tree.Source
	redisClient *redis.Client
	keyPrefix   string
	ttl         time.Duration
}

var _ tree.Source = (*ChildrenCache)(nil)

func NewChildrenCache(source tree.Source, redisClient *redis.Client, cfg config.RedisConfig) *ChildrenCache {
	return &ChildrenCache{
		source:      source,
		redisClient: redisClient,
		keyPrefix:   cfg.KeyPrefix,
		ttl:         time.Duration(cfg.TTL) * time.Second,
	}
}

func (c *ChildrenCache) FetchChildren(ctx context.Context, id domain.CategoryID) ([]domain.Category, error) {
	key := c.key(id)

	categories, err := c.lookup(ctx, key)
	switch {
	case err == nil:
		log.Debugf("Cache hit for category %d", id)
		return categories, nil
	case errors.Is(err, redis.Nil):
		log.Debugf("Cache miss for category %d", id)
	default:
		log.Warnf("⚠️ Children cache unavailable for category %d: %v", id, err)
	}

	categories, err = c.source.FetchChildren(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := c.store(ctx, key, categories); err != nil {
		log.Warnf("⚠️ Failed to cache children of category %d: %v", id, err)
	}

	return categories, nil
}

func (c *ChildrenCache) key(id domain.CategoryID) string {
	return c.keyPrefix + id.String()
}

func (c *ChildrenCache) lookup(ctx context.Context, key string) ([]domain.Category, error) {
	val, err := c.redisClient.Get(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	var resp domain.CategoriesResponse
	if err := json.Unmarshal([]byte(val), &resp); err != nil {
		return nil, errors.Wrapf(err, "failed to decode cached value %s", key)
	}
	return resp.Categories, nil
}

func (c *ChildrenCache) store(ctx context.Context, key string, categories []domain.Category) error {
	val, err := json.Marshal(domain.CategoriesResponse{Categories: categories})
	if err != nil {
		return errors.Wrap(err, "failed to encode children")
	}

	if err := c.redisClient.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return errors.Wrapf(err, "failed to set %s", key)
	}
	return nil
}
