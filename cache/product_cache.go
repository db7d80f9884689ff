package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/HITENDRAS940/E-commerce1/models"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const productCachePrefix = "product:detail:"

// DefaultTTL bounds how stale a cached product view may get.
const DefaultTTL = 5 * time.Minute

// ProductCache is a read-through Redis cache for product views. All methods
// are best-effort: a cache failure is logged and treated as a miss.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewProductCache creates a ProductCache. client may be nil, which disables
// caching entirely.
func NewProductCache(client *redis.Client, logger *zap.Logger) *ProductCache {
	return &ProductCache{client: client, ttl: DefaultTTL, logger: logger}
}

func key(productID uint) string {
	return fmt.Sprintf("%s%d", productCachePrefix, productID)
}

// Get returns the cached view for a product, or (nil, false) on a miss.
func (c *ProductCache) Get(ctx context.Context, productID uint) (*models.ProductView, bool) {
	if c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, key(productID)).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Product cache read failed", zap.Uint("product_id", productID), zap.Error(err))
		}
		return nil, false
	}

	var view models.ProductView
	if err := json.Unmarshal([]byte(data), &view); err != nil {
		c.logger.Warn("Failed to unmarshal cached product", zap.Uint("product_id", productID), zap.Error(err))
		return nil, false
	}
	return &view, true
}

// Set stores a product view under its TTL.
func (c *ProductCache) Set(ctx context.Context, view *models.ProductView) {
	if c.client == nil {
		return
	}

	data, err := json.Marshal(view)
	if err != nil {
		c.logger.Warn("Failed to marshal product for cache", zap.Uint("product_id", view.ID), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key(view.ID), data, c.ttl).Err(); err != nil {
		c.logger.Warn("Product cache write failed", zap.Uint("product_id", view.ID), zap.Error(err))
	}
}

// Invalidate drops a product from the cache after a catalog write.
func (c *ProductCache) Invalidate(ctx context.Context, productID uint) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, key(productID)).Err(); err != nil {
		c.logger.Warn("Product cache invalidation failed", zap.Uint("product_id", productID), zap.Error(err))
	}
}
