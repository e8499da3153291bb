package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mealio/takeout/internal/domain"
	"github.com/mealio/takeout/internal/ports"
	"github.com/mealio/takeout/pkg/metrics"
	"github.com/redis/go-redis/v9"
)

// Проверка, что CatalogCache удовлетворяет интерфейсу ports.CatalogCache.
var _ ports.CatalogCache = (*CatalogCache)(nil)

// CatalogCache — кэш списков блюд на Redis. Значения сериализуются в JSON.
// TTL = 0 означает «без истечения»: запись живёт до явной инвалидации.
// Ненулевой TTL ограничивает время жизни устаревшей записи после
// неудачной инвалидации.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache — конструктор CatalogCache.
func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{client: client, ttl: ttl}
}

// GetDishList — список по ключу; (nil, nil) при промахе.
func (c *CatalogCache) GetDishList(ctx context.Context, key string) ([]domain.DishWithFlavors, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, nil
	}
	if err != nil {
		metrics.CacheOps.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("cache get %s: %w", key, err)
	}

	var list []domain.DishWithFlavors
	if err := json.Unmarshal(raw, &list); err != nil {
		// Битая запись равносильна промаху: удаляем и идём в БД.
		metrics.CacheOps.WithLabelValues("error").Inc()
		_ = c.client.Del(ctx, key).Err()
		return nil, nil
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return list, nil
}

// SetDishList — положить собранный список под ключ.
func (c *CatalogCache) SetDishList(ctx context.Context, key string, list []domain.DishWithFlavors) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("cache marshal %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		metrics.CacheOps.WithLabelValues("error").Inc()
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	metrics.CacheOps.WithLabelValues("populate").Inc()
	return nil
}

// Invalidate — удалить ключи по шаблону: KEYS pattern + DEL.
// Отсутствие совпадений — no-op. Возвращает число удалённых ключей.
func (c *CatalogCache) Invalidate(ctx context.Context, pattern string) (int64, error) {
	keys, err := c.client.Keys(ctx, pattern).Result()
	if err != nil {
		metrics.CacheOps.WithLabelValues("error").Inc()
		return 0, fmt.Errorf("cache keys %s: %w", pattern, err)
	}
	if len(keys) == 0 {
		return 0, nil
	}

	deleted, err := c.client.Del(ctx, keys...).Result()
	if err != nil {
		metrics.CacheOps.WithLabelValues("error").Inc()
		return 0, fmt.Errorf("cache del %s: %w", pattern, err)
	}
	metrics.CacheOps.WithLabelValues("invalidate").Inc()
	return deleted, nil
}
