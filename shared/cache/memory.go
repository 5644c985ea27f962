package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	goCache "github.com/patrickmn/go-cache"

	"github.com/chenawi66/chefhu-2026/infras/otel"
)

const memoryCleanupInterval = 10 * time.Minute

// memoryCache keeps the same contract as the Redis cache for deployments
// that run without a cache service.
type memoryCache struct {
	store *goCache.Cache
	otel  otel.Otel
}

func NewMemoryCache(ot otel.Otel) Cache {
	return &memoryCache{
		store: goCache.New(goCache.NoExpiration, memoryCleanupInterval),
		otel:  ot,
	}
}

// Clear implements Cache.
func (cache *memoryCache) Clear(ctx context.Context, prefix string) error {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Clear")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, prefix)

	for key := range cache.store.Items() {
		if strings.HasPrefix(key, prefix) {
			cache.store.Delete(key)
		}
	}

	return nil
}

// Delete implements Cache.
func (cache *memoryCache) Delete(ctx context.Context, key string) error {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Delete")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	cache.store.Delete(key)

	return nil
}

// Get implements Cache.
func (cache *memoryCache) Get(ctx context.Context, key string, value any) (err error) {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	raw, found := cache.store.Get(key)
	if !found {
		return fmt.Errorf("failed to get cache value: %w", Nil)
	}

	cacheValue, ok := raw.([]byte)
	if !ok {
		return fmt.Errorf("failed to get cache value: %w", Nil)
	}

	switch v := value.(type) {
	case *string:
		*v = string(cacheValue)
	default:
		if err = json.Unmarshal(cacheValue, value); err != nil {
			return fmt.Errorf("failed to unmarshal cache value: %w", err)
		}
	}

	return nil
}

// Save implements Cache.
func (cache *memoryCache) Save(ctx context.Context, key string, value any, duration int) error {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Save")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	strValue, err := marshalValue(value)
	if err != nil {
		return err
	}

	cache.store.Set(key, strValue, time.Second*time.Duration(duration))

	return nil
}
