package cache_test

import (
	"context"
	"errors"
	"testing"

	"github.com/chenawi66/chefhu-2026/infras/otel/mocks"
	"github.com/chenawi66/chefhu-2026/shared/cache"
)

func TestMemoryCache_SaveAndGet(t *testing.T) {
	c := cache.NewMemoryCache(mocks.NewOtel())
	ctx := context.Background()

	type payload struct {
		Value string `json:"value"`
	}

	if err := c.Save(ctx, "slots:list", payload{Value: "18:00"}, 60); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var got payload
	if err := c.Get(ctx, "slots:list", &got); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Value != "18:00" {
		t.Errorf("expected value to round-trip, got %q", got.Value)
	}
}

func TestMemoryCache_GetMiss(t *testing.T) {
	c := cache.NewMemoryCache(mocks.NewOtel())

	var got string
	err := c.Get(context.Background(), "missing", &got)

	if !errors.Is(err, cache.Nil) {
		t.Errorf("expected a miss wrapping cache.Nil, got %v", err)
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	c := cache.NewMemoryCache(mocks.NewOtel())
	ctx := context.Background()

	if err := c.Save(ctx, "slots:list", "cached", 60); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := c.Delete(ctx, "slots:list"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var got string
	if err := c.Get(ctx, "slots:list", &got); !errors.Is(err, cache.Nil) {
		t.Errorf("expected a miss after delete, got %v", err)
	}
}

func TestMemoryCache_Clear(t *testing.T) {
	c := cache.NewMemoryCache(mocks.NewOtel())
	ctx := context.Background()

	keys := []string{"slots:list", "slots:count", "limiter:127.0.0.1"}
	for _, key := range keys {
		if err := c.Save(ctx, key, "cached", 60); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}

	if err := c.Clear(ctx, "slots"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var got string
	if err := c.Get(ctx, "slots:list", &got); !errors.Is(err, cache.Nil) {
		t.Errorf("expected slots entries to be cleared, got %v", err)
	}
	if err := c.Get(ctx, "limiter:127.0.0.1", &got); err != nil {
		t.Errorf("expected other prefixes to survive, got %v", err)
	}
}
