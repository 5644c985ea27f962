package shared

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/chenawi66/chefhu-2026/shared/cache"
)

// BuildCacheKey joins key segments into a colon-separated cache key.
func BuildCacheKey(segments ...string) string {
	return strings.Join(segments, ":")
}

// InvalidateCache drops every cached entry under the given key prefix,
// logging instead of failing when the cache is unreachable.
func InvalidateCache(ctx context.Context, c cache.Cache, prefix string) {
	if err := c.Clear(ctx, prefix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache")
	}
}
