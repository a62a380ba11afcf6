package catalog_cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/facets"
	"github.com/PalomoDev/alexika-es-sub001/metrics"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	SummaryTTL        = 60 * time.Second
	summaryVersionKey = "facets:version"
)

// summaryKey is stable for equivalent selections because Encode sorts and
// dedupes values.
func summaryKey(ctx context.Context, sel facets.Selection) string {
	gen, err := config.RedisClient.Get(ctx, summaryVersionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		config.Log.Warn("facet summary version read failed", zap.Error(err))
	}
	return fmt.Sprintf("facets:v%d:%s", gen, sel.Encode())
}

// Summary returns the facet summary for sel, served from Redis when
// possible and computed from the catalog snapshot otherwise.
func Summary(ctx context.Context, sel facets.Selection) (facets.Summary, error) {
	if config.RedisClient == nil {
		engine, err := Engine(ctx)
		if err != nil {
			return facets.Summary{}, err
		}
		return engine.Summarize(sel), nil
	}

	key := summaryKey(ctx, sel)
	if raw, err := config.RedisClient.Get(ctx, key).Bytes(); err == nil {
		var s facets.Summary
		if err := json.Unmarshal(raw, &s); err == nil {
			metrics.FacetCacheLookup(true)
			return s, nil
		}
	}
	metrics.FacetCacheLookup(false)

	engine, err := Engine(ctx)
	if err != nil {
		return facets.Summary{}, err
	}
	s := engine.Summarize(sel)

	if raw, err := json.Marshal(s); err == nil {
		if err := config.RedisClient.Set(ctx, key, raw, SummaryTTL).Err(); err != nil {
			config.Log.Warn("facet summary cache write failed", zap.Error(err))
		}
	}
	return s, nil
}

func bumpSummaryVersion() {
	if config.RedisClient == nil {
		return
	}
	ctx, cancel := config.WithCustomTimeout(2 * time.Second)
	defer cancel()
	if err := config.RedisClient.Incr(ctx, summaryVersionKey).Err(); err != nil {
		config.Log.Warn("facet summary version bump failed", zap.Error(err))
	}
}
