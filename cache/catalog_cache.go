package catalog_cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/facets"
	"github.com/PalomoDev/alexika-es-sub001/metrics"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"go.uber.org/zap"
)

const TTL = 5 * time.Minute

// Loader fetches the storefront-visible products.
type Loader func(ctx context.Context) ([]facets.Product, error)

// ── Product snapshot + filter engine ─────────────────────────────────────────
// Storefront listing and the filter sidebar both read from this.

type engineEntry struct {
	engine    *facets.Engine
	fetchedAt time.Time
}

var (
	engineMu    sync.RWMutex
	engineCache *engineEntry
	loader      Loader = LoadProducts

	// version changes on every Invalidate; derived caches key on it.
	version atomic.Uint64
)

// Engine returns the cached engine, rebuilding it when missing or stale.
func Engine(ctx context.Context) (*facets.Engine, error) {
	engineMu.RLock()
	if engineCache != nil && time.Since(engineCache.fetchedAt) < TTL {
		e := engineCache.engine
		engineMu.RUnlock()
		return e, nil
	}
	engineMu.RUnlock()

	engineMu.Lock()
	defer engineMu.Unlock()
	if engineCache != nil && time.Since(engineCache.fetchedAt) < TTL {
		return engineCache.engine, nil
	}

	products, err := loader(ctx)
	if err != nil {
		return nil, err
	}
	engine := facets.NewEngine(products, EngineOptions())
	engineCache = &engineEntry{engine: engine, fetchedAt: time.Now()}
	metrics.CatalogReloaded()
	config.Log.Debug("catalog snapshot rebuilt", zap.Int("products", len(products)))
	return engine, nil
}

// EngineOptions reads the weight matching rules from the configuration.
func EngineOptions() facets.Options {
	opts := facets.DefaultOptions()
	if config.App.WeightSpecKey != "" {
		opts.WeightKey = config.App.WeightSpecKey
	}
	opts.LegacyWeightMatch = config.App.WeightLegacyMatch
	return opts
}

// SetLoader swaps the product source and drops the snapshot. It returns a
// func restoring the previous loader.
func SetLoader(l Loader) (restore func()) {
	engineMu.Lock()
	prev := loader
	loader = l
	engineCache = nil
	engineMu.Unlock()
	return func() {
		engineMu.Lock()
		loader = prev
		engineCache = nil
		engineMu.Unlock()
	}
}

// LoadProducts reads active products whose category (and brand, when set)
// is active, with everything the engine needs preloaded.
func LoadProducts(ctx context.Context) ([]facets.Product, error) {
	var rows []models.Product
	err := config.DB.WithContext(ctx).
		Preload("Category").
		Preload("Brand").
		Preload("Subcategories").
		Preload("SpecValues.Specification").
		Where("active = ?", true).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]facets.Product, 0, len(rows))
	for i := range rows {
		p := &rows[i]
		if p.Category == nil || !p.Category.Active {
			continue
		}
		if p.Brand != nil && !p.Brand.Active {
			continue
		}
		subs := p.Subcategories[:0]
		for _, s := range p.Subcategories {
			if s.Active {
				subs = append(subs, s)
			}
		}
		p.Subcategories = subs
		out = append(out, p.Facet())
	}
	return out, nil
}

// ── Storefront category tree ────────────────────────────────────────────────

type treeEntry struct {
	data      []models.StorefrontCategory
	fetchedAt time.Time
}

var (
	treeMu    sync.RWMutex
	treeCache *treeEntry
)

func GetTree() ([]models.StorefrontCategory, bool) {
	treeMu.RLock()
	defer treeMu.RUnlock()
	if treeCache != nil && time.Since(treeCache.fetchedAt) < TTL {
		return treeCache.data, true
	}
	return nil, false
}

func SetTree(data []models.StorefrontCategory) {
	treeMu.Lock()
	defer treeMu.Unlock()
	treeCache = &treeEntry{data: data, fetchedAt: time.Now()}
}

// ── Invalidate everything (call on any catalog create/update/delete) ────────

func Invalidate() {
	engineMu.Lock()
	engineCache = nil
	engineMu.Unlock()

	treeMu.Lock()
	treeCache = nil
	treeMu.Unlock()

	version.Add(1)
	bumpSummaryVersion()
}

// Version identifies the current catalog generation.
func Version() uint64 {
	return version.Load()
}
