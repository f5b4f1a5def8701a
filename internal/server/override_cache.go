package server

import (
	"encoding/json"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/yourusername/siggys-picks/internal/config"
	"github.com/yourusername/siggys-picks/internal/metrics"
)

// resolution is a cached ResolvePayload outcome, including rejections
type resolution struct {
	cfg config.PicksConfig
	err error
}

// OverrideCache memoises override payload resolution. Payloads are keyed by their
// canonical JSON encoding, so key order in the request does not matter.
type OverrideCache struct {
	cache     *cache.Cache
	ttl       time.Duration
	maxSize   int
	mu        sync.Mutex
	hitCount  uint64
	missCount uint64
}

// NewOverrideCache creates a cache. A zero ttl disables caching.
func NewOverrideCache(ttl time.Duration, maxSize int) *OverrideCache {
	if ttl <= 0 {
		return &OverrideCache{}
	}
	return &OverrideCache{
		cache:   cache.New(ttl, ttl*2),
		ttl:     ttl,
		maxSize: maxSize,
	}
}

// Resolve returns the resolved config for raw, computing it on a miss.
// The bool reports whether the value came from the cache.
func (oc *OverrideCache) Resolve(raw any) (config.PicksConfig, bool, error) {
	key, err := json.Marshal(raw)
	if oc.cache == nil || err != nil {
		cfg, resolveErr := config.ResolvePayload(raw)
		return cfg, false, resolveErr
	}

	if cached, found := oc.cache.Get(string(key)); found {
		if r, ok := cached.(resolution); ok {
			oc.record(true)
			return r.cfg, true, r.err
		}
	}
	oc.record(false)

	cfg, resolveErr := config.ResolvePayload(raw)

	oc.mu.Lock()
	if oc.maxSize > 0 && oc.cache.ItemCount() >= oc.maxSize {
		oc.cache.DeleteExpired()
	}
	if oc.maxSize <= 0 || oc.cache.ItemCount() < oc.maxSize {
		oc.cache.Set(string(key), resolution{cfg: cfg, err: resolveErr}, oc.ttl)
	}
	oc.mu.Unlock()

	return cfg, false, resolveErr
}

// Stats returns cache statistics
func (oc *OverrideCache) Stats() (hits, misses uint64, ratio float64) {
	oc.mu.Lock()
	defer oc.mu.Unlock()

	hits = oc.hitCount
	misses = oc.missCount
	if total := hits + misses; total > 0 {
		ratio = float64(hits) / float64(total)
	}
	return
}

// ItemCount returns the number of cached payloads
func (oc *OverrideCache) ItemCount() int {
	if oc.cache == nil {
		return 0
	}
	return oc.cache.ItemCount()
}

func (oc *OverrideCache) record(hit bool) {
	oc.mu.Lock()
	if hit {
		oc.hitCount++
	} else {
		oc.missCount++
	}
	oc.mu.Unlock()
	metrics.RecordOverrideCacheLookup(hit)
}
