package catalog

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// DefaultCacheTTL is the freshness window of a resolved catalog snapshot.
const DefaultCacheTTL = time.Hour

// Snapshot is one resolved catalog across all providers. It is immutable
// once published: the cache replaces the whole snapshot on refresh and
// never patches it per provider.
type Snapshot struct {
	Providers map[Provider][]ModelDefinition
	FetchedAt time.Time
}

// TotalModels counts definitions across all providers.
func (s *Snapshot) TotalModels() int {
	n := 0
	for _, defs := range s.Providers {
		n += len(defs)
	}
	return n
}

// Cache resolves and holds the model catalog. A snapshot younger than the
// TTL is served as-is; a stale one is discarded and rebuilt wholesale, one
// provider at a time. Provider failures are isolated: a live listing error
// falls back to the provider's static list and never blocks the others.
type Cache struct {
	mu       sync.Mutex
	fetchers map[Provider]Fetcher
	creds    map[Provider]string
	ttl      time.Duration
	now      func() time.Time
	snapshot *Snapshot
}

// NewCache builds a cache over the given fetcher registry and credentials.
// Missing credentials are allowed; those providers contribute only their
// fallback lists.
func NewCache(fetchers map[Provider]Fetcher, creds map[Provider]string) *Cache {
	return &Cache{
		fetchers: fetchers,
		creds:    creds,
		ttl:      DefaultCacheTTL,
		now:      time.Now,
	}
}

// WithTTL overrides the snapshot freshness window and returns the cache.
func (c *Cache) WithTTL(ttl time.Duration) *Cache {
	if ttl > 0 {
		c.ttl = ttl
	}
	return c
}

// Get returns the current snapshot, refreshing first if it is absent or has
// aged past the TTL. Total fetch failure yields a snapshot of empty lists,
// not an error.
func (c *Cache) Get(ctx context.Context) *Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snapshot != nil && c.now().Sub(c.snapshot.FetchedAt) < c.ttl {
		log.Debug("using cached model definitions")
		return c.snapshot
	}
	return c.refreshLocked(ctx)
}

// Invalidate discards the current snapshot so the next Get refetches.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = nil
}

func (c *Cache) refreshLocked(ctx context.Context) *Snapshot {
	providers := make(map[Provider][]ModelDefinition, len(c.fetchers))
	for name, fetcher := range c.fetchers {
		providers[name] = c.resolveProvider(ctx, fetcher)
	}

	snap := &Snapshot{Providers: providers, FetchedAt: c.now()}
	c.snapshot = snap

	log.WithFields(log.Fields{
		"models":    snap.TotalModels(),
		"providers": len(providers),
	}).Info("model definitions cached")
	return snap
}

// resolveProvider runs one provider's discovery in isolation. No credential
// means fallback-only; a live fetch error is logged and degrades to the
// fallback list rather than propagating.
func (c *Cache) resolveProvider(ctx context.Context, f Fetcher) []ModelDefinition {
	name := f.Provider()
	apiKey := c.creds[name]
	if apiKey == "" {
		log.WithField("provider", name).Warn("no credential, using fallback models")
		return f.FallbackModels()
	}

	defs, err := f.FetchModels(ctx, apiKey)
	if err != nil {
		log.WithField("provider", name).WithError(err).Warn("model fetch failed, falling back to predefined models")
		return f.FallbackModels()
	}

	log.WithFields(log.Fields{"provider": name, "models": len(defs)}).Info("fetched models dynamically")
	return defs
}
