package catalog

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeFetcher counts live fetches and can be forced to fail.
type fakeFetcher struct {
	provider Provider
	live     []string
	fallback []string
	fetchErr error
	fetches  int
}

func (f *fakeFetcher) Provider() Provider { return f.provider }

func (f *fakeFetcher) FetchModels(ctx context.Context, apiKey string) ([]ModelDefinition, error) {
	f.fetches++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return defsFor(f.provider, f.live), nil
}

func (f *fakeFetcher) FallbackModels() []ModelDefinition {
	return defsFor(f.provider, f.fallback)
}

func defsFor(p Provider, ids []string) []ModelDefinition {
	defs := make([]ModelDefinition, 0, len(ids))
	for _, id := range ids {
		defs = append(defs, NewModelDefinition(p, id, "", "model_name"))
	}
	return defs
}

func newTestCache(fetchers map[Provider]Fetcher, creds map[Provider]string, now *time.Time) *Cache {
	c := NewCache(fetchers, creds)
	c.now = func() time.Time { return *now }
	return c
}

func TestCacheServesFreshSnapshot(t *testing.T) {
	f := &fakeFetcher{provider: ProviderOpenAI, live: []string{"gpt-4o"}}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := newTestCache(map[Provider]Fetcher{ProviderOpenAI: f}, map[Provider]string{ProviderOpenAI: "sk-test"}, &now)

	first := c.Get(context.Background())
	if f.fetches != 1 {
		t.Fatalf("expected 1 fetch, got %d", f.fetches)
	}

	now = now.Add(59 * time.Minute)
	second := c.Get(context.Background())
	if second != first {
		t.Error("query inside the freshness window must return the identical snapshot")
	}
	if f.fetches != 1 {
		t.Errorf("fresh snapshot must not trigger new provider calls, got %d fetches", f.fetches)
	}
}

func TestCacheRefreshesStaleSnapshot(t *testing.T) {
	f := &fakeFetcher{provider: ProviderOpenAI, live: []string{"gpt-4o"}}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := newTestCache(map[Provider]Fetcher{ProviderOpenAI: f}, map[Provider]string{ProviderOpenAI: "sk-test"}, &now)

	first := c.Get(context.Background())

	now = now.Add(61 * time.Minute)
	second := c.Get(context.Background())

	if second == first {
		t.Error("stale snapshot must be replaced, not reused")
	}
	if f.fetches != 2 {
		t.Errorf("stale query must re-fetch, got %d fetches", f.fetches)
	}
	if !second.FetchedAt.After(first.FetchedAt) {
		t.Error("refreshed snapshot must carry an updated timestamp")
	}
}

func TestCacheMissingCredentialUsesFallback(t *testing.T) {
	f := &fakeFetcher{provider: ProviderGroq, live: []string{"llama-live"}, fallback: []string{"llama-3.3-70b-versatile"}}
	now := time.Now()
	c := newTestCache(map[Provider]Fetcher{ProviderGroq: f}, map[Provider]string{}, &now)

	snap := c.Get(context.Background())
	if f.fetches != 0 {
		t.Errorf("no credential must mean no live call, got %d fetches", f.fetches)
	}
	defs := snap.Providers[ProviderGroq]
	if len(defs) != 1 || defs[0].RawID != "llama-3.3-70b-versatile" {
		t.Errorf("expected fallback-only contribution, got %v", defs)
	}
}

func TestCacheFetchErrorFallsBack(t *testing.T) {
	f := &fakeFetcher{
		provider: ProviderXAI,
		fetchErr: errors.New("connection refused"),
		fallback: []string{"grok-3"},
	}
	now := time.Now()
	c := newTestCache(map[Provider]Fetcher{ProviderXAI: f}, map[Provider]string{ProviderXAI: "xai-test"}, &now)

	snap := c.Get(context.Background())
	defs := snap.Providers[ProviderXAI]
	if len(defs) != 1 || defs[0].RawID != "grok-3" {
		t.Errorf("fetch failure must degrade to fallback list, got %v", defs)
	}
}

func TestCacheProviderFailuresAreIsolated(t *testing.T) {
	broken := &fakeFetcher{provider: ProviderGoogle, fetchErr: errors.New("boom")}
	healthy := &fakeFetcher{provider: ProviderOpenAI, live: []string{"gpt-4o"}}
	now := time.Now()
	c := newTestCache(
		map[Provider]Fetcher{ProviderGoogle: broken, ProviderOpenAI: healthy},
		map[Provider]string{ProviderGoogle: "g", ProviderOpenAI: "o"},
		&now,
	)

	snap := c.Get(context.Background())
	if len(snap.Providers[ProviderOpenAI]) != 1 {
		t.Error("one provider's failure must not block the others")
	}
	if len(snap.Providers[ProviderGoogle]) != 0 {
		t.Errorf("failed provider with empty fallback contributes an empty list, got %v", snap.Providers[ProviderGoogle])
	}
}

func TestCacheTotalFailureYieldsEmptySnapshot(t *testing.T) {
	a := &fakeFetcher{provider: ProviderOpenAI, fetchErr: errors.New("down")}
	b := &fakeFetcher{provider: ProviderXAI, fetchErr: errors.New("down")}
	now := time.Now()
	c := newTestCache(
		map[Provider]Fetcher{ProviderOpenAI: a, ProviderXAI: b},
		map[Provider]string{ProviderOpenAI: "x", ProviderXAI: "y"},
		&now,
	)

	snap := c.Get(context.Background())
	if snap == nil {
		t.Fatal("total fetch failure must still produce a snapshot")
	}
	if snap.TotalModels() != 0 {
		t.Errorf("expected empty lists, got %d models", snap.TotalModels())
	}
}

func TestCacheInvalidate(t *testing.T) {
	f := &fakeFetcher{provider: ProviderOpenAI, live: []string{"gpt-4o"}}
	now := time.Now()
	c := newTestCache(map[Provider]Fetcher{ProviderOpenAI: f}, map[Provider]string{ProviderOpenAI: "k"}, &now)

	c.Get(context.Background())
	c.Invalidate()
	c.Get(context.Background())

	if f.fetches != 2 {
		t.Errorf("invalidate must force a refetch, got %d fetches", f.fetches)
	}
}
