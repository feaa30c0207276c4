package catalog

import (
	"strings"
	"testing"
)

func TestNewModelDefinitionKey(t *testing.T) {
	def := NewModelDefinition(ProviderAnthropic, "claude-sonnet-4-20250514", "Claude Sonnet 4", "model_name")
	if def.Key != "anthropic/Claude Sonnet 4" {
		t.Errorf("key = %q, want provider-prefixed display name", def.Key)
	}
	if def.RawID != "claude-sonnet-4-20250514" {
		t.Errorf("raw id must keep the dated identifier, got %q", def.RawID)
	}

	def = NewModelDefinition(ProviderOpenAI, "gpt-4o", "", "model_name")
	if def.Key != "openai/gpt-4o" {
		t.Errorf("empty display name must fall back to the raw id, got %q", def.Key)
	}
	if temp, ok := def.DefaultArgs["temperature"].(float64); !ok || temp != DefaultTemperature {
		t.Errorf("default args must carry temperature %v, got %v", DefaultTemperature, def.DefaultArgs)
	}
}

func TestFallbackModelsRevalidated(t *testing.T) {
	// A fallback entry that trips the keyword tables must be dropped, so
	// static lists stay consistent with filtering policy as it evolves.
	f := &openAICompatibleFetcher{
		provider:    ProviderGroq,
		idParamName: "model_name",
		fallbackIDs: []string{"llama-3.3-70b-versatile", "whisper-large-v3", "llama-guard-3-8b"},
		filter:      DefaultFilterConfig(),
	}

	defs := f.FallbackModels()
	if len(defs) != 1 {
		t.Fatalf("expected 1 surviving fallback model, got %d: %v", len(defs), defs)
	}
	if defs[0].RawID != "llama-3.3-70b-versatile" {
		t.Errorf("survivor = %q, want llama-3.3-70b-versatile", defs[0].RawID)
	}
}

func TestFallbackModelsStrictDisabled(t *testing.T) {
	f := &openAICompatibleFetcher{
		provider:    ProviderOpenAI,
		idParamName: "model_name",
		fallbackIDs: []string{"gpt-4o", "dall-e-3"},
		filter:      FilterConfig{Strict: false},
	}

	if got := len(f.FallbackModels()); got != 2 {
		t.Errorf("with strict filtering disabled all fallback entries survive, got %d", got)
	}
}

func TestQwenFallbackIsEmpty(t *testing.T) {
	f := newQwenFetcher(DefaultFilterConfig(), DefaultTemperature)
	if got := f.FallbackModels(); len(got) != 0 {
		t.Errorf("qwen has no static fallback list by design, got %v", got)
	}
}

func TestDefaultFetchersCoverAllProviders(t *testing.T) {
	fetchers := DefaultFetchers(DefaultFilterConfig(), DefaultTemperature)
	for _, p := range AllProviders() {
		f, ok := fetchers[p]
		if !ok {
			t.Errorf("no fetcher registered for provider %q", p)
			continue
		}
		if f.Provider() != p {
			t.Errorf("fetcher registered under %q reports provider %q", p, f.Provider())
		}
	}
}

func TestFetcherKeysCarryProviderPrefix(t *testing.T) {
	fetchers := DefaultFetchers(DefaultFilterConfig(), DefaultTemperature)
	for p, f := range fetchers {
		for _, def := range f.FallbackModels() {
			if !strings.HasPrefix(def.Key, string(p)+"/") {
				t.Errorf("fallback key %q missing %q prefix", def.Key, p)
			}
			if def.IDParamName == "" {
				t.Errorf("fallback definition %q missing id parameter name", def.Key)
			}
		}
	}
}

func TestConfiguredTemperatureReachesDefinitions(t *testing.T) {
	fetchers := DefaultFetchers(DefaultFilterConfig(), 1.2)
	for p, f := range fetchers {
		for _, def := range f.FallbackModels() {
			if temp, ok := def.DefaultArgs["temperature"].(float64); !ok || temp != 1.2 {
				t.Errorf("%s fallback %q carries temperature %v, want 1.2", p, def.Key, def.DefaultArgs["temperature"])
			}
		}
	}

	// A non-positive temperature leaves the built-in default in place.
	f := newOpenAIFetcher(DefaultFilterConfig(), 0)
	for _, def := range f.FallbackModels() {
		if temp := def.DefaultArgs["temperature"].(float64); temp != DefaultTemperature {
			t.Errorf("fallback %q carries temperature %v, want %v", def.Key, temp, DefaultTemperature)
		}
	}
}

func TestOpenAICompatiblePrefixFilter(t *testing.T) {
	f := &openAICompatibleFetcher{
		provider: ProviderXAI,
		prefixes: []string{"grok"},
	}

	if !f.matchesPrefix("grok-3-mini") {
		t.Error("grok-3-mini should match the xai prefix filter")
	}
	if f.matchesPrefix("gpt-4o") {
		t.Error("gpt-4o should not match the xai prefix filter")
	}

	open := &openAICompatibleFetcher{provider: ProviderQwen}
	if !open.matchesPrefix("anything") {
		t.Error("empty prefix list must accept everything")
	}
}
