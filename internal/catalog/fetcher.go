package catalog

import (
	"context"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Fetcher knows how to discover one provider's models. FetchModels calls the
// vendor's listing endpoint and returns classified survivors; implementations
// return an error on any network or SDK failure and leave fallback handling
// to the caller. FallbackModels is the static, versioned-at-build-time list
// used when live discovery is unavailable, re-validated through the
// classifier so it stays consistent with the keyword tables.
type Fetcher interface {
	Provider() Provider
	FetchModels(ctx context.Context, apiKey string) ([]ModelDefinition, error)
	FallbackModels() []ModelDefinition
}

// DefaultFetchers returns the fetcher registry for every known provider.
// The temperature is stamped onto every definition a fetcher produces so
// the configured sampling temperature reaches the constructed clients;
// a non-positive value keeps DefaultTemperature. Adding a provider means
// adding one entry here.
func DefaultFetchers(cfg FilterConfig, temperature float64) map[Provider]Fetcher {
	return map[Provider]Fetcher{
		ProviderOpenAI:    newOpenAIFetcher(cfg, temperature),
		ProviderGroq:      newGroqFetcher(cfg, temperature),
		ProviderGoogle:    newGoogleFetcher(cfg, temperature),
		ProviderAnthropic: newAnthropicFetcher(cfg, temperature),
		ProviderXAI:       newXAIFetcher(cfg, temperature),
		ProviderQwen:      newQwenFetcher(cfg, temperature),
	}
}

// openAICompatibleFetcher lists models from any OpenAI-compatible endpoint.
// OpenAI, Groq, xAI and Qwen's DashScope compatible mode all share this wire
// shape and differ only in base URL, brand prefixes and constructor details.
type openAICompatibleFetcher struct {
	provider    Provider
	baseURL     string
	idParamName string
	// prefixes restrict survivors to the provider's own brand families;
	// empty means no prefix requirement beyond the classifier.
	prefixes    []string
	fallbackIDs []string
	// dedupeDated collapses dated snapshot variants after filtering.
	dedupeDated bool
	filter      FilterConfig
	temperature float64
}

func (f *openAICompatibleFetcher) define(rawID string) ModelDefinition {
	def := NewModelDefinition(f.provider, rawID, "", f.idParamName)
	if f.temperature > 0 {
		def.DefaultArgs["temperature"] = f.temperature
	}
	return def
}

func (f *openAICompatibleFetcher) Provider() Provider { return f.provider }

func (f *openAICompatibleFetcher) FetchModels(ctx context.Context, apiKey string) ([]ModelDefinition, error) {
	config := openai.DefaultConfig(apiKey)
	if f.baseURL != "" {
		config.BaseURL = f.baseURL
	}
	client := openai.NewClientWithConfig(config)

	list, err := client.ListModels(ctx)
	if err != nil {
		return nil, err
	}

	defs := make([]ModelDefinition, 0, len(list.Models))
	for _, m := range list.Models {
		if !IsTextModel(m.ID, f.provider, f.filter) {
			continue
		}
		if !f.matchesPrefix(m.ID) {
			continue
		}
		defs = append(defs, f.define(m.ID))
	}
	if f.dedupeDated {
		defs = DedupeDatedVariants(defs)
	}
	return defs, nil
}

func (f *openAICompatibleFetcher) FallbackModels() []ModelDefinition {
	defs := make([]ModelDefinition, 0, len(f.fallbackIDs))
	for _, id := range f.fallbackIDs {
		if !IsTextModel(id, f.provider, f.filter) {
			continue
		}
		defs = append(defs, f.define(id))
	}
	return defs
}

func (f *openAICompatibleFetcher) matchesPrefix(id string) bool {
	if len(f.prefixes) == 0 {
		return true
	}
	lower := strings.ToLower(id)
	for _, p := range f.prefixes {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
