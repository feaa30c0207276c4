package catalog

// Provider identifies one vendor of hosted language models.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderGoogle    Provider = "google"
	ProviderGroq      Provider = "groq"
	ProviderXAI       Provider = "xai"
	ProviderQwen      Provider = "qwen"
)

// AllProviders returns every known provider in catalog resolution order.
func AllProviders() []Provider {
	return []Provider{
		ProviderOpenAI,
		ProviderGroq,
		ProviderGoogle,
		ProviderAnthropic,
		ProviderXAI,
		ProviderQwen,
	}
}

// DefaultTemperature is the invocation temperature baked into every
// model definition's default arguments.
const DefaultTemperature = 0.7

// ModelDefinition describes one invocable model before any client is built.
// Key is the stable display identifier ("{provider}/{display_name}") and is
// unique across the whole catalog; RawID is what the vendor API expects at
// call time and may carry a dated suffix the key does not.
type ModelDefinition struct {
	Key         string
	Provider    Provider
	RawID       string
	DefaultArgs map[string]any
	IDParamName string
}

// NewModelDefinition builds a definition keyed "{provider}/{display_name}".
// An empty display name falls back to the raw identifier.
func NewModelDefinition(p Provider, rawID, displayName, idParamName string) ModelDefinition {
	if displayName == "" {
		displayName = rawID
	}
	return ModelDefinition{
		Key:         string(p) + "/" + displayName,
		Provider:    p,
		RawID:       rawID,
		DefaultArgs: map[string]any{"temperature": DefaultTemperature},
		IDParamName: idParamName,
	}
}
