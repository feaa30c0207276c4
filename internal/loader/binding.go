package loader

import (
	"fmt"

	"github.com/yourusername/airefiner/internal/catalog"
	"github.com/yourusername/airefiner/internal/provider"
)

// ConstructFunc builds a live model handle from a definition's merged
// constructor arguments. The args map carries the definition's default
// arguments plus the id and credential entries under their provider-specific
// parameter names.
type ConstructFunc func(key, modelID, apiKey string, args map[string]any) (provider.Model, error)

// Binding is the per-provider argument-binding descriptor: which parameter
// name carries the credential, and how to turn bound arguments into a live
// client. A nil Construct marks a provider whose client support is not
// available in this build.
type Binding struct {
	Construct       ConstructFunc
	CredentialParam string
}

// CredentialParams extracts the provider → credential-parameter-name mapping
// from a binding registry.
func CredentialParams(bindings map[catalog.Provider]Binding) map[catalog.Provider]string {
	params := make(map[catalog.Provider]string, len(bindings))
	for p, b := range bindings {
		params[p] = b.CredentialParam
	}
	return params
}

// DefaultBindings returns the binding registry for every supported provider.
// Adding a provider means adding one entry here.
func DefaultBindings() map[catalog.Provider]Binding {
	return map[catalog.Provider]Binding{
		catalog.ProviderOpenAI: {
			CredentialParam: "openai_api_key",
			Construct:       openAICompatibleConstruct(""),
		},
		catalog.ProviderGroq: {
			CredentialParam: "groq_api_key",
			Construct:       openAICompatibleConstruct("https://api.groq.com/openai/v1"),
		},
		catalog.ProviderXAI: {
			CredentialParam: "xai_api_key",
			Construct:       openAICompatibleConstruct("https://api.x.ai/v1"),
		},
		catalog.ProviderQwen: {
			CredentialParam: "qwen_api_key",
			Construct:       openAICompatibleConstruct("https://dashscope-intl.aliyuncs.com/compatible-mode/v1"),
		},
		catalog.ProviderAnthropic: {
			CredentialParam: "anthropic_api_key",
			Construct: func(key, modelID, apiKey string, args map[string]any) (provider.Model, error) {
				return provider.NewAnthropicModel(key, modelID, apiKey, temperatureArg(args))
			},
		},
		catalog.ProviderGoogle: {
			CredentialParam: "google_api_key",
			Construct: func(key, modelID, apiKey string, args map[string]any) (provider.Model, error) {
				return provider.NewGoogleModel(key, modelID, apiKey, temperatureArg(args))
			},
		},
	}
}

func openAICompatibleConstruct(baseURL string) ConstructFunc {
	return func(key, modelID, apiKey string, args map[string]any) (provider.Model, error) {
		return provider.NewOpenAICompatibleModel(key, modelID, apiKey, baseURL, temperatureArg(args))
	}
}

// temperatureArg reads the temperature from merged constructor arguments,
// tolerating both float64 and int-valued entries.
func temperatureArg(args map[string]any) float64 {
	switch v := args["temperature"].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return catalog.DefaultTemperature
	}
}

// mergeArgs builds the final constructor arguments: the definition's default
// args, the model id under its id-parameter name, and the credential under
// the provider's credential-parameter name. Later entries win on collision.
func mergeArgs(def catalog.ModelDefinition, credParam, apiKey string) map[string]any {
	merged := make(map[string]any, len(def.DefaultArgs)+2)
	for k, v := range def.DefaultArgs {
		merged[k] = v
	}
	merged[def.IDParamName] = def.RawID
	merged[credParam] = apiKey
	return merged
}

// stringArg reads a required string entry from merged arguments.
func stringArg(args map[string]any, name string) (string, error) {
	v, ok := args[name]
	if !ok {
		return "", fmt.Errorf("missing constructor argument %q", name)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("constructor argument %q must be a non-empty string", name)
	}
	return s, nil
}
