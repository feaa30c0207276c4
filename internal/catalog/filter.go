package catalog

import "strings"

// FilterConfig controls the text-model classifier.
type FilterConfig struct {
	// Strict enables keyword filtering. When false every non-empty
	// identifier is accepted unchanged.
	Strict bool

	// ExtraExcludeKeywords are caller-supplied exclusions unioned with the
	// built-in non-text keyword table before matching.
	ExtraExcludeKeywords []string
}

// DefaultFilterConfig returns the filtering defaults: strict on, no extras.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{Strict: true}
}

// nonTextKeywords marks identifiers of models that are not general-purpose
// chat models: image, audio, video, embedding, code, moderation, fine-tune,
// specialized-reasoning, guard and legacy edit families.
var nonTextKeywords = []string{
	// Image / vision
	"image", "vision", "dalle", "clip", "vit", "img", "visual", "pic", "photo",
	// Audio
	"audio", "tts", "whisper", "speech", "voice", "sound", "music",
	// Video
	"video", "vid", "motion", "animation",
	// Embeddings
	"embed", "embedding", "similarity", "vector", "retrieval",
	// Code generation
	"code", "programming", "dev", "developer",
	// Moderation / safety
	"moderation", "safety", "content-filter", "toxic",
	// Fine-tuning
	"fine-tune", "finetune", "training", "custom",
	// Specialized reasoning
	"reasoning", "math", "science", "research",
	// Guard models
	"guard", "guardian", "safety-model",
	// Legacy edit models
	"edit", "davinci-edit", "curie-edit",
	// Realtime / search / transcription variants
	"realtime", "search", "transcribe",
}

// providerExclusions are identifier fragments rejected only for one provider.
var providerExclusions = map[Provider][]string{
	ProviderOpenAI: {"davinci-edit", "curie-edit", "babbage-edit", "ada-edit"},
	// Legacy and specialized Google codenames
	ProviderGoogle: {"bison", "gecko", "otter", "unicorn"},
	// Audio transcription models served through Groq
	ProviderGroq:      {"whisper", "distil-whisper"},
	ProviderAnthropic: {},
	ProviderXAI:       {},
	ProviderQwen:      {},
}

// textIndicators are positive signals that an identifier denotes a chat or
// general text model. At least one must match for acceptance.
var textIndicators = []string{
	"chat", "gpt", "claude", "gemini", "llama", "mistral", "qwen", "deepseek", "grok",
	"text", "language", "conversation", "instruct", "assistant",
}

// IsTextModel reports whether an identifier denotes a general-purpose text
// model. Negative keywords are checked first and win over any positive
// indicator also present; an identifier with no positive indicator is
// rejected even when nothing negative matched. The filter is deliberately
// conservative: omitting a valid model is cheaper than offering a broken one.
func IsTextModel(id string, provider Provider, cfg FilterConfig) bool {
	if !cfg.Strict {
		return true
	}

	lower := strings.ToLower(id)

	for _, kw := range nonTextKeywords {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	for _, kw := range cfg.ExtraExcludeKeywords {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			return false
		}
	}

	if provider != "" {
		for _, excluded := range providerExclusions[provider] {
			if strings.Contains(lower, strings.ToLower(excluded)) {
				return false
			}
		}
	}

	for _, indicator := range textIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}
