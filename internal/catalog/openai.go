package catalog

// newOpenAIFetcher lists chat models from the OpenAI API. Only the GPT and
// o-series chat families survive the post-filter.
func newOpenAIFetcher(cfg FilterConfig, temperature float64) Fetcher {
	return &openAICompatibleFetcher{
		provider:    ProviderOpenAI,
		idParamName: "model_name",
		prefixes:    []string{"gpt-4", "gpt-3.5", "o1"},
		fallbackIDs: []string{
			"gpt-4o",
			"gpt-4o-mini",
			"gpt-4-turbo",
			"gpt-3.5-turbo",
		},
		filter:      cfg,
		temperature: temperature,
	}
}

// newGroqFetcher lists models from Groq's OpenAI-compatible endpoint.
// Groq hosts open-weight families rather than a house brand, so the
// post-filter accepts the usual suspects and the classifier's groq
// exclusions drop the whisper transcription models.
func newGroqFetcher(cfg FilterConfig, temperature float64) Fetcher {
	return &openAICompatibleFetcher{
		provider:    ProviderGroq,
		baseURL:     "https://api.groq.com/openai/v1",
		idParamName: "model_name",
		prefixes:    []string{"llama", "gemma", "qwen", "deepseek", "mistral"},
		fallbackIDs: []string{
			"llama-3.3-70b-versatile",
			"llama-3.1-8b-instant",
			"gemma2-9b-it",
			"qwen-qwq-32b",
			"deepseek-r1-distill-llama-70b",
			"llama3-70b-8192",
		},
		filter:      cfg,
		temperature: temperature,
	}
}

// newXAIFetcher lists Grok models from xAI's OpenAI-compatible endpoint.
func newXAIFetcher(cfg FilterConfig, temperature float64) Fetcher {
	return &openAICompatibleFetcher{
		provider:    ProviderXAI,
		baseURL:     "https://api.x.ai/v1",
		idParamName: "model",
		prefixes:    []string{"grok"},
		fallbackIDs: []string{
			"grok-beta",
			"grok-2",
			"grok-2-mini",
			"grok-3",
		},
		filter:      cfg,
		temperature: temperature,
	}
}

// newQwenFetcher lists models from Alibaba DashScope's OpenAI-compatible
// mode. DashScope publishes monthly dated snapshots alongside undated
// aliases, so the result is deduplicated. There is no static fallback:
// dynamic discovery is mandatory for this provider.
func newQwenFetcher(cfg FilterConfig, temperature float64) Fetcher {
	return &openAICompatibleFetcher{
		provider:    ProviderQwen,
		baseURL:     "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
		idParamName: "model_name",
		prefixes:    []string{"qwen"},
		dedupeDated: true,
		filter:      cfg,
		temperature: temperature,
	}
}
