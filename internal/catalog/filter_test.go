package catalog

import "testing"

func TestIsTextModel(t *testing.T) {
	strict := DefaultFilterConfig()

	tests := []struct {
		name     string
		id       string
		provider Provider
		want     bool
	}{
		{"chat model", "claude-3-5-sonnet", ProviderAnthropic, true},
		{"gpt model", "gpt-4o", ProviderOpenAI, true},
		{"gemini model", "gemini-2.5-flash", ProviderGoogle, true},
		{"dated qwen", "qwen-plus-2025-01-25", ProviderQwen, true},
		{"image model", "dall-e-3", ProviderOpenAI, false},
		{"audio model", "whisper-1", ProviderOpenAI, false},
		{"embedding model", "text-embedding-3-small", ProviderOpenAI, false},
		{"negative wins over positive", "gpt-4o-realtime-preview", ProviderOpenAI, false},
		{"guard model", "llama-guard-3-8b", ProviderGroq, false},
		{"no positive indicator", "random-model-xyz", "", false},
		{"empty identifier", "", ProviderOpenAI, false},
		{"google legacy exclusion", "chat-bison-001", ProviderGoogle, false},
		{"groq whisper exclusion", "distil-whisper-large-v3-en", ProviderGroq, false},
		{"openai edit family", "text-davinci-edit-001", ProviderOpenAI, false},
		{"no provider rule", "llama-3.3-70b-versatile", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTextModel(tt.id, tt.provider, strict); got != tt.want {
				t.Errorf("IsTextModel(%q, %q) = %v, want %v", tt.id, tt.provider, got, tt.want)
			}
		})
	}
}

func TestIsTextModelStrictDisabled(t *testing.T) {
	relaxed := FilterConfig{Strict: false}

	for _, id := range []string{"dall-e-3", "whisper-1", "random-model-xyz", "gpt-4o"} {
		if !IsTextModel(id, ProviderOpenAI, relaxed) {
			t.Errorf("IsTextModel(%q) with strict filtering disabled should be true", id)
		}
	}
}

func TestIsTextModelCustomExclusions(t *testing.T) {
	cfg := FilterConfig{Strict: true, ExtraExcludeKeywords: []string{"Turbo"}}

	if IsTextModel("gpt-4-turbo", ProviderOpenAI, cfg) {
		t.Error("custom exclusion keyword should reject gpt-4-turbo")
	}
	if !IsTextModel("gpt-4o", ProviderOpenAI, cfg) {
		t.Error("custom exclusion should not affect non-matching identifiers")
	}
}
