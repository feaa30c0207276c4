package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// anthropicFetcher lists Claude models from the Anthropic models endpoint.
// Anthropic's API is not OpenAI-compatible, so this talks to it directly.
type anthropicFetcher struct {
	baseURL     string
	client      *http.Client
	filter      FilterConfig
	temperature float64
}

func newAnthropicFetcher(cfg FilterConfig, temperature float64) Fetcher {
	return &anthropicFetcher{
		baseURL:     "https://api.anthropic.com/v1",
		client:      &http.Client{Timeout: 30 * time.Second},
		filter:      cfg,
		temperature: temperature,
	}
}

func (f *anthropicFetcher) define(rawID, display string) ModelDefinition {
	def := NewModelDefinition(ProviderAnthropic, rawID, display, "model_name")
	if f.temperature > 0 {
		def.DefaultArgs["temperature"] = f.temperature
	}
	return def
}

func (f *anthropicFetcher) Provider() Provider { return ProviderAnthropic }

func (f *anthropicFetcher) FetchModels(ctx context.Context, apiKey string) ([]ModelDefinition, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/models", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")
	req.Header.Set("content-type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("anthropic models endpoint returned HTTP %d: %s", resp.StatusCode, body)
	}

	var listing struct {
		Data []struct {
			ID          string `json:"id"`
			DisplayName string `json:"display_name"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("malformed anthropic model listing: %w", err)
	}

	var defs []ModelDefinition
	for _, m := range listing.Data {
		if m.ID == "" || !strings.Contains(strings.ToLower(m.ID), "claude") {
			continue
		}
		if !IsTextModel(m.ID, ProviderAnthropic, f.filter) {
			continue
		}
		defs = append(defs, f.define(m.ID, m.DisplayName))
	}
	return defs, nil
}

func (f *anthropicFetcher) FallbackModels() []ModelDefinition {
	known := []struct{ id, display string }{
		{"claude-3-5-sonnet-20241022", "Claude Sonnet 3.5"},
		{"claude-3-7-sonnet-20250219", "Claude Sonnet 3.7"},
		{"claude-sonnet-4-20250514", "Claude Sonnet 4"},
		{"claude-opus-4-20250514", "Claude Opus 4"},
		{"claude-3-5-haiku-20241022", "Claude Haiku 3.5"},
	}
	defs := make([]ModelDefinition, 0, len(known))
	for _, m := range known {
		if !IsTextModel(m.id, ProviderAnthropic, f.filter) {
			continue
		}
		defs = append(defs, f.define(m.id, m.display))
	}
	return defs
}
