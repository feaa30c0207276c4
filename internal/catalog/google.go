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

// googleFetcher lists Gemini models from the Generative Language API.
// The listing call itself is retried a bounded number of times because the
// endpoint intermittently refuses connections; classification of the
// response is not retried.
type googleFetcher struct {
	baseURL     string
	client      *http.Client
	filter      FilterConfig
	maxRetries  int
	retryDelay  time.Duration
	temperature float64
}

func newGoogleFetcher(cfg FilterConfig, temperature float64) Fetcher {
	return &googleFetcher{
		baseURL:     "https://generativelanguage.googleapis.com/v1beta",
		client:      &http.Client{Timeout: 30 * time.Second},
		filter:      cfg,
		maxRetries:  3,
		retryDelay:  2 * time.Second,
		temperature: temperature,
	}
}

func (f *googleFetcher) define(rawID string) ModelDefinition {
	def := NewModelDefinition(ProviderGoogle, rawID, "", "model")
	if f.temperature > 0 {
		def.DefaultArgs["temperature"] = f.temperature
	}
	return def
}

func (f *googleFetcher) Provider() Provider { return ProviderGoogle }

type googleModelListing struct {
	Models []struct {
		Name                       string   `json:"name"`
		SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
	} `json:"models"`
}

func (f *googleFetcher) FetchModels(ctx context.Context, apiKey string) ([]ModelDefinition, error) {
	listing, err := f.listWithRetry(ctx, apiKey)
	if err != nil {
		return nil, err
	}

	var defs []ModelDefinition
	for _, m := range listing.Models {
		// Names arrive as "models/gemini-2.5-flash".
		name := m.Name
		if i := strings.LastIndex(name, "/"); i >= 0 {
			name = name[i+1:]
		}
		if !strings.Contains(strings.ToLower(name), "gemini") {
			continue
		}
		if !IsTextModel(name, ProviderGoogle, f.filter) {
			continue
		}
		if len(m.SupportedGenerationMethods) > 0 && !supportsGenerateContent(m.SupportedGenerationMethods) {
			continue
		}
		defs = append(defs, f.define(name))
	}
	return defs, nil
}

func (f *googleFetcher) listWithRetry(ctx context.Context, apiKey string) (*googleModelListing, error) {
	var lastErr error
	for attempt := 1; attempt <= f.maxRetries; attempt++ {
		listing, err := f.list(ctx, apiKey)
		if err == nil {
			return listing, nil
		}
		lastErr = err
		if attempt == f.maxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.retryDelay):
		}
	}
	return nil, fmt.Errorf("google model listing failed after %d attempts: %w", f.maxRetries, lastErr)
}

func (f *googleFetcher) list(ctx context.Context, apiKey string) (*googleModelListing, error) {
	url := fmt.Sprintf("%s/models?key=%s&pageSize=200", f.baseURL, apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

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
		return nil, fmt.Errorf("google models endpoint returned HTTP %d: %s", resp.StatusCode, body)
	}

	var listing googleModelListing
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("malformed google model listing: %w", err)
	}
	return &listing, nil
}

func supportsGenerateContent(methods []string) bool {
	for _, m := range methods {
		if m == "generateContent" {
			return true
		}
	}
	return false
}

func (f *googleFetcher) FallbackModels() []ModelDefinition {
	ids := []string{
		"gemini-1.5-flash",
		"gemini-1.5-pro",
		"gemini-2.0-flash-exp",
		"gemini-2.5-flash",
		"gemini-2.5-pro",
	}
	defs := make([]ModelDefinition, 0, len(ids))
	for _, id := range ids {
		if !IsTextModel(id, ProviderGoogle, f.filter) {
			continue
		}
		defs = append(defs, f.define(id))
	}
	return defs
}
