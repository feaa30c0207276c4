package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const anthropicMaxTokens = 4096

// AnthropicModel invokes one Claude model through the Anthropic messages API.
type AnthropicModel struct {
	key         string
	modelID     string
	apiKey      string
	temperature float64
	baseURL     string
	client      *http.Client
}

// NewAnthropicModel builds a handle for one Claude model.
func NewAnthropicModel(key, modelID, apiKey string, temperature float64) (*AnthropicModel, error) {
	if modelID == "" {
		return nil, errors.New("model identifier must not be empty")
	}
	if apiKey == "" {
		return nil, errors.New("api key must not be empty")
	}
	return &AnthropicModel{
		key:         key,
		modelID:     modelID,
		apiKey:      apiKey,
		temperature: temperature,
		baseURL:     "https://api.anthropic.com/v1",
		client:      &http.Client{Timeout: 120 * time.Second},
	}, nil
}

func (m *AnthropicModel) Key() string { return m.key }

type anthropicMessageRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicMessageResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func (m *AnthropicModel) Complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(anthropicMessageRequest{
		Model:       m.modelID,
		MaxTokens:   anthropicMaxTokens,
		Temperature: m.temperature,
		Messages:    []anthropicMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal anthropic request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/messages", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("x-api-key", m.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")
	req.Header.Set("content-type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return "", ClassifyError(fmt.Errorf("%s request failed: %w", m.key, err), 0, "")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", ClassifyError(fmt.Errorf("%s returned HTTP %d", m.key, resp.StatusCode), resp.StatusCode, string(body))
	}

	var parsed anthropicMessageResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("malformed anthropic response: %w", err)
	}

	var out string
	for _, block := range parsed.Content {
		if block.Type == "text" {
			out += block.Text
		}
	}
	if out == "" {
		return "", &ClassifiedError{
			Type:    ErrorTypeAPIError,
			Message: fmt.Sprintf("%s returned no text content", m.key),
		}
	}
	return out, nil
}
