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

// GoogleModel invokes one Gemini model through the Generative Language API.
type GoogleModel struct {
	key         string
	modelID     string
	apiKey      string
	temperature float64
	baseURL     string
	client      *http.Client
}

// NewGoogleModel builds a handle for one Gemini model.
func NewGoogleModel(key, modelID, apiKey string, temperature float64) (*GoogleModel, error) {
	if modelID == "" {
		return nil, errors.New("model identifier must not be empty")
	}
	if apiKey == "" {
		return nil, errors.New("api key must not be empty")
	}
	return &GoogleModel{
		key:         key,
		modelID:     modelID,
		apiKey:      apiKey,
		temperature: temperature,
		baseURL:     "https://generativelanguage.googleapis.com/v1beta",
		client:      &http.Client{Timeout: 120 * time.Second},
	}, nil
}

func (m *GoogleModel) Key() string { return m.key }

type googleGenerateRequest struct {
	Contents         []googleContent `json:"contents"`
	GenerationConfig struct {
		Temperature float64 `json:"temperature"`
	} `json:"generationConfig"`
}

type googleContent struct {
	Role  string       `json:"role"`
	Parts []googlePart `json:"parts"`
}

type googlePart struct {
	Text string `json:"text"`
}

type googleGenerateResponse struct {
	Candidates []struct {
		Content googleContent `json:"content"`
	} `json:"candidates"`
}

func (m *GoogleModel) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := googleGenerateRequest{
		Contents: []googleContent{{
			Role:  "user",
			Parts: []googlePart{{Text: prompt}},
		}},
	}
	reqBody.GenerationConfig.Temperature = m.temperature

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal google request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", m.baseURL, m.modelID, m.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

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

	var parsed googleGenerateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("malformed google response: %w", err)
	}
	if len(parsed.Candidates) == 0 {
		return "", &ClassifiedError{
			Type:    ErrorTypeAPIError,
			Message: fmt.Sprintf("%s returned no candidates", m.key),
		}
	}

	var out string
	for _, part := range parsed.Candidates[0].Content.Parts {
		out += part.Text
	}
	return out, nil
}
