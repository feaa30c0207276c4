package provider

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAICompatibleModel invokes chat completions on any OpenAI-compatible
// endpoint. OpenAI, Groq, xAI and Qwen's DashScope compatible mode all go
// through here with different base URLs.
type OpenAICompatibleModel struct {
	key         string
	modelID     string
	temperature float64
	client      *openai.Client
}

// NewOpenAICompatibleModel builds a handle for one model on an
// OpenAI-compatible endpoint. An empty base URL targets api.openai.com.
func NewOpenAICompatibleModel(key, modelID, apiKey, baseURL string, temperature float64) (*OpenAICompatibleModel, error) {
	if modelID == "" {
		return nil, errors.New("model identifier must not be empty")
	}
	if apiKey == "" {
		return nil, errors.New("api key must not be empty")
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &OpenAICompatibleModel{
		key:         key,
		modelID:     modelID,
		temperature: temperature,
		client:      openai.NewClientWithConfig(config),
	}, nil
}

func (m *OpenAICompatibleModel) Key() string { return m.key }

func (m *OpenAICompatibleModel) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := m.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       m.modelID,
		Temperature: float32(m.temperature),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		statusCode := 0
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			statusCode = apiErr.HTTPStatusCode
		}
		return "", ClassifyError(fmt.Errorf("%s completion failed: %w", m.key, err), statusCode, "")
	}

	if len(resp.Choices) == 0 {
		return "", &ClassifiedError{
			Type:    ErrorTypeAPIError,
			Message: fmt.Sprintf("%s returned an empty completion", m.key),
		}
	}
	return resp.Choices[0].Message.Content, nil
}
