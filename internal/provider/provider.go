package provider

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Model is a ready-to-invoke chat model handle. Complete sends one templated
// prompt and returns the model's free-form text output.
type Model interface {
	Key() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrorType classifies provider invocation failures.
type ErrorType string

const (
	ErrorTypeContextOverflow ErrorType = "context_overflow"
	ErrorTypeAPIError        ErrorType = "api_error"
	ErrorTypeRateLimit       ErrorType = "rate_limit"
	ErrorTypeAuth            ErrorType = "auth_error"
	ErrorTypeNotFound        ErrorType = "not_found"
)

// ClassifiedError wraps a provider error with classification.
type ClassifiedError struct {
	Type       ErrorType
	Message    string
	StatusCode int
	Original   error
}

func (e *ClassifiedError) Error() string { return e.Message }

func (e *ClassifiedError) Unwrap() error { return e.Original }

// Context overflow detection patterns across the supported vendors.
var overflowPatterns = []*regexp.Regexp{
	// Anthropic
	regexp.MustCompile(`prompt is too long`),
	regexp.MustCompile(`exceeds the model'?s maximum context`),
	// OpenAI-compatible
	regexp.MustCompile(`maximum context length`),
	regexp.MustCompile(`context_length_exceeded`),
	// Google
	regexp.MustCompile(`exceeds the maximum number of tokens`),
	regexp.MustCompile(`RESOURCE_EXHAUSTED.*token`),
	// xAI / Groq
	regexp.MustCompile(`Request too large`),
	regexp.MustCompile(`Please reduce the length`),
	// Generic
	regexp.MustCompile(`(?i)context.*(?:too long|overflow|exceeded|limit)`),
	regexp.MustCompile(`(?i)token.*(?:limit|exceeded|maximum)`),
}

// IsContextOverflow checks if an error message indicates context overflow.
func IsContextOverflow(msg string) bool {
	for _, pat := range overflowPatterns {
		if pat.MatchString(msg) {
			return true
		}
	}
	return false
}

// ClassifyError classifies an error from a provider.
func ClassifyError(err error, statusCode int, responseBody string) *ClassifiedError {
	if err == nil {
		return nil
	}
	if ce, ok := err.(*ClassifiedError); ok {
		return ce
	}

	msg := err.Error()
	if responseBody != "" {
		msg = msg + " " + responseBody
	}

	if IsContextOverflow(msg) {
		return &ClassifiedError{
			Type:       ErrorTypeContextOverflow,
			Message:    "input exceeds the model's context window",
			StatusCode: statusCode,
			Original:   err,
		}
	}

	lower := strings.ToLower(msg)
	if statusCode == 429 || strings.Contains(lower, "rate_limit") ||
		strings.Contains(lower, "rate limit") ||
		strings.Contains(lower, "too_many_requests") || strings.Contains(lower, "quota") {
		return &ClassifiedError{
			Type:       ErrorTypeRateLimit,
			Message:    "rate limited by provider",
			StatusCode: statusCode,
			Original:   err,
		}
	}

	if statusCode == 401 || statusCode == 403 {
		return &ClassifiedError{
			Type:       ErrorTypeAuth,
			Message:    fmt.Sprintf("authentication error (%d): %s", statusCode, err.Error()),
			StatusCode: statusCode,
			Original:   err,
		}
	}

	if statusCode == 404 {
		return &ClassifiedError{
			Type:       ErrorTypeNotFound,
			Message:    fmt.Sprintf("model or endpoint not found: %s", err.Error()),
			StatusCode: statusCode,
			Original:   err,
		}
	}

	return &ClassifiedError{
		Type:       ErrorTypeAPIError,
		Message:    err.Error(),
		StatusCode: statusCode,
		Original:   err,
	}
}
