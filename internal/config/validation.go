package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var sb strings.Builder
	sb.WriteString("configuration validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the configuration
func (c *Config) Validate() error {
	var errors ValidationErrors

	// Validate temperature
	if c.Temperature < 0 {
		errors = append(errors, ValidationError{
			Field:   "temperature",
			Message: "must be non-negative",
		})
	}
	if c.Temperature > 2.0 {
		errors = append(errors, ValidationError{
			Field:   "temperature",
			Message: "must be <= 2.0",
		})
	}

	// Validate cache TTL
	if c.CacheTTLMinutes < 0 {
		errors = append(errors, ValidationError{
			Field:   "cache_ttl_minutes",
			Message: "must be non-negative",
		})
	}

	// Validate log level
	if c.LogLevel != "" {
		validLevels := []string{"trace", "debug", "info", "warn", "warning", "error", "fatal", "panic"}
		valid := false
		for _, l := range validLevels {
			if strings.EqualFold(c.LogLevel, l) {
				valid = true
				break
			}
		}
		if !valid {
			errors = append(errors, ValidationError{
				Field:   "log_level",
				Message: fmt.Sprintf("unknown level '%s', valid: %s", c.LogLevel, strings.Join(validLevels, ", ")),
			})
		}
	}

	// Validate log rotation size
	if c.LogMaxSize < 0 {
		errors = append(errors, ValidationError{
			Field:   "log_max_size",
			Message: "must be non-negative",
		})
	}

	// Exclude keywords must not be blank entries
	for i, kw := range c.CustomExcludeKeywords {
		if strings.TrimSpace(kw) == "" {
			errors = append(errors, ValidationError{
				Field:   "custom_exclude_keywords",
				Message: fmt.Sprintf("entry %d is blank", i),
			})
		}
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}

// GetConfigPrecedence returns a description of config source precedence
func GetConfigPrecedence() string {
	return `Configuration precedence (highest to lowest):
  1. Environment variables (AIREFINER_*, provider API key vars)
  2. Config file (airefiner.yaml in ., .airefiner/, ~/.config/airefiner/)
  3. .env file (working directory, then ~/.config/airefiner/.env)
  4. Built-in defaults`
}
