package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/yourusername/airefiner/internal/catalog"
)

// Environment variable constants.
const (
	EnvConfig    = "AIREFINER_CONFIG"     // path to custom config file
	EnvConfigDir = "AIREFINER_CONFIG_DIR" // path to custom .airefiner dir
)

// Config holds all runtime configuration for airefiner.
type Config struct {
	// --- Model filtering ---
	StrictModelFiltering  bool     `mapstructure:"strict_model_filtering"`
	CustomExcludeKeywords []string `mapstructure:"custom_exclude_keywords"`

	// --- Generation ---
	Temperature float64 `mapstructure:"temperature"`

	// --- Catalog cache ---
	CacheTTLMinutes int `mapstructure:"cache_ttl_minutes"`

	// --- Translation ---
	AutoTranslate bool `mapstructure:"auto_translate"`

	// --- Logging ---
	LogLevel   string `mapstructure:"log_level"`
	LogFile    string `mapstructure:"log_file"`
	LogMaxSize int    `mapstructure:"log_max_size"` // megabytes per rotated file

	// --- TUI ---
	Theme string `mapstructure:"theme"`

	// --- API keys (prefer environment variables) ---
	OpenAIAPIKey    string `mapstructure:"openai_api_key"`
	GroqAPIKey      string `mapstructure:"groq_api_key"`
	GoogleAPIKey    string `mapstructure:"google_api_key"`
	AnthropicAPIKey string `mapstructure:"anthropic_api_key"`
	XAIAPIKey       string `mapstructure:"xai_api_key"`
	QwenAPIKey      string `mapstructure:"qwen_api_key"`
}

// Load reads configuration with precedence: env vars > config file > .env > defaults.
func Load() (*Config, error) {
	// .env values become process env vars unless already set, so explicit
	// environment always wins.
	loadDotEnv()

	v := viper.New()

	// Set defaults
	v.SetDefault("strict_model_filtering", true)
	v.SetDefault("custom_exclude_keywords", []string{})
	v.SetDefault("temperature", catalog.DefaultTemperature)
	v.SetDefault("cache_ttl_minutes", 60)
	v.SetDefault("auto_translate", true)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("log_max_size", 10)
	v.SetDefault("theme", "dark")

	// Config file locations (precedence: custom > project > home)
	if custom := os.Getenv(EnvConfig); custom != "" {
		v.SetConfigFile(custom)
	} else {
		if dir := os.Getenv(EnvConfigDir); dir != "" {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
		v.AddConfigPath(".airefiner")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "airefiner"))
		}
		v.SetConfigName("airefiner")
		v.SetConfigType("yaml")
	}

	// Environment variables
	v.SetEnvPrefix("AIREFINER")
	v.AutomaticEnv()

	_ = v.BindEnv("openai_api_key", "OPENAI_API_KEY")
	_ = v.BindEnv("groq_api_key", "GROQ_API_KEY")
	_ = v.BindEnv("google_api_key", "GOOGLE_API_KEY", "GEMINI_API_KEY")
	_ = v.BindEnv("anthropic_api_key", "ANTHROPIC_API_KEY")
	_ = v.BindEnv("xai_api_key", "XAI_API_KEY")
	_ = v.BindEnv("qwen_api_key", "QWEN_API_KEY", "DASHSCOPE_API_KEY")

	_ = v.ReadInConfig() // missing config file is fine, defaults apply

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadDotEnv loads a .env file from the working directory or the user's
// config directory. Existing environment variables are never overwritten.
func loadDotEnv() {
	if err := godotenv.Load(); err == nil {
		return
	}
	if home, err := os.UserHomeDir(); err == nil {
		_ = godotenv.Load(filepath.Join(home, ".config", "airefiner", ".env"))
	}
}

// Credentials returns the configured API key for each provider. Providers
// without a key are omitted so the loader can report them as unavailable.
func (c *Config) Credentials() map[catalog.Provider]string {
	all := map[catalog.Provider]string{
		catalog.ProviderOpenAI:    c.OpenAIAPIKey,
		catalog.ProviderGroq:      c.GroqAPIKey,
		catalog.ProviderGoogle:    c.GoogleAPIKey,
		catalog.ProviderAnthropic: c.AnthropicAPIKey,
		catalog.ProviderXAI:       c.XAIAPIKey,
		catalog.ProviderQwen:      c.QwenAPIKey,
	}
	creds := make(map[catalog.Provider]string)
	for prov, key := range all {
		if key = strings.TrimSpace(key); key != "" {
			creds[prov] = key
		}
	}
	return creds
}

// FilterConfig derives the model-filter settings from this config.
func (c *Config) FilterConfig() catalog.FilterConfig {
	return catalog.FilterConfig{
		Strict:               c.StrictModelFiltering,
		ExtraExcludeKeywords: c.CustomExcludeKeywords,
	}
}

// CacheTTL returns the model catalog cache lifetime.
func (c *Config) CacheTTL() time.Duration {
	if c.CacheTTLMinutes <= 0 {
		return catalog.DefaultCacheTTL
	}
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}

// HasAnyCredential reports whether at least one provider API key is set.
func (c *Config) HasAnyCredential() bool {
	return len(c.Credentials()) > 0
}
