package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration shared by both binaries.
type Config struct {
	Environment string        `toml:"environment" validate:"omitempty,oneof=development production"`
	Logging     LoggingConfig `toml:"logging"`
	LLM         LLMConfig     `toml:"llm"`
	Gemini      GeminiConfig  `toml:"gemini"`
	Claude      ClaudeConfig  `toml:"claude"`
	Market      MarketConfig  `toml:"market"`
	News        NewsConfig    `toml:"news"`
	Docs        DocsConfig    `toml:"docs"`
}

type LoggingConfig struct {
	Level  string   `toml:"level" validate:"oneof=trace debug info warn error"` // "debug", "info", "warn", "error"
	Output []string `toml:"output"`                                             // "stdout", "file"
}

// LLMConfig selects the default provider when a model string carries no prefix.
type LLMConfig struct {
	DefaultProvider string `toml:"default_provider" validate:"oneof=gemini claude"`
}

type GeminiConfig struct {
	APIKey      string  `toml:"api_key"`
	Model       string  `toml:"model"`
	Temperature float32 `toml:"temperature" validate:"gte=0,lte=2"`
	MaxTokens   int     `toml:"max_tokens" validate:"gte=0"`
	Timeout     string  `toml:"timeout"` // e.g. "120s"
}

type ClaudeConfig struct {
	APIKey      string  `toml:"api_key"`
	Model       string  `toml:"model"`
	Temperature float32 `toml:"temperature" validate:"gte=0,lte=1"`
	MaxTokens   int     `toml:"max_tokens" validate:"gte=0"`
	Timeout     string  `toml:"timeout"`
}

// MarketConfig configures the market data client.
type MarketConfig struct {
	BaseURL   string `toml:"base_url"`
	Timeout   string `toml:"timeout"`
	RateLimit int    `toml:"rate_limit" validate:"gte=1"` // requests per second
	Suffix    string `toml:"suffix"`                      // market suffix appended on retry (".NS")
	Range     string `toml:"range"`                       // historical range for returns ("3y")
}

// NewsConfig configures the news searcher.
type NewsConfig struct {
	BaseURL       string `toml:"base_url"`
	MaxResults    int    `toml:"max_results" validate:"gte=1,lte=10"` // per query
	QueryDelay    string `toml:"query_delay"`                         // courtesy pause between queries
	Timeout       string `toml:"timeout"`
	UserAgent     string `toml:"user_agent"`
	MaxDigestSize int    `toml:"max_digest_size" validate:"gte=1"` // items rendered into the digest
}

// DocsConfig configures the document classifier.
type DocsConfig struct {
	Workers int `toml:"workers" validate:"gte=1"` // batch concurrency (1 = sequential)
}

// LoadFromFiles loads configuration with this precedence:
// defaults -> file1 -> file2 -> ... -> environment variables.
// Later files override earlier ones. Missing paths are an error;
// an empty path list yields defaults plus env overrides.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// applyEnvOverrides applies environment variables on top of file configuration.
// CONSILIUM_* variables take priority over the generic provider variables.
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("CONSILIUM_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	// Logging
	if level := os.Getenv("CONSILIUM_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("CONSILIUM_LOG_OUTPUT"); output != "" {
		outputs := []string{}
		for _, o := range strings.Split(output, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}

	// Provider keys. GOOGLE_API_KEY is the conventional variable for Gemini,
	// ANTHROPIC_API_KEY for Claude; the CONSILIUM_* forms override both.
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		config.Gemini.APIKey = key
	}
	if key := os.Getenv("CONSILIUM_GEMINI_API_KEY"); key != "" {
		config.Gemini.APIKey = key
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		config.Claude.APIKey = key
	}
	if key := os.Getenv("CONSILIUM_CLAUDE_API_KEY"); key != "" {
		config.Claude.APIKey = key
	}

	if provider := os.Getenv("CONSILIUM_LLM_PROVIDER"); provider != "" {
		config.LLM.DefaultProvider = provider
	}
	if model := os.Getenv("CONSILIUM_GEMINI_MODEL"); model != "" {
		config.Gemini.Model = model
	}
	if model := os.Getenv("CONSILIUM_CLAUDE_MODEL"); model != "" {
		config.Claude.Model = model
	}

	// Market / news / docs
	if baseURL := os.Getenv("CONSILIUM_MARKET_BASE_URL"); baseURL != "" {
		config.Market.BaseURL = baseURL
	}
	if baseURL := os.Getenv("CONSILIUM_NEWS_BASE_URL"); baseURL != "" {
		config.News.BaseURL = baseURL
	}
	if workers := os.Getenv("CONSILIUM_DOCS_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			config.Docs.Workers = w
		}
	}
}

// RequireGeminiKey verifies that a Gemini API key has been resolved.
// Both binaries perform this check at startup before doing any work.
func (c *Config) RequireGeminiKey() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("Google API key is required (set GOOGLE_API_KEY, CONSILIUM_GEMINI_API_KEY, or gemini.api_key in config)")
	}
	return nil
}
