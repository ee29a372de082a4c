package common

// NewDefaultConfig returns the built-in configuration. File and environment
// values are layered on top of these.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout"},
		},
		LLM: LLMConfig{
			DefaultProvider: "gemini",
		},
		Gemini: GeminiConfig{
			Model:       "gemini-2.0-flash",
			Temperature: 0.1,
			MaxTokens:   8192,
			Timeout:     "120s",
		},
		Claude: ClaudeConfig{
			Model:       "claude-sonnet-4-20250514",
			Temperature: 0.1,
			MaxTokens:   8192,
			Timeout:     "120s",
		},
		Market: MarketConfig{
			BaseURL:   "https://query1.finance.yahoo.com",
			Timeout:   "30s",
			RateLimit: 5,
			Suffix:    NSESuffix,
			Range:     "3y",
		},
		News: NewsConfig{
			BaseURL:       "https://html.duckduckgo.com/html/",
			MaxResults:    5,
			QueryDelay:    "1s",
			Timeout:       "20s",
			UserAgent:     "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
			MaxDigestSize: 10,
		},
		Docs: DocsConfig{
			Workers: 1,
		},
	}
}
