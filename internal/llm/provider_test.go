package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/consilium/internal/common"
)

func newTestFactory() *ProviderFactory {
	cfg := common.NewDefaultConfig()
	return NewProviderFactory(cfg, arbor.NewLogger())
}

func TestDetectProvider(t *testing.T) {
	factory := newTestFactory()

	tests := []struct {
		name  string
		model string
		want  ProviderType
	}{
		{"claude model name", "claude-sonnet-4-20250514", ProviderClaude},
		{"claude with prefix", "claude/claude-sonnet-4-20250514", ProviderClaude},
		{"anthropic prefix", "anthropic/claude-opus-4", ProviderClaude},
		{"gemini model name", "gemini-2.0-flash", ProviderGemini},
		{"gemini with prefix", "gemini/gemini-2.0-flash", ProviderGemini},
		{"google prefix", "google/gemini-2.0-flash", ProviderGemini},
		{"mixed case", "CLAUDE-sonnet-4", ProviderClaude},
		{"empty falls back to default", "", ProviderGemini},
		{"unknown falls back to default", "llama-3", ProviderGemini},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, factory.DetectProvider(tt.model))
		})
	}
}

func TestNormalizeModel(t *testing.T) {
	factory := newTestFactory()

	tests := []struct {
		model string
		want  string
	}{
		{"claude/claude-sonnet-4-20250514", "claude-sonnet-4-20250514"},
		{"gemini/gemini-2.0-flash", "gemini-2.0-flash"},
		{"anthropic/claude-opus-4", "claude-opus-4"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, factory.NormalizeModel(tt.model))
	}
}

func TestGetDefaultModel(t *testing.T) {
	factory := newTestFactory()
	assert.Equal(t, "gemini-2.0-flash", factory.GetDefaultModel(ProviderGemini))
	assert.Equal(t, "claude-sonnet-4-20250514", factory.GetDefaultModel(ProviderClaude))
}

func TestGetClaudeClient_MissingKey(t *testing.T) {
	factory := newTestFactory()
	_, err := factory.GetClaudeClient()
	assert.Error(t, err)
}
