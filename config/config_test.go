package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seogen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	path := writeConfig(t, `
server_addr: ":9090"
output_dir: /tmp/articles
llm:
  provider: openai
  model: gpt-4o-mini
  api_key: sk-file
  max_tokens:
    article: 8192
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddr)
	assert.Equal(t, "/tmp/articles", cfg.OutputDir)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, "sk-file", cfg.LLM.APIKey)
	// Explicit override plus per-stage defaults.
	assert.Equal(t, 8192, cfg.LLM.MaxTokens.Article)
	assert.Equal(t, 2000, cfg.LLM.MaxTokens.Keywords)
	assert.Equal(t, 1500, cfg.LLM.MaxTokens.Brief)
	assert.Equal(t, 4096, cfg.LLM.MaxTokens.Refine)
}

func TestLoadAPIKeyEnvFallback(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")
	path := writeConfig(t, `
llm:
  model: gpt-4o
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sk-env", cfg.LLM.APIKey)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("SEOGEN_SERVER_ADDR", ":7070")
	path := writeConfig(t, `
llm:
  model: gpt-4o
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.ServerAddr)
}

func TestLoadMissingAPIKeyFatal(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	path := writeConfig(t, `
llm:
  model: gpt-4o
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key")
}

func TestLoadMissingFileExplicitPath(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Config{
		ServerAddr: ":8080",
		OutputDir:  "out",
		LLM:        LLMConfig{Provider: "openai", Model: "gpt-4o", APIKey: "sk"},
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"valid openai", func(c *Config) {}, ""},
		{"missing model", func(c *Config) { c.LLM.Model = "" }, "llm.model"},
		{"deepseek without base_url", func(c *Config) { c.LLM.Provider = "deepseek" }, "base_url"},
		{"deepseek with base_url", func(c *Config) {
			c.LLM.Provider = "deepseek"
			c.LLM.BaseURL = "https://api.deepseek.com"
		}, ""},
		{"unknown provider", func(c *Config) { c.LLM.Provider = "palm" }, "not supported"},
		{"missing output dir", func(c *Config) { c.OutputDir = "" }, "output_dir"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}
