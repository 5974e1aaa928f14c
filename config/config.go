// Package config loads and validates service configuration via viper.
// Settings come from an optional seogen.yaml, SEOGEN_* environment
// variables, and built-in defaults, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything the service needs at startup.
type Config struct {
	ServerAddr string    `mapstructure:"server_addr"`
	OutputDir  string    `mapstructure:"output_dir"`
	LLM        LLMConfig `mapstructure:"llm"`
}

// LLMConfig configures the upstream text-generation service.
type LLMConfig struct {
	Provider  string    `mapstructure:"provider"`
	Model     string    `mapstructure:"model"`
	APIKey    string    `mapstructure:"api_key"`
	BaseURL   string    `mapstructure:"base_url"`
	MaxTokens MaxTokens `mapstructure:"max_tokens"`
}

// MaxTokens caps the model output per workflow stage.
type MaxTokens struct {
	Keywords int `mapstructure:"keywords"`
	Brief    int `mapstructure:"brief"`
	Article  int `mapstructure:"article"`
	Refine   int `mapstructure:"refine"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server_addr", ":8080")
	v.SetDefault("output_dir", "output/articles")
	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.model", "gpt-4o")
	v.SetDefault("llm.max_tokens.keywords", 2000)
	v.SetDefault("llm.max_tokens.brief", 1500)
	v.SetDefault("llm.max_tokens.article", 4096)
	v.SetDefault("llm.max_tokens.refine", 4096)
}

// Load reads configuration from path, or from the default search locations
// when path is empty. A missing default config file is not an error; env
// variables and defaults still apply.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("seogen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "seogen"))
		}
	}

	v.SetEnvPrefix("SEOGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	// Unmarshal does not surface env-only keys that have no default, so
	// resolve the credential explicitly: config file, then SEOGEN_LLM_API_KEY,
	// then the conventional OPENAI_API_KEY.
	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = v.GetString("llm.api_key")
	}
	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration is complete enough to start.
func (c Config) Validate() error {
	if c.LLM.APIKey == "" {
		return errors.New("llm api key missing; set llm.api_key or OPENAI_API_KEY")
	}
	if c.LLM.Model == "" {
		return errors.New("llm.model is required")
	}
	switch c.LLM.Provider {
	case "openai":
	case "deepseek":
		if c.LLM.BaseURL == "" {
			return errors.New("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
	default:
		return fmt.Errorf("llm provider %s not supported", c.LLM.Provider)
	}
	if c.OutputDir == "" {
		return errors.New("output_dir is required")
	}
	return nil
}
