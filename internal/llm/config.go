package llm

import (
	"fmt"
	"os"
	"time"
)

// DefaultHFEndpoint is the hosted inference endpoint used when nothing else
// is configured.
const DefaultHFEndpoint = "https://api-inference.huggingface.co/models/mistralai/Mixtral-8x7B-Instruct-v0.1"

// Config holds all text-generation provider configuration.
type Config struct {
	// Provider selects which backend to use.
	// Values: "huggingface", "openai", "anthropic", "gemini", "mock"
	Provider string

	HuggingFace HFConfig
	OpenAI      OpenAIConfig
	Anthropic   AnthropicConfig
	Gemini      GeminiConfig

	// Timeout is the HTTP client timeout for the HuggingFace backend.
	// SDK backends manage their own transport defaults.
	Timeout time.Duration
}

// HFConfig configures the HuggingFace Inference API backend.
type HFConfig struct {
	Token    string
	Endpoint string // full model inference URL
}

// OpenAIConfig configures the OpenAI backend.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional override for compatible APIs.
}

// AnthropicConfig configures the Anthropic backend.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// GeminiConfig configures the Gemini backend.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "huggingface",
		HuggingFace: HFConfig{
			Endpoint: DefaultHFEndpoint,
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("WASTESEP_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	if t := os.Getenv("WASTESEP_HF_TOKEN"); t != "" {
		cfg.HuggingFace.Token = t
	}
	if u := os.Getenv("WASTESEP_HF_ENDPOINT"); u != "" {
		cfg.HuggingFace.Endpoint = u
	}

	if k := os.Getenv("WASTESEP_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("WASTESEP_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("WASTESEP_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("WASTESEP_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("WASTESEP_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if k := os.Getenv("WASTESEP_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("WASTESEP_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	return cfg
}

// DiscoverConfig probes standard API key env vars in priority order
// (HuggingFace → Gemini → OpenAI → Anthropic) and returns a Config for the
// first backend whose key is found. Returns (Config{}, false) if none found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if t := os.Getenv("HF_TOKEN"); t != "" {
		cfg.Provider = "huggingface"
		cfg.HuggingFace.Token = t
		return cfg, true
	}
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected backend has its required credential set.
func (c Config) Validate() error {
	switch c.Provider {
	case "huggingface":
		if c.HuggingFace.Token == "" {
			return fmt.Errorf("WASTESEP_HF_TOKEN is required for the huggingface provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("WASTESEP_OPENAI_API_KEY is required for the openai provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("WASTESEP_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("WASTESEP_GEMINI_API_KEY is required for the gemini provider")
		}
	case "mock":
		// No credential needed.
	default:
		return fmt.Errorf("unknown text-generation provider: %q", c.Provider)
	}
	return nil
}
