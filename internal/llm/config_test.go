package llm

import "testing"

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"WASTESEP_LLM_PROVIDER", "WASTESEP_HF_TOKEN", "WASTESEP_HF_ENDPOINT",
		"WASTESEP_OPENAI_API_KEY", "WASTESEP_ANTHROPIC_API_KEY", "WASTESEP_GEMINI_API_KEY",
		"HF_TOKEN", "GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY",
	} {
		t.Setenv(key, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != "huggingface" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.HuggingFace.Endpoint != DefaultHFEndpoint {
		t.Errorf("endpoint = %q", cfg.HuggingFace.Endpoint)
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("WASTESEP_LLM_PROVIDER", "huggingface")
	t.Setenv("WASTESEP_HF_TOKEN", "tok")
	t.Setenv("WASTESEP_HF_ENDPOINT", "https://example.com/models/custom")

	cfg := ConfigFromEnv()
	if cfg.Provider != "huggingface" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.HuggingFace.Token != "tok" {
		t.Errorf("token = %q", cfg.HuggingFace.Token)
	}
	if cfg.HuggingFace.Endpoint != "https://example.com/models/custom" {
		t.Errorf("endpoint = %q", cfg.HuggingFace.Endpoint)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("HF_TOKEN", "hf")
	t.Setenv("OPENAI_API_KEY", "oa")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "huggingface" {
		t.Errorf("provider = %q, want huggingface (highest priority)", cfg.Provider)
	}
}

func TestDiscoverConfigNone(t *testing.T) {
	clearProviderEnv(t)

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected discovery to fail with no keys set")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"huggingface without token", Config{Provider: "huggingface"}, true},
		{"huggingface with token", Config{Provider: "huggingface", HuggingFace: HFConfig{Token: "x"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"mock needs nothing", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "cohere"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
