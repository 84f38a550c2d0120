package llm

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHFProviderGenerate(t *testing.T) {
	var gotAuth string
	var gotBody hfRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode([]hfGeneration{
			{GeneratedText: "  Der Becher gehört in den Gelben Sack.\n"},
		})
	}))
	defer srv.Close()

	p, err := NewHFProvider(HFConfig{Token: "secret", Endpoint: srv.URL + "/models/test-model"}, 5*time.Second)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}

	resp, err := p.Generate(t.Context(), Request{
		System:       "Du bist ein Experte.",
		Prompt:       "Warum?",
		MaxNewTokens: 500,
		Temperature:  0.8,
		TopK:         50,
		TopP:         0.95,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if gotAuth != "Bearer secret" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if gotBody.Inputs != "Du bist ein Experte.\n\nWarum?" {
		t.Errorf("inputs = %q", gotBody.Inputs)
	}
	if gotBody.Parameters.MaxNewTokens != 500 {
		t.Errorf("max_new_tokens = %d", gotBody.Parameters.MaxNewTokens)
	}
	if gotBody.Parameters.Temperature != 0.8 {
		t.Errorf("temperature = %f", gotBody.Parameters.Temperature)
	}
	if gotBody.Parameters.TopK != 50 || gotBody.Parameters.TopP != 0.95 {
		t.Errorf("top_k = %d top_p = %f", gotBody.Parameters.TopK, gotBody.Parameters.TopP)
	}
	if gotBody.Parameters.ReturnFullText {
		t.Error("return_full_text must be false")
	}

	if resp.Text != "Der Becher gehört in den Gelben Sack." {
		t.Errorf("text = %q", resp.Text)
	}
	if resp.Model != "test-model" {
		t.Errorf("model = %q", resp.Model)
	}
}

func TestHFProviderNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error": "model loading"}`))
	}))
	defer srv.Close()

	p, err := NewHFProvider(HFConfig{Token: "secret", Endpoint: srv.URL + "/models/test-model"}, 5*time.Second)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}

	_, err = p.Generate(t.Context(), Request{Prompt: "Warum?"})
	var statusErr *ErrStatus
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected ErrStatus, got %v", err)
	}
	if statusErr.Code != 503 {
		t.Errorf("code = %d, want 503", statusErr.Code)
	}
	if statusErr.Body == "" {
		t.Error("expected response body to be captured")
	}
}

func TestHFProviderUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down before the call

	p, err := NewHFProvider(HFConfig{Token: "secret", Endpoint: srv.URL + "/models/test-model"}, time.Second)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}

	_, err = p.Generate(t.Context(), Request{Prompt: "Warum?"})
	var unavailErr *ErrUnavailable
	if !errors.As(err, &unavailErr) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestHFProviderRequiresToken(t *testing.T) {
	if _, err := NewHFProvider(HFConfig{}, time.Second); err == nil {
		t.Fatal("expected error for missing token")
	}
}

func TestHFProviderModelID(t *testing.T) {
	p, err := NewHFProvider(HFConfig{Token: "x"}, time.Second)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	if got := p.ModelID(); got != "mistralai/Mixtral-8x7B-Instruct-v0.1" {
		t.Errorf("model ID = %q", got)
	}
}
