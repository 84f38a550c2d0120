package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HFProvider implements Provider against the HuggingFace Inference API:
// a JSON POST to a fixed model endpoint with bearer-token authorization.
type HFProvider struct {
	token    string
	endpoint string
	client   *http.Client
}

// NewHFProvider creates a provider targeting the HuggingFace Inference API.
func NewHFProvider(cfg HFConfig, timeout time.Duration) (*HFProvider, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("huggingface token is required")
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultHFEndpoint
	}
	return &HFProvider{
		token:    cfg.Token,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}, nil
}

type hfParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	TopK           int     `json:"top_k"`
	TopP           float64 `json:"top_p"`
	ReturnFullText bool    `json:"return_full_text"`
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfGeneration struct {
	GeneratedText string `json:"generated_text"`
}

func (p *HFProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	// The inference API has no system channel; the system prompt is
	// prepended to the inputs.
	inputs := req.Prompt
	if req.System != "" {
		inputs = req.System + "\n\n" + req.Prompt
	}

	body := hfRequest{
		Inputs: inputs,
		Parameters: hfParameters{
			MaxNewTokens:   req.MaxNewTokens,
			Temperature:    req.Temperature,
			TopK:           req.TopK,
			TopP:           req.TopP,
			ReturnFullText: false,
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.token)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, &ErrUnavailable{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ErrUnavailable{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &ErrStatus{Code: resp.StatusCode, Body: string(raw)}
	}

	// Success payload is a JSON array whose first element carries the text.
	var generations []hfGeneration
	if err := json.Unmarshal(raw, &generations); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(generations) == 0 {
		return nil, fmt.Errorf("empty generation result")
	}

	return &Response{
		Text:  strings.TrimSpace(generations[0].GeneratedText),
		Model: p.ModelID(),
	}, nil
}

// ModelID returns the model segment of the inference endpoint.
func (p *HFProvider) ModelID() string {
	if i := strings.Index(p.endpoint, "/models/"); i >= 0 {
		return p.endpoint[i+len("/models/"):]
	}
	return p.endpoint
}
