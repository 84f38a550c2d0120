package llm

import "context"

// Provider is the narrow abstraction over a hosted text-generation service.
// The feedback composer only needs single-turn text completion, so requests
// carry one prompt rather than a conversation.
type Provider interface {
	// Generate sends a prompt and returns the generated text. Failures are
	// reported as typed errors (ErrStatus, ErrUnavailable) so callers can
	// degrade gracefully.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes a single text-generation call.
type Request struct {
	// System sets the model's role and constraints. Providers without a
	// separate system channel prepend it to the prompt.
	System string

	// Prompt is the user-visible query.
	Prompt string

	// MaxNewTokens limits the generated output length.
	MaxNewTokens int

	// Temperature controls randomness. 0 means provider default.
	Temperature float64

	// TopP enables nucleus sampling when > 0.
	TopP float64

	// TopK restricts sampling to the K most likely tokens when > 0.
	// Providers that do not expose top-k ignore it.
	TopK int
}

// Response holds the generated output.
type Response struct {
	// Text is the generated completion, without the prompt echoed back.
	Text string

	// Usage reports token consumption when the provider supplies it.
	Usage Usage

	// Model is the actual model that served the request.
	Model string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
