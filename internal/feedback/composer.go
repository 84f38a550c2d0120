package feedback

import (
	"context"
	"errors"
	"fmt"

	"github.com/hosthans/ids-wasteseparation/internal/llm"
	"github.com/hosthans/ids-wasteseparation/internal/quiz"
	"github.com/hosthans/ids-wasteseparation/internal/waste"
)

// Config holds the generation parameters for explanation requests.
type Config struct {
	MaxNewTokens int
	Temperature  float64
	TopK         int
	TopP         float64
}

// DefaultConfig returns the tuned explanation parameters.
func DefaultConfig() Config {
	return Config{
		MaxNewTokens: 500,
		Temperature:  0.8,
		TopK:         50,
		TopP:         0.95,
	}
}

// Composer turns an evaluated answer into user-facing feedback text and
// applies the difficulty-adjustment rule. Service failures never escape it:
// an unreachable or erroring text-generation backend degrades to a local
// hint plus an error placeholder, and the quiz flow continues.
type Composer struct {
	provider llm.Provider
	cfg      Config
}

// NewComposer creates a Composer. provider may be nil; feedback then
// consists of the local hint only.
func NewComposer(provider llm.Provider, cfg Config) *Composer {
	return &Composer{provider: provider, cfg: cfg}
}

// Compose builds the feedback message for an evaluated answer and returns
// it together with the adjusted difficulty level. The level is taken and
// returned explicitly so the caller owns all session state; Compose itself
// mutates nothing.
//
// Incorrect answers block on one outbound explanation call. No retry, no
// extra timeout beyond the transport default.
func (c *Composer) Compose(ctx context.Context, level quiz.Level, item waste.Item, selected []waste.Type, correct bool) (string, quiz.Level) {
	if correct {
		return PraiseMessage, level.Raise()
	}

	msg := hintLine(item) + "\n\n" + c.explain(ctx, item, selected)
	return msg, level.Lower()
}

// explain fetches the external explanation, degrading to a placeholder
// containing the status detail on any failure.
func (c *Composer) explain(ctx context.Context, item waste.Item, selected []waste.Type) string {
	if c.provider == nil {
		return "Keine weitere Erklärung verfügbar."
	}

	ctx = llm.WithPurpose(ctx, "explanation")

	resp, err := c.provider.Generate(ctx, llm.Request{
		System:       explanationSystemPrompt,
		Prompt:       buildQuery(item, selected),
		MaxNewTokens: c.cfg.MaxNewTokens,
		Temperature:  c.cfg.Temperature,
		TopK:         c.cfg.TopK,
		TopP:         c.cfg.TopP,
	})
	if err != nil {
		var statusErr *llm.ErrStatus
		if errors.As(err, &statusErr) {
			return fmt.Sprintf("Error: %d, unable to fetch the explanation.", statusErr.Code)
		}
		return fmt.Sprintf("Error: %v, unable to fetch the explanation.", err)
	}

	return resp.Text
}
