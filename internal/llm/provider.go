package llm

import (
	"context"
	"fmt"

	"github.com/covlens/covlens/internal/model"
)

// Provider is a text-generation backend for the optional explainer
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete generates a completion for the prompt
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}

// CompletionRequest is the input for one generation call
type CompletionRequest struct {
	System    string
	Prompt    string
	Model     string
	MaxTokens int
}

// CompletionResponse is the generation output
type CompletionResponse struct {
	Text       string
	Model      string
	TokensUsed int
}

// Config holds provider configuration
type Config struct {
	Provider  string // "openai", "ollama", "" (disabled)
	Model     string
	APIKey    string
	BaseURL   string
	Timeout   int // seconds
	MaxTokens int
}

// ConfigFromModel converts the application config section
func ConfigFromModel(cfg model.LLMConfig) Config {
	return Config{
		Provider:  cfg.Provider,
		Model:     cfg.Model,
		APIKey:    cfg.APIKey,
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		MaxTokens: cfg.MaxTokens,
	}
}

// Explanation is the optional natural-language companion to a score.
// It NEVER feeds back into the verdict or confidence: the heuristic
// decides first, the explainer only narrates the decision.
type Explanation struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	Text     string `json:"text"`
}

// Explainer wraps a provider and builds explanation prompts
type Explainer struct {
	provider Provider
	config   Config
}

// NewExplainer creates an explainer from configuration. With no
// provider configured it returns a disabled explainer, not an error.
func NewExplainer(cfg Config) (*Explainer, error) {
	provider, err := NewProvider(cfg)
	if err != nil {
		return nil, err
	}
	return &Explainer{provider: provider, config: cfg}, nil
}

// IsEnabled reports whether a provider is configured
func (e *Explainer) IsEnabled() bool {
	return e != nil && e.provider != nil
}

// Explain generates a short explanation of an already-decided score
func (e *Explainer) Explain(ctx context.Context, text string, result model.ScoreResult) (*Explanation, error) {
	if !e.IsEnabled() {
		return nil, nil
	}

	resp, err := e.provider.Complete(ctx, CompletionRequest{
		System:    "You explain the output of a deterministic keyword heuristic. You never second-guess its verdict.",
		Prompt:    BuildPrompt(text, result),
		Model:     e.config.Model,
		MaxTokens: e.config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.provider.Name(), err)
	}

	return &Explanation{
		Provider: e.provider.Name(),
		Model:    resp.Model,
		Text:     resp.Text,
	}, nil
}

// BuildPrompt constructs the explanation prompt from the snippet and
// its breakdown. The verdict is presented as fixed.
func BuildPrompt(text string, result model.ScoreResult) string {
	snippet := text
	if len(snippet) > 1200 {
		snippet = snippet[:1200] + "…"
	}

	return fmt.Sprintf(`A rule-based heuristic scored the following snippet. The verdict is final; do not dispute it.

Snippet:
%s

Heuristic output:
- Verdict: %s
- Confidence: %.1f%%
- Strong reliable subtotal: %d
- Strong misinformation subtotal: %d
- Reliable indicator total: %d
- Misinformation indicator total: %d
- Excessive punctuation runs: %d
- All-caps words: %d
- Word count: %d

In 2-3 sentences, explain in plain language which kinds of indicators drove this verdict. Mention keyword evidence and text-quality signals only if their counters are non-zero.`,
		snippet,
		result.Verdict,
		result.Confidence,
		result.StrongReliable,
		result.StrongMisinfo,
		result.ReliableIndicators,
		result.MisinfoIndicators,
		result.ExcessivePunct,
		result.CapsWords,
		result.WordCount,
	)
}
