package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/covlens/covlens/internal/model"
)

func sampleResult() model.ScoreResult {
	return model.ScoreResult{
		Verdict:            model.VerdictLikelyMisinfo,
		Confidence:         95.0,
		StrongMisinfo:      9,
		MisinfoIndicators:  11,
		ReliableIndicators: 0,
		ExcessivePunct:     2,
		CapsWords:          4,
		WordCount:          30,
	}
}

func TestBuildPrompt_IncludesBreakdown(t *testing.T) {
	prompt := BuildPrompt("some snippet text", sampleResult())

	for _, want := range []string{
		"some snippet text",
		"Likely Misinformation",
		"95.0",
		"Strong misinformation subtotal: 9",
		"do not dispute it",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Prompt missing %q", want)
		}
	}
}

func TestBuildPrompt_TruncatesLongSnippets(t *testing.T) {
	long := strings.Repeat("x", 5000)
	prompt := BuildPrompt(long, sampleResult())

	if strings.Contains(prompt, long) {
		t.Error("Expected long snippet to be truncated")
	}
	if !strings.Contains(prompt, "…") {
		t.Error("Expected truncation marker")
	}
}

func TestNewProvider_Disabled(t *testing.T) {
	provider, err := NewProvider(Config{})
	if err != nil {
		t.Fatalf("Expected no error for empty provider, got %v", err)
	}
	if provider != nil {
		t.Error("Expected nil provider when disabled")
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	if _, err := NewProvider(Config{Provider: "gemini"}); err == nil {
		t.Error("Expected error for unknown provider")
	}
}

func TestNewProvider_OpenAIRequiresKey(t *testing.T) {
	if _, err := NewProvider(Config{Provider: "openai"}); err == nil {
		t.Error("Expected error for missing API key")
	}
}

func TestExplainer_DisabledIsNoOp(t *testing.T) {
	explainer, err := NewExplainer(Config{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if explainer.IsEnabled() {
		t.Error("Expected explainer to be disabled")
	}

	explanation, err := explainer.Explain(context.Background(), "text", sampleResult())
	if err != nil || explanation != nil {
		t.Errorf("Expected nil/nil from disabled explainer, got %v/%v", explanation, err)
	}
}

func TestOllamaProvider_Complete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model":"llama3.2","response":"  Strong misinformation keywords drove the verdict.  ","done":true,"eval_count":12}`))
	}))
	defer server.Close()

	explainer, err := NewExplainer(Config{Provider: "ollama", BaseURL: server.URL, Timeout: 5})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !explainer.IsEnabled() {
		t.Fatal("Expected explainer to be enabled")
	}

	explanation, err := explainer.Explain(context.Background(), "snippet", sampleResult())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if explanation.Provider != "ollama" {
		t.Errorf("Expected provider ollama, got %s", explanation.Provider)
	}
	if explanation.Text != "Strong misinformation keywords drove the verdict." {
		t.Errorf("Expected trimmed response text, got %q", explanation.Text)
	}
}

func TestOllamaProvider_ErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"model not found"}`))
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(Config{BaseURL: server.URL, Timeout: 5})
	if err != nil {
		t.Fatal(err)
	}

	_, err = provider.Complete(context.Background(), CompletionRequest{Prompt: "p"})
	if err == nil || !strings.Contains(err.Error(), "model not found") {
		t.Errorf("Expected surfaced API error, got %v", err)
	}
}
