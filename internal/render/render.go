package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/covlens/covlens/internal/llm"
	"github.com/covlens/covlens/internal/model"
)

// Report is one classification plus its provenance, ready to render
type Report struct {
	Input       string            `json:"input"`
	SourceURL   string            `json:"source_url,omitempty"`
	SourceTitle string            `json:"source_title,omitempty"`
	ScoredAt    time.Time         `json:"scored_at"`
	Result      model.ScoreResult `json:"result"`
	Explanation *llm.Explanation  `json:"explanation,omitempty"`
}

// Renderer writes reports as JSON, Markdown, or a terminal summary
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// JSON writes the report to a file as indented JSON
func (r *Renderer) JSON(report *Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Markdown writes the report as a human-readable Markdown document
func (r *Renderer) Markdown(report *Report, path string) error {
	var b strings.Builder

	b.WriteString("# Classification Report\n\n")
	if report.SourceURL != "" {
		fmt.Fprintf(&b, "Source: %s\n\n", report.SourceURL)
	}
	if report.SourceTitle != "" {
		fmt.Fprintf(&b, "Title: %s\n\n", report.SourceTitle)
	}
	fmt.Fprintf(&b, "Scored at: %s\n\n", report.ScoredAt.Format(time.RFC3339))

	fmt.Fprintf(&b, "## Verdict\n\n**%s** (%.1f%% confidence)\n\n", report.Result.Verdict, report.Result.Confidence)

	b.WriteString("## Indicators\n\n")
	b.WriteString("| Signal | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Strong reliable subtotal | %d |\n", report.Result.StrongReliable)
	fmt.Fprintf(&b, "| Strong misinformation subtotal | %d |\n", report.Result.StrongMisinfo)
	fmt.Fprintf(&b, "| Reliable indicator total | %d |\n", report.Result.ReliableIndicators)
	fmt.Fprintf(&b, "| Misinformation indicator total | %d |\n", report.Result.MisinfoIndicators)
	fmt.Fprintf(&b, "| Excessive punctuation runs | %d |\n", report.Result.ExcessivePunct)
	fmt.Fprintf(&b, "| All-caps words | %d |\n", report.Result.CapsWords)
	fmt.Fprintf(&b, "| Word count | %d |\n", report.Result.WordCount)

	if report.Explanation != nil {
		fmt.Fprintf(&b, "\n## Explanation (%s/%s)\n\n%s\n", report.Explanation.Provider, report.Explanation.Model, report.Explanation.Text)
		b.WriteString("\n_The explanation is generated after scoring and never affects the verdict._\n")
	}

	if r.includeFooter {
		b.WriteString("\n---\n\nGenerated by covlens, a deterministic keyword heuristic, not a trained model.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Summary prints a short terminal summary
func (r *Renderer) Summary(w io.Writer, report *Report) {
	fmt.Fprintf(w, "\n")
	if report.SourceURL != "" {
		fmt.Fprintf(w, "Source:     %s\n", report.SourceURL)
	}
	fmt.Fprintf(w, "Verdict:    %s\n", report.Result.Verdict)
	fmt.Fprintf(w, "Confidence: %.1f%%\n", report.Result.Confidence)
	fmt.Fprintf(w, "Indicators: %d reliable / %d misinformation (strong: %d / %d)\n",
		report.Result.ReliableIndicators,
		report.Result.MisinfoIndicators,
		report.Result.StrongReliable,
		report.Result.StrongMisinfo,
	)
	fmt.Fprintf(w, "Words:      %d\n", report.Result.WordCount)
	if report.Explanation != nil {
		fmt.Fprintf(w, "\n%s\n", report.Explanation.Text)
	}
}
