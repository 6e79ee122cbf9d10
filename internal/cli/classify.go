package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/covlens/covlens/internal/classify"
	"github.com/covlens/covlens/internal/fetch"
	"github.com/covlens/covlens/internal/llm"
	"github.com/covlens/covlens/internal/model"
	"github.com/covlens/covlens/internal/render"
	"github.com/covlens/covlens/internal/worker"
)

var (
	outJSON     string
	outMD       string
	timeout     time.Duration
	userAgent   string
	maxBytes    int64
	noCache     bool
	noFooter    bool
	insecureTLS bool
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify <text-or-url>",
	Short: "Classify a text snippet or a web page for misinformation signals",
	Long: `Classify scores one input against the built-in keyword heuristic:
- Inputs starting with http:// or https:// are fetched first and the
  visible page text is scored
- Anything else is scored as-is
- The verdict arrives with the full indicator breakdown that produced it

Example:
  covlens classify "CDC officials published peer-reviewed trial data."
  covlens classify https://example.com/article --json report.json --md report.md
  covlens classify "..." --llm openai --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	// Output flags
	classifyCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	classifyCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	// HTTP flags
	classifyCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall timeout for URL inputs")
	classifyCmd.Flags().StringVar(&userAgent, "ua", "Covlens/0.2 (+https://github.com/covlens/covlens)", "HTTP User-Agent")
	classifyCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	classifyCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")
	classifyCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	classifyCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification (use for self-signed certs)")

	// LLM flags
	classifyCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM explanation generation")
	classifyCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	classifyCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runClassify(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Build configuration from flags
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.InsecureTLS = insecureTLS
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	// Configure LLM if enabled
	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel
		if err := resolveLLMKey(cfg); err != nil {
			return err
		}
	}

	classifier := classify.New()

	text := input
	var page *fetch.Page

	if worker.IsURL(input) {
		if verbose {
			fmt.Fprintf(os.Stderr, "Fetching: %s\n", input)
		}

		client := newFetchClient(cfg)
		fetched, err := client.PageText(ctx, input)
		if err != nil {
			return fmt.Errorf("fetch failed: %w", err)
		}
		page = fetched
		text = fetched.Text
	}

	result := classifier.Classify(text)

	report := &render.Report{
		Input:    input,
		ScoredAt: time.Now().UTC(),
		Result:   result,
	}
	if page != nil {
		report.SourceURL = page.URL
		report.SourceTitle = page.Title
	}

	// Generate the optional explanation after the verdict is fixed
	if llmEnabled {
		explainer, err := llm.NewExplainer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			return fmt.Errorf("configure LLM: %w", err)
		}

		explanation, err := explainer.Explain(ctx, text, result)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: explanation failed: %v\n", err)
		} else {
			report.Explanation = explanation
		}
	}

	renderer := render.NewRenderer(cfg.Output.IncludeFooter)
	renderer.Summary(os.Stdout, report)

	if outJSON != "" {
		if err := renderer.JSON(report, outJSON); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote %s\n", outJSON)
		}
	}
	if outMD != "" {
		if err := renderer.Markdown(report, outMD); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote %s\n", outMD)
		}
	}

	return nil
}
