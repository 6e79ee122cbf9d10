package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/covlens/covlens/internal/fetch"
	"github.com/covlens/covlens/internal/model"
)

// Classifier scores one snippet of text
type Classifier interface {
	Classify(text string) model.ScoreResult
}

// PageFetcher resolves a URL to scoreable page text
type PageFetcher interface {
	PageText(ctx context.Context, rawURL string) (*fetch.Page, error)
}

// ClassifyJob scores one input line: either a raw text snippet or a
// URL whose page text gets fetched first.
type ClassifyJob struct {
	Input      string
	Classifier Classifier
	Fetcher    PageFetcher // required for URL inputs
	Limiter    *Limiter    // optional pacing for URL inputs
}

// Execute runs the job
func (j *ClassifyJob) Execute(ctx context.Context) Result {
	text := j.Input
	var page *fetch.Page

	if IsURL(j.Input) {
		if j.Fetcher == nil {
			return &ClassifyResult{Input: j.Input, Err: fmt.Errorf("no fetcher configured for URL input")}
		}
		if j.Limiter != nil {
			if err := j.Limiter.Wait(ctx, j.Input); err != nil {
				return &ClassifyResult{Input: j.Input, Err: err}
			}
		}

		fetched, err := j.Fetcher.PageText(ctx, j.Input)
		if err != nil {
			return &ClassifyResult{Input: j.Input, Err: fmt.Errorf("fetch %s: %w", j.Input, err)}
		}
		page = fetched
		text = fetched.Text
	}

	return &ClassifyResult{
		Input: j.Input,
		Page:  page,
		Score: j.Classifier.Classify(text),
	}
}

// ClassifyResult is the outcome of one batch line
type ClassifyResult struct {
	Input string
	Page  *fetch.Page // nil for raw text inputs
	Score model.ScoreResult
	Err   error
}

// GetError returns the job error, if any
func (r *ClassifyResult) GetError() error {
	return r.Err
}

// BatchProcessor classifies many inputs concurrently
type BatchProcessor struct {
	classifier  Classifier
	fetcher     PageFetcher
	limiter     *Limiter
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(classifier Classifier, fetcher PageFetcher, concurrency int, requestsPerSecond float64, burst int) *BatchProcessor {
	return &BatchProcessor{
		classifier:  classifier,
		fetcher:     fetcher,
		limiter:     NewLimiter(requestsPerSecond, burst),
		concurrency: concurrency,
	}
}

// Process classifies the inputs on the worker pool
func (b *BatchProcessor) Process(ctx context.Context, inputs []string) []*ClassifyResult {
	if len(inputs) == 0 {
		return []*ClassifyResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	go func() {
		<-ctx.Done()
		pool.Shutdown()
	}()

	for _, input := range inputs {
		pool.Submit(&ClassifyJob{
			Input:      input,
			Classifier: b.classifier,
			Fetcher:    b.fetcher,
			Limiter:    b.limiter,
		})
	}

	results := pool.Wait()

	out := make([]*ClassifyResult, 0, len(results))
	for _, result := range results {
		out = append(out, result.(*ClassifyResult))
	}
	return out
}

// ProcessFile reads inputs from a file and classifies them
func (b *BatchProcessor) ProcessFile(ctx context.Context, path string) ([]*ClassifyResult, error) {
	inputs, err := ReadInputsFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("read inputs: %w", err)
	}
	return b.Process(ctx, inputs), nil
}

// ReadInputsFromFile reads one input per line, skipping blank lines
// and # comments, deduplicating repeats.
func ReadInputsFromFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var inputs []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			inputs = append(inputs, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return inputs, nil
}

// IsURL reports whether an input line should be fetched rather than
// scored directly
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
