package worker

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/covlens/covlens/internal/classify"
	"github.com/covlens/covlens/internal/fetch"
	"github.com/covlens/covlens/internal/model"
)

type stubFetcher struct {
	pages map[string]string
}

func (f *stubFetcher) PageText(ctx context.Context, rawURL string) (*fetch.Page, error) {
	text, ok := f.pages[rawURL]
	if !ok {
		return nil, os.ErrNotExist
	}
	return &fetch.Page{URL: rawURL, FinalURL: rawURL, Text: text}, nil
}

func TestBatchProcessor_TextInputs(t *testing.T) {
	processor := NewBatchProcessor(classify.New(), nil, 4, 10, 5)

	inputs := []string{
		"The CDC and WHO confirm peer-reviewed clinical trial results.",
		"This is a plandemic using microchip and 5g to control population control.",
	}

	results := processor.Process(context.Background(), inputs)

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	verdicts := make(map[model.Verdict]int)
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("Unexpected error for %q: %v", r.Input, r.Err)
		}
		verdicts[r.Score.Verdict]++
	}

	if verdicts[model.VerdictLikelyReliable] != 1 || verdicts[model.VerdictLikelyMisinfo] != 1 {
		t.Errorf("Unexpected verdict distribution: %v", verdicts)
	}
}

func TestBatchProcessor_URLInputs(t *testing.T) {
	fetcher := &stubFetcher{pages: map[string]string{
		"https://example.com/a": "The CDC released peer-reviewed clinical trial results.",
	}}
	processor := NewBatchProcessor(classify.New(), fetcher, 2, 100, 10)

	results := processor.Process(context.Background(), []string{
		"https://example.com/a",
		"https://example.com/missing",
	})

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	var okCount, errCount int
	for _, r := range results {
		if r.Err != nil {
			errCount++
			continue
		}
		okCount++
		if r.Page == nil {
			t.Errorf("Expected page metadata for URL input %q", r.Input)
		}
	}

	if okCount != 1 || errCount != 1 {
		t.Errorf("Expected 1 success and 1 failure, got %d/%d", okCount, errCount)
	}
}

func TestBatchProcessor_URLWithoutFetcher(t *testing.T) {
	processor := NewBatchProcessor(classify.New(), nil, 1, 10, 5)

	results := processor.Process(context.Background(), []string{"https://example.com/x"})
	if len(results) != 1 || results[0].Err == nil {
		t.Error("Expected error when classifying a URL with no fetcher")
	}
}

func TestReadInputsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputs.txt")
	content := strings.Join([]string{
		"# comment line",
		"",
		"first snippet",
		"https://example.com/page",
		"first snippet", // duplicate
		"  second snippet  ",
	}, "\n")

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	inputs, err := ReadInputsFromFile(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := []string{"first snippet", "https://example.com/page", "second snippet"}
	if len(inputs) != len(want) {
		t.Fatalf("Expected %d inputs, got %d: %v", len(want), len(inputs), inputs)
	}
	for i := range want {
		if inputs[i] != want[i] {
			t.Errorf("Input %d: expected %q, got %q", i, want[i], inputs[i])
		}
	}
}

func TestIsURL(t *testing.T) {
	if !IsURL("https://example.com") || !IsURL("http://example.com") {
		t.Error("Expected http(s) prefixes to be detected as URLs")
	}
	if IsURL("the cdc says") || IsURL("ftp://example.com") {
		t.Error("Expected non-http inputs to be treated as text")
	}
}
