package dataset

import (
	"fmt"

	"github.com/covlens/covlens/internal/model"
)

// Store owns the loaded corpus as a read-only value. It is built once
// at startup and passed explicitly to whatever needs it; nothing
// mutates the articles after construction.
type Store struct {
	articles []model.Article
	source   string // "csv:<path>" or "synthetic"
}

// NewStore wraps a slice of articles. The store takes ownership of the
// slice; callers must not modify it afterwards.
func NewStore(articles []model.Article, source string) *Store {
	for i := range articles {
		articles[i].ID = i
	}
	return &Store{articles: articles, source: source}
}

// Load builds a store from the configured CSV path, falling back to
// the deterministic synthetic corpus when no path is configured.
func Load(cfg model.DatasetConfig) (*Store, error) {
	if cfg.CSVPath == "" {
		return NewStore(Generate(cfg.Seed, cfg.Size), "synthetic"), nil
	}

	articles, err := LoadCSV(cfg.CSVPath)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	return NewStore(articles, "csv:"+cfg.CSVPath), nil
}

// Len returns the number of articles
func (s *Store) Len() int {
	return len(s.articles)
}

// Source describes where the corpus came from
func (s *Store) Source() string {
	return s.source
}

// All returns the full corpus. The returned slice is shared; treat it
// as read-only.
func (s *Store) All() []model.Article {
	return s.articles
}

// Get returns the article with the given ID
func (s *Store) Get(id int) (model.Article, bool) {
	if id < 0 || id >= len(s.articles) {
		return model.Article{}, false
	}
	return s.articles[id], true
}

// ByLabel returns the articles carrying the given label
func (s *Store) ByLabel(label model.Label) []model.Article {
	var out []model.Article
	for _, a := range s.articles {
		if a.Label == label {
			out = append(out, a)
		}
	}
	return out
}

// Page returns a window of the corpus for paginated listings
func (s *Store) Page(offset, limit int) []model.Article {
	if offset < 0 || offset >= len(s.articles) || limit <= 0 {
		return nil
	}
	end := offset + limit
	if end > len(s.articles) {
		end = len(s.articles)
	}
	return s.articles[offset:end]
}
