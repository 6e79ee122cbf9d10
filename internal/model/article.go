package model

import (
	"strings"
	"time"
)

// Article is one labeled record of the corpus. Records are immutable
// once loaded; the loader drops rows it cannot parse instead of
// patching them up.
type Article struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	PublishDate time.Time `json:"publish_date"`
	Label       Label     `json:"label"`
}

// Label is the ground-truth annotation carried by the corpus
type Label string

const (
	LabelReal Label = "real" // reliable reporting
	LabelFake Label = "fake" // known misinformation
)

// ParseLabel maps a raw CSV value to a Label (case-insensitive).
// Returns false for values outside the real/fake vocabulary.
func ParseLabel(raw string) (Label, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "real", "reliable", "true":
		return LabelReal, true
	case "fake", "misinformation", "false":
		return LabelFake, true
	default:
		return "", false
	}
}

// WordCount counts whitespace-delimited tokens in the article body
func (a Article) WordCount() int {
	return len(strings.Fields(a.Content))
}
