package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/araddon/dateparse"

	"github.com/covlens/covlens/internal/model"
)

// LoadCSV reads a labeled corpus from a CSV file. The header row maps
// columns by name, so column order does not matter. Rows with an
// unparseable date or an unrecognized label are dropped, not repaired.
func LoadCSV(path string) ([]model.Article, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer func() { _ = f.Close() }()

	articles, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return articles, nil
}

// ReadCSV parses CSV content from a reader
func ReadCSV(r io.Reader) ([]model.Article, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows, drop them below

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var articles []model.Article
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed row: skip, keep reading
			continue
		}
		if article, ok := parseRow(record, cols); ok {
			articles = append(articles, article)
		}
	}

	if len(articles) == 0 {
		return nil, fmt.Errorf("no usable rows")
	}
	return articles, nil
}

// columnMap holds the resolved index of each required column
type columnMap struct {
	title   int
	content int
	date    int
	label   int
}

func mapColumns(header []string) (columnMap, error) {
	cols := columnMap{title: -1, content: -1, date: -1, label: -1}

	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "title":
			cols.title = i
		case "content", "text", "body":
			cols.content = i
		case "publish_date", "date", "published":
			cols.date = i
		case "type", "label":
			cols.label = i
		}
	}

	if cols.title < 0 || cols.content < 0 || cols.date < 0 || cols.label < 0 {
		return cols, fmt.Errorf("missing required columns (need title, content, publish_date, type), got %v", header)
	}
	return cols, nil
}

func parseRow(record []string, cols columnMap) (model.Article, bool) {
	max := cols.title
	for _, i := range []int{cols.content, cols.date, cols.label} {
		if i > max {
			max = i
		}
	}
	if len(record) <= max {
		return model.Article{}, false
	}

	label, ok := model.ParseLabel(record[cols.label])
	if !ok {
		return model.Article{}, false
	}

	// dateparse handles the format zoo (ISO, US, RFC, epoch); the
	// first successful interpretation wins, anything else drops the row
	published, err := dateparse.ParseAny(strings.TrimSpace(record[cols.date]))
	if err != nil {
		return model.Article{}, false
	}

	title := strings.TrimSpace(record[cols.title])
	content := strings.TrimSpace(record[cols.content])
	if content == "" {
		return model.Article{}, false
	}

	return model.Article{
		Title:       title,
		Content:     content,
		PublishDate: published,
		Label:       label,
	}, true
}
