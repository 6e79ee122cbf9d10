package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// csvHeader is the canonical column order for exports
var csvHeader = []string{"title", "content", "publish_date", "type"}

// WriteCSV writes the corpus back out in the canonical column order,
// so an exported file round-trips through LoadCSV.
func WriteCSV(w io.Writer, store *Store) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, a := range store.All() {
		record := []string{
			a.Title,
			a.Content,
			a.PublishDate.Format("2006-01-02"),
			string(a.Label),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", a.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ExportCSV writes the corpus to a file
func ExportCSV(path string, store *Store) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	return WriteCSV(f, store)
}
