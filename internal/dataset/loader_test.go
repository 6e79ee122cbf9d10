package dataset

import (
	"strings"
	"testing"

	"github.com/covlens/covlens/internal/model"
)

func TestReadCSV_BasicLoad(t *testing.T) {
	input := `title,content,publish_date,type
First article,Officials reported new clinical trial data today.,2020-03-15,real
Second article,WAKE UP the plandemic is a hoax!!!,03/20/2020,fake
`

	articles, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(articles) != 2 {
		t.Fatalf("Expected 2 articles, got %d", len(articles))
	}

	if articles[0].Label != model.LabelReal {
		t.Errorf("Expected first label real, got %s", articles[0].Label)
	}
	if articles[1].Label != model.LabelFake {
		t.Errorf("Expected second label fake, got %s", articles[1].Label)
	}

	// Both date formats must parse
	if articles[0].PublishDate.Year() != 2020 || articles[0].PublishDate.Month() != 3 {
		t.Errorf("Unexpected date for ISO format: %v", articles[0].PublishDate)
	}
	if articles[1].PublishDate.Day() != 20 {
		t.Errorf("Unexpected date for US format: %v", articles[1].PublishDate)
	}
}

func TestReadCSV_ColumnOrderIndependent(t *testing.T) {
	input := `type,publish_date,text,title
REAL,2020-06-01,Some body text about a study.,Reordered columns
`

	articles, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(articles) != 1 {
		t.Fatalf("Expected 1 article, got %d", len(articles))
	}
	if articles[0].Title != "Reordered columns" {
		t.Errorf("Column mapping failed: %+v", articles[0])
	}
	// Labels are case-insensitive
	if articles[0].Label != model.LabelReal {
		t.Errorf("Expected REAL to map to real, got %s", articles[0].Label)
	}
}

func TestReadCSV_DropsBadRows(t *testing.T) {
	input := `title,content,publish_date,type
Good row,Some content here.,2020-01-01,real
Bad date,Some content here.,not-a-date,real
Bad label,Some content here.,2020-01-02,satire
Empty content,,2020-01-03,real
Short row,only-two-fields
Another good row,More content here.,2020-01-04,fake
`

	articles, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(articles) != 2 {
		t.Errorf("Expected 2 usable rows, got %d", len(articles))
	}
}

func TestReadCSV_MissingColumns(t *testing.T) {
	input := `headline,body
Some headline,Some body
`

	_, err := ReadCSV(strings.NewReader(input))
	if err == nil {
		t.Fatal("Expected error for missing required columns")
	}
}

func TestReadCSV_AllRowsBad(t *testing.T) {
	input := `title,content,publish_date,type
Bad,Content,never,real
`

	_, err := ReadCSV(strings.NewReader(input))
	if err == nil {
		t.Fatal("Expected error when no rows survive")
	}
}
