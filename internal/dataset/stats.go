package dataset

import (
	"sort"

	"github.com/covlens/covlens/internal/model"
)

// Scorer is what Stats needs from the classifier
type Scorer interface {
	Classify(text string) model.ScoreResult
}

// Stats summarizes the loaded corpus and how the heuristic agrees with
// the ground-truth labels.
type Stats struct {
	Total        int            `json:"total"`
	Reliable     int            `json:"reliable"`
	Misinfo      int            `json:"misinformation"`
	AvgWordCount float64        `json:"avg_word_count"`
	ByMonth      []MonthCount   `json:"by_month"`
	Verdicts     map[string]int `json:"verdicts"`
	Agreement    float64        `json:"agreement"` // share of articles where verdict polarity matches label
}

// MonthCount is the number of articles published in one month
type MonthCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int    `json:"count"`
}

// ComputeStats scores every article and aggregates corpus-level
// numbers. The store is not modified; results are produced fresh.
func ComputeStats(store *Store, scorer Scorer) Stats {
	stats := Stats{
		Verdicts: make(map[string]int),
	}

	months := make(map[string]int)
	totalWords := 0
	agree := 0

	for _, a := range store.All() {
		stats.Total++
		switch a.Label {
		case model.LabelReal:
			stats.Reliable++
		case model.LabelFake:
			stats.Misinfo++
		}

		totalWords += a.WordCount()
		months[a.PublishDate.Format("2006-01")]++

		result := scorer.Classify(a.Content)
		stats.Verdicts[string(result.Verdict)]++

		predictedFake := result.Misleading()
		actualFake := a.Label == model.LabelFake
		if predictedFake == actualFake {
			agree++
		}
	}

	if stats.Total > 0 {
		stats.AvgWordCount = float64(totalWords) / float64(stats.Total)
		stats.Agreement = float64(agree) / float64(stats.Total)
	}

	for month, count := range months {
		stats.ByMonth = append(stats.ByMonth, MonthCount{Month: month, Count: count})
	}
	sort.Slice(stats.ByMonth, func(i, j int) bool {
		return stats.ByMonth[i].Month < stats.ByMonth[j].Month
	})

	return stats
}
