package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/covlens/covlens/internal/classify"
	"github.com/covlens/covlens/internal/dataset"
)

var (
	datasetCSV  string
	datasetSeed int64
	datasetSize int
)

// datasetCmd represents the dataset command
var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Inspect and export the labeled corpus",
	Long: `Dataset works with the labeled news corpus behind the dashboard.

Without --csv the deterministic synthetic corpus is used, so the
subcommands work out of the box.`,
}

var datasetInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Summarize the corpus and heuristic agreement",
	Long: `Info loads the corpus, scores every article, and prints aggregate
statistics: label counts, verdict distribution, publication months, and
how often the heuristic's polarity agrees with the ground-truth label.`,
	RunE: runDatasetInfo,
}

var datasetExportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export the corpus as CSV",
	Long: `Export writes the loaded corpus to a CSV file in the canonical
column order (title, content, publish_date, type). Exported files load
back without loss.`,
	Args: cobra.ExactArgs(1),
	RunE: runDatasetExport,
}

func init() {
	rootCmd.AddCommand(datasetCmd)
	datasetCmd.AddCommand(datasetInfoCmd)
	datasetCmd.AddCommand(datasetExportCmd)

	datasetCmd.PersistentFlags().StringVar(&datasetCSV, "csv", "", "corpus CSV path (default: synthetic corpus)")
	datasetCmd.PersistentFlags().Int64Var(&datasetSeed, "seed", 42, "seed for the synthetic corpus")
	datasetCmd.PersistentFlags().IntVar(&datasetSize, "size", 100, "size of the synthetic corpus")
}

func loadDatasetStore() (*dataset.Store, error) {
	cfg := buildConfig()
	cfg.Dataset.CSVPath = datasetCSV
	cfg.Dataset.Seed = datasetSeed
	cfg.Dataset.Size = datasetSize
	return dataset.Load(cfg.Dataset)
}

func runDatasetInfo(cmd *cobra.Command, args []string) error {
	store, err := loadDatasetStore()
	if err != nil {
		return err
	}

	stats := dataset.ComputeStats(store, classify.New())

	fmt.Printf("Source:          %s\n", store.Source())
	fmt.Printf("Articles:        %d (%d real, %d fake)\n", stats.Total, stats.Reliable, stats.Misinfo)
	fmt.Printf("Avg word count:  %.1f\n", stats.AvgWordCount)
	fmt.Printf("Label agreement: %.1f%%\n", stats.Agreement*100)
	fmt.Println()

	fmt.Println("Verdicts:")
	for verdict, count := range stats.Verdicts {
		fmt.Printf("  %-26s %d\n", verdict, count)
	}
	fmt.Println()

	fmt.Println("By month:")
	for _, mc := range stats.ByMonth {
		fmt.Printf("  %s  %d\n", mc.Month, mc.Count)
	}

	return nil
}

func runDatasetExport(cmd *cobra.Command, args []string) error {
	path := args[0]

	store, err := loadDatasetStore()
	if err != nil {
		return err
	}

	if err := dataset.ExportCSV(path, store); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "✓ Exported %d articles to %s\n", store.Len(), path)
	return nil
}
