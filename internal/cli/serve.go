package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/covlens/covlens/internal/classify"
	"github.com/covlens/covlens/internal/dataset"
	"github.com/covlens/covlens/internal/feed"
	"github.com/covlens/covlens/internal/server"
)

var (
	serveAddr string
	csvPath   string
	noFeed    bool
	feedSeed  int64
	feedRate  float64
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard API server",
	Long: `Serve starts the HTTP API behind the misinformation dashboard:
- Classification endpoints for raw text and URLs
- Corpus browsing, per-article scoring, and aggregate statistics
- A simulated live feed of scored snippets
- CSV export of the loaded corpus

The corpus comes from --csv when given, otherwise a deterministic
synthetic corpus is generated. The live feed is a simulation driven by
a seeded generator, not an ingestion pipeline.

Example:
  covlens serve
  covlens serve --addr :9090 --csv news.csv
  covlens serve --no-feed`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&csvPath, "csv", "", "corpus CSV path (default: synthetic corpus)")
	serveCmd.Flags().BoolVar(&noFeed, "no-feed", false, "disable the simulated live feed")
	serveCmd.Flags().Int64Var(&feedSeed, "feed-seed", 42, "seed for the simulated feed")
	serveCmd.Flags().Float64Var(&feedRate, "feed-rate", 0.5, "simulated feed events per second")

	// Shared HTTP flags for the URL classification endpoint
	serveCmd.Flags().StringVar(&userAgent, "ua", "Covlens/0.2 (+https://github.com/covlens/covlens)", "HTTP User-Agent")
	serveCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the page cache")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := buildConfig()
	cfg.Server.Addr = serveAddr
	cfg.Dataset.CSVPath = csvPath
	cfg.Feed.Enabled = !noFeed
	cfg.Feed.Seed = feedSeed
	cfg.Feed.EventsPerSecond = feedRate
	cfg.HTTP.UserAgent = userAgent
	cfg.Cache.Enabled = !noCache

	store, err := dataset.Load(cfg.Dataset)
	if err != nil {
		return err
	}

	classifier := classify.New()

	var simulator *feed.Simulator
	if cfg.Feed.Enabled {
		simulator = feed.NewSimulator(cfg.Feed, classifier)
		go simulator.Start(ctx)
	}

	srv := server.New(cfg.Server, classifier, store, simulator, newFetchClient(cfg))

	fmt.Fprintf(os.Stderr, "Corpus:    %s (%d articles)\n", store.Source(), store.Len())
	if cfg.Feed.Enabled {
		fmt.Fprintf(os.Stderr, "Feed:      simulated, %.2g events/s (seed %d)\n", cfg.Feed.EventsPerSecond, cfg.Feed.Seed)
	} else {
		fmt.Fprintf(os.Stderr, "Feed:      disabled\n")
	}
	fmt.Fprintf(os.Stderr, "Listening: %s\n", cfg.Server.Addr)

	return srv.Run(ctx)
}
