package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/covlens/covlens/internal/cache"
	"github.com/covlens/covlens/internal/fetch"
	"github.com/covlens/covlens/internal/model"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "covlens",
	Short: "Covlens - COVID-19 misinformation heuristics (non-normative)",
	Long: `Covlens scores news text for COVID-19 misinformation signals using a
fixed, transparent keyword heuristic.

It does not determine what is true. The verdict reflects surface
indicators only: known misinformation phrases, references to health
authorities, shouting, and text length. Every indicator that moved a
score is reported alongside the verdict.

Covlens is a lens, not an oracle.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and build information for Covlens.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("covlens v0.2.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.covlens/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(filepath.Join(home, ".covlens"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match COVLENS_*
	viper.SetEnvPrefix("COVLENS")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// buildConfig overlays any loaded config file and COVLENS_* variables
// on the defaults. Flags are applied by the individual commands.
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil && verbose {
		fmt.Fprintf(os.Stderr, "Warning: ignoring malformed config values: %v\n", err)
	}
	return cfg
}

// newFetchClient wires the layered cache into a fetch client according
// to the cache configuration
func newFetchClient(cfg *model.Config) *fetch.Client {
	if !cfg.Cache.Enabled {
		return fetch.NewClient(cfg.HTTP, nil, 0)
	}

	dir := cfg.Cache.Dir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fetch.NewClient(cfg.HTTP, nil, 0)
		}
		dir = filepath.Join(home, ".covlens", "cache")
	}

	store := cache.NewLayered(cfg.Cache.MemoryTTL, dir, cfg.Cache.DiskTTL)
	return fetch.NewClient(cfg.HTTP, store, cfg.Cache.DiskTTL)
}

// resolveLLMKey pulls the provider API key from the environment.
// Ollama runs locally and needs no key.
func resolveLLMKey(cfg *model.Config) error {
	switch cfg.LLM.Provider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "ollama":
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}
	return nil
}
