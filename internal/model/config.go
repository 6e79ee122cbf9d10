package model

import "time"

// Config is the complete runtime configuration.
// Overlay order (highest to lowest): CLI flags, COVLENS_* environment
// variables, ~/.covlens/config.yaml, the defaults below.
type Config struct {
	HTTP         HTTPConfig         `yaml:"http" json:"http"`
	Cache        CacheConfig        `yaml:"cache" json:"cache"`
	Server       ServerConfig       `yaml:"server" json:"server"`
	Dataset      DatasetConfig      `yaml:"dataset" json:"dataset"`
	Feed         FeedConfig         `yaml:"feed" json:"feed"`
	LLM          LLMConfig          `yaml:"llm" json:"llm"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency" json:"concurrency"`
	RateLimiting RateLimitingConfig `yaml:"rate_limiting" json:"rate_limiting"`
	Output       OutputConfig       `yaml:"output" json:"output"`
}

// HTTPConfig controls outbound fetches for the URL classification path
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent    string        `yaml:"user_agent" json:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" json:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls" json:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy" json:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy" json:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy" json:"no_proxy"`
}

// CacheConfig controls the layered fetch cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir" json:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// ServerConfig controls the API server
type ServerConfig struct {
	Addr         string        `yaml:"addr" json:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout" json:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" json:"write_timeout"`
	CORSOrigins  []string      `yaml:"cors_origins" json:"cors_origins"`
}

// DatasetConfig controls corpus loading
type DatasetConfig struct {
	CSVPath string `yaml:"csv_path" json:"csv_path"` // empty: synthetic fallback
	Seed    int64  `yaml:"seed" json:"seed"`
	Size    int    `yaml:"size" json:"size"`
}

// FeedConfig controls the simulated live feed
type FeedConfig struct {
	Enabled         bool    `yaml:"enabled" json:"enabled"`
	Seed            int64   `yaml:"seed" json:"seed"`
	EventsPerSecond float64 `yaml:"events_per_second" json:"events_per_second"`
	BufferSize      int     `yaml:"buffer_size" json:"buffer_size"`
}

// LLMConfig controls the optional explanation generator.
// The explainer never affects verdict or confidence.
type LLMConfig struct {
	Provider  string `yaml:"provider" json:"provider"` // "", "openai", "ollama"
	Model     string `yaml:"model" json:"model"`
	APIKey    string `yaml:"-" json:"-"`
	BaseURL   string `yaml:"base_url" json:"base_url"`
	Timeout   int    `yaml:"timeout_seconds" json:"timeout_seconds"`
	MaxTokens int    `yaml:"max_tokens" json:"max_tokens"`
}

// ConcurrencyConfig controls worker counts for batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" json:"workers"`
}

// RateLimitingConfig controls per-host pacing of outbound fetches
type RateLimitingConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" json:"burst_size"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "Covlens/0.2 (+https://github.com/covlens/covlens)",
			MaxBodyBytes: 2_000_000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "", // resolved to ~/.covlens/cache at startup
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			CORSOrigins:  []string{"*"},
		},
		Dataset: DatasetConfig{
			Seed: 42,
			Size: 100,
		},
		Feed: FeedConfig{
			Enabled:         true,
			Seed:            42,
			EventsPerSecond: 0.5,
			BufferSize:      200,
		},
		LLM: LLMConfig{
			Timeout:   30,
			MaxTokens: 500,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 8,
		},
		RateLimiting: RateLimitingConfig{
			RequestsPerSecond: 2.0,
			BurstSize:         5,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
