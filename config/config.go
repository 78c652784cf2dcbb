// Package config loads application configuration from a YAML file.
//
// A missing file is not an error: defaults cover local development against an
// Ollama-compatible endpoint. Secrets never live in the file itself; the AI
// section names an environment variable that holds the API key.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// HTTPConfig holds the HTTP server settings.
type HTTPConfig struct {
	Addr                string `yaml:"addr"`
	ReadTimeoutSecs     int    `yaml:"read_timeout_secs"`
	WriteTimeoutSecs    int    `yaml:"write_timeout_secs"`
	IdleTimeoutSecs     int    `yaml:"idle_timeout_secs"`
	ShutdownTimeoutSecs int    `yaml:"shutdown_timeout_secs"`
}

// StorageConfig holds the catalog store settings.
type StorageConfig struct {
	Path     string `yaml:"path"`
	InMemory bool   `yaml:"in_memory"`
}

// AIConfig holds the embedding and segmentation service settings.
type AIConfig struct {
	EmbeddingHost      string `yaml:"embedding_host"`
	SegmenterHost      string `yaml:"segmenter_host"`
	EmbeddingModel     string `yaml:"embedding_model"`
	SegmenterModel     string `yaml:"segmenter_model"`
	APIKeyEnv          string `yaml:"api_key_env"`
	SegmentTimeoutSecs int    `yaml:"segment_timeout_secs"`
}

// SearchConfig holds search behavior settings.
type SearchConfig struct {
	DefaultMaxHits int `yaml:"default_max_hits"`
	PoolSize       int `yaml:"pool_size"`
}

// SeedingConfig holds catalog seeding settings.
type SeedingConfig struct {
	BatchSize int `yaml:"batch_size"`
	PoolSize  int `yaml:"pool_size"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Storage StorageConfig `yaml:"storage"`
	AI      AIConfig      `yaml:"ai"`
	Search  SearchConfig  `yaml:"search"`
	Seeding SeedingConfig `yaml:"seeding"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	applyConfigDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// APIKey resolves the AI service API key from the configured environment
// variable. Returns an empty string when unset.
func (c *AIConfig) APIKey() string {
	if c.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(c.APIKeyEnv)
}

// SegmentTimeout returns the segmentation timeout as a duration.
func (c *AIConfig) SegmentTimeout() time.Duration {
	return time.Duration(c.SegmentTimeoutSecs) * time.Second
}

// Validate checks the configuration for values that cannot work.
func (c *AppConfig) Validate() error {
	if c.HTTP.Addr == "" {
		return errors.New("http.addr must not be empty")
	}
	if !c.Storage.InMemory && c.Storage.Path == "" {
		return errors.New("storage.path must be set unless storage.in_memory is true")
	}
	if c.AI.EmbeddingModel == "" {
		return errors.New("ai.embedding_model must not be empty")
	}
	if c.Search.DefaultMaxHits < 1 || c.Search.DefaultMaxHits > 50 {
		return errors.New("search.default_max_hits must be between 1 and 50")
	}
	return nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{}
	applyConfigDefaults(cfg)
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8000"
	}
	if cfg.HTTP.ReadTimeoutSecs == 0 {
		cfg.HTTP.ReadTimeoutSecs = 15
	}
	if cfg.HTTP.WriteTimeoutSecs == 0 {
		cfg.HTTP.WriteTimeoutSecs = 60
	}
	if cfg.HTTP.IdleTimeoutSecs == 0 {
		cfg.HTTP.IdleTimeoutSecs = 120
	}
	if cfg.HTTP.ShutdownTimeoutSecs == 0 {
		cfg.HTTP.ShutdownTimeoutSecs = 10
	}
	if cfg.Storage.Path == "" && !cfg.Storage.InMemory {
		cfg.Storage.Path = "data/catalog"
	}
	if cfg.AI.EmbeddingHost == "" {
		cfg.AI.EmbeddingHost = "http://localhost:11434/v1"
	}
	if cfg.AI.SegmenterHost == "" {
		cfg.AI.SegmenterHost = cfg.AI.EmbeddingHost
	}
	if cfg.AI.EmbeddingModel == "" {
		cfg.AI.EmbeddingModel = "embeddinggemma"
	}
	if cfg.AI.SegmenterModel == "" {
		cfg.AI.SegmenterModel = "qwen2.5:3b"
	}
	if cfg.AI.APIKeyEnv == "" {
		cfg.AI.APIKeyEnv = "OPENAI_API_KEY"
	}
	if cfg.AI.SegmentTimeoutSecs == 0 {
		cfg.AI.SegmentTimeoutSecs = 30
	}
	if cfg.Search.DefaultMaxHits == 0 {
		cfg.Search.DefaultMaxHits = 5
	}
	if cfg.Seeding.BatchSize == 0 {
		cfg.Seeding.BatchSize = 16
	}
}
