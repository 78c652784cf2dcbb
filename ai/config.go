// Copyright 2025 StudyPort Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ai

import (
	"errors"
	"strings"
	"time"
)

// Config holds configuration for AI service providers.
type Config struct {
	// EmbeddingHost is the base URL for the embedding service API.
	// Example: "http://localhost:11434/v1" for a local OpenAI-compatible server
	EmbeddingHost string

	// SegmenterHost is the base URL for the course segmentation service API.
	SegmenterHost string

	// EmbeddingModel is the model identifier to use for text embeddings.
	// Example: "embeddinggemma", "text-embedding-3-small"
	EmbeddingModel string

	// SegmenterModel is the model identifier to use for course segmentation.
	// Example: "qwen2.5:3b", "gpt-4o-mini"
	SegmenterModel string

	// Token is the API token. Use "none" for local OpenAI-compatible services
	// that don't require authentication.
	Token string

	// SegmentTimeout bounds how long one segmentation call may take. A timed
	// out call yields an empty sequence, exactly like a failed extraction.
	// Default: 30s. Zero disables the bound.
	SegmentTimeout time.Duration
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithEmbeddingHost sets the embedding service host URL.
func WithEmbeddingHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
	}
}

// WithSegmenterHost sets the segmentation service host URL.
func WithSegmenterHost(host string) ConfigOption {
	return func(c *Config) {
		c.SegmenterHost = host
	}
}

// WithHost sets both embedding and segmenter hosts to the same URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
		c.SegmenterHost = host
	}
}

// WithEmbeddingModel sets the embedding model identifier.
func WithEmbeddingModel(model string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingModel = model
	}
}

// WithSegmenterModel sets the segmentation model identifier.
func WithSegmenterModel(model string) ConfigOption {
	return func(c *Config) {
		c.SegmenterModel = model
	}
}

// WithToken sets the API token for both services.
func WithToken(token string) ConfigOption {
	return func(c *Config) {
		c.Token = token
	}
}

// WithSegmentTimeout sets the segmentation call bound.
func WithSegmentTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.SegmentTimeout = timeout
	}
}

// DefaultConfig returns a Config with sensible defaults for local
// OpenAI-compatible services. Both services use the same host by default.
func DefaultConfig() *Config {
	defaultHost := "http://localhost:11434/v1"
	return &Config{
		EmbeddingHost:  defaultHost,
		SegmenterHost:  defaultHost,
		EmbeddingModel: "embeddinggemma",
		SegmenterModel: "qwen2.5:3b",
		Token:          "none",
		SegmentTimeout: 30 * time.Second,
	}
}

// NewConfig creates a Config with the default values and applies the provided
// options. This is the recommended way to create a Config with custom settings.
//
// Example:
//
//	cfg := ai.NewConfig(
//	    ai.WithHost("https://api.openai.com/v1"),
//	    ai.WithEmbeddingModel("text-embedding-3-small"),
//	    ai.WithSegmenterModel("gpt-4o-mini"),
//	    ai.WithToken(os.Getenv("OPENAI_API_KEY")),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It automatically adds the /v1 suffix to hosts if missing, which is required
// by most OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	if c.EmbeddingHost != "" && !strings.HasSuffix(c.EmbeddingHost, "/v1") {
		c.EmbeddingHost = strings.TrimSuffix(c.EmbeddingHost, "/") + "/v1"
	}
	if c.SegmenterHost != "" && !strings.HasSuffix(c.SegmenterHost, "/v1") {
		c.SegmenterHost = strings.TrimSuffix(c.SegmenterHost, "/") + "/v1"
	}
	if c.Token == "" {
		c.Token = "none"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.EmbeddingHost == "" {
		return errors.New("ai config: EmbeddingHost is required")
	}
	if c.SegmenterHost == "" {
		return errors.New("ai config: SegmenterHost is required")
	}
	if c.EmbeddingModel == "" {
		return errors.New("ai config: EmbeddingModel is required")
	}
	if c.SegmenterModel == "" {
		return errors.New("ai config: SegmenterModel is required")
	}
	if c.SegmentTimeout < 0 {
		return errors.New("ai config: SegmentTimeout cannot be negative")
	}
	return nil
}
