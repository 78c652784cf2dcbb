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


package coursematcher

import (
	"log/slog"

	"github.com/studyport/coursematcher/ai"
	"github.com/studyport/coursematcher/ai/openai"
	"github.com/studyport/coursematcher/search"
	"github.com/studyport/coursematcher/seeding"
	"github.com/studyport/coursematcher/storage"
	"github.com/studyport/coursematcher/storage/badger"
)

// Catalog bundles the course store and the AI services behind one handle.
// It is the entry point for embedding applications and for the CLI.
type Catalog struct {
	backend    *badger.Backend
	courseRepo storage.CourseRepository
	provider   ai.AIProvider
	aiConfig   *ai.Config
	logger     *slog.Logger
}

// CatalogOption configures a Catalog.
type CatalogOption func(*catalogOptions)

type catalogOptions struct {
	aiConfig *ai.Config
	inMemory bool
}

// WithAIConfig overrides the default AI service configuration.
func WithAIConfig(config *ai.Config) CatalogOption {
	return func(o *catalogOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithInMemoryStore keeps the catalog in memory instead of on disk.
// Useful for tests and throwaway environments.
func WithInMemoryStore() CatalogOption {
	return func(o *catalogOptions) {
		o.inMemory = true
	}
}

// OpenCatalog opens (or creates) a catalog at the given path.
func OpenCatalog(filePath string, opts ...CatalogOption) (*Catalog, error) {
	options := &catalogOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	courseRepo, err := badger.NewCourseRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		courseRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Catalog{
		backend:    backend,
		courseRepo: courseRepo,
		provider:   provider,
		aiConfig:   options.aiConfig,
		logger:     slog.Default(),
	}, nil
}

// Close releases all resources held by the catalog.
func (c *Catalog) Close() error {
	if err := c.provider.Close(); err != nil {
		c.logger.Error("error closing AI provider", "err", err)
	}

	if err := c.courseRepo.Close(); err != nil {
		c.logger.Error("error closing course repository", "err", err)
		return err
	}

	if err := c.backend.Close(); err != nil {
		c.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// CourseRepository returns the underlying course store.
func (c *Catalog) CourseRepository() storage.CourseRepository {
	return c.courseRepo
}

// NewSearcher creates a searcher over this catalog.
func (c *Catalog) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(c.courseRepo, c.provider, opts...)
}

// NewSeeder creates a seeder for this catalog. The embedding model name is
// recorded with the seeded data unless overridden by options.
func (c *Catalog) NewSeeder(opts ...seeding.Option) (*seeding.Seeder, error) {
	merged := append([]seeding.Option{seeding.WithModelName(c.aiConfig.EmbeddingModel)}, opts...)
	return seeding.NewSeeder(c.courseRepo, c.provider, merged...)
}
