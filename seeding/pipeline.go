package seeding

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/studyport/coursematcher/ai"
	"github.com/studyport/coursematcher/core"
	"github.com/studyport/coursematcher/storage"
)

// defaultBatchSize is how many courses are embedded per request.
const defaultBatchSize = 16

// Seeder embeds a parsed catalog and replaces the stored one with it.
// Embedding runs in concurrent batches; the catalog swap itself is a single
// drop-and-recreate, so a failed run never leaves a half-written catalog
// visible to readers.
type Seeder struct {
	courseRepository storage.CourseRepository
	embedder         ai.Embedder
	pool             *ants.Pool
	modelName        string
	batchSize        int
	logger           *slog.Logger
}

// Option configures a Seeder.
type Option func(*Seeder) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Seeder) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithPoolSize sets the worker pool size for concurrent batch embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(s *Seeder) error {
		if size < 1 {
			size = 1
		}

		if s.pool != nil {
			s.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		s.pool = pool
		return nil
	}
}

// WithBatchSize sets how many courses are embedded per request.
func WithBatchSize(size int) Option {
	return func(s *Seeder) error {
		if size < 1 {
			size = defaultBatchSize
		}
		s.batchSize = size
		return nil
	}
}

// WithModelName records which embedding model produced the catalog vectors.
// The name is stored in the catalog metadata for later inspection.
func WithModelName(name string) Option {
	return func(s *Seeder) error {
		s.modelName = name
		return nil
	}
}

// NewSeeder creates a new catalog seeder.
func NewSeeder(
	courseRepository storage.CourseRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Seeder, error) {
	if courseRepository == nil {
		return nil, ErrCourseRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	s := &Seeder{
		courseRepository: courseRepository,
		embedder:         provider.Embedder(),
		pool:             pool,
		batchSize:        defaultBatchSize,
		logger:           slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			s.Release()
			return nil, err
		}
	}

	return s, nil
}

// Release releases the worker pool.
// The seeder should not be used after calling Release.
func (s *Seeder) Release() {
	if s.pool != nil {
		s.pool.Release()
	}
}

// Seed embeds every record and atomically replaces the stored catalog.
// Records that already carry a vector are embedded again; the catalog is
// always rebuilt wholesale.
func (s *Seeder) Seed(ctx context.Context, records []*core.CourseRecord) error {
	if len(records) == 0 {
		return ErrNoCourses
	}

	start := time.Now()
	if err := s.embedAll(ctx, records); err != nil {
		return err
	}
	s.logger.Info("embedded catalog",
		"courses", len(records),
		"model", s.modelName,
		"took", time.Since(start))

	if err := s.courseRepository.ReplaceCatalog(ctx, records, s.modelName); err != nil {
		s.logger.Error("error replacing catalog", "err", err)
		return err
	}

	s.logger.Info("catalog replaced", "courses", len(records))
	return nil
}

// SeedFile loads a catalog source file and seeds from it.
func (s *Seeder) SeedFile(ctx context.Context, path string) (int, error) {
	records, err := LoadCatalogFile(path)
	if err != nil {
		return 0, err
	}
	if err := s.Seed(ctx, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// embedAll fills in record vectors in concurrent batches.
func (s *Seeder) embedAll(ctx context.Context, records []*core.CourseRecord) error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	setErr := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	for begin := 0; begin < len(records); begin += s.batchSize {
		end := begin + s.batchSize
		if end > len(records) {
			end = len(records)
		}
		batch := records[begin:end]

		wg.Add(1)
		task := func() {
			defer wg.Done()

			texts := make([]string, len(batch))
			for i, record := range batch {
				texts[i] = record.EmbeddingText()
			}

			vectors, err := s.embedder.EmbedTexts(ctx, texts)
			if err != nil {
				s.logger.Error("error embedding batch", "size", len(batch), "err", err)
				setErr(err)
				return
			}
			if len(vectors) != len(batch) {
				setErr(ErrEmbeddingCountMismatch)
				return
			}

			for i, record := range batch {
				record.Vector = vectors[i]
			}
		}
		if err := s.pool.Submit(task); err != nil {
			// Pool unavailable, run inline
			task()
		}
	}
	wg.Wait()

	return firstErr
}
