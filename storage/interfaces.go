package storage

import (
	"context"
	"time"

	"github.com/studyport/coursematcher/core"
)

// CatalogInfo describes the currently seeded catalog.
type CatalogInfo struct {
	Dimension int       // embedding vector dimension
	Model     string    // embedding model identifier used at seed time
	Courses   int       // number of seeded records
	SeededAt  time.Time // when the catalog was last replaced
}

// CourseRepository provides access to the seeded course catalog.
// Implementations must be thread-safe for concurrent reads; seeding
// (ReplaceCatalog) is an offline maintenance operation and must not run
// concurrently with serving.
type CourseRepository interface {
	// ReplaceCatalog atomically drops the stored catalog and writes the given
	// records in its place. Records must carry unit-normalized vectors.
	// Seeding is idempotent at whole-catalog granularity only.
	ReplaceCatalog(ctx context.Context, records []*core.CourseRecord, model string) error

	// LoadCorpus returns every course that carries an embedding, with vectors
	// decoded from the stored fixed-width blobs. Returns a DecodeError if any
	// stored blob cannot be decoded. Order is store-native.
	LoadCorpus(ctx context.Context) ([]*core.CourseRecord, error)

	// ListCourses returns all courses ordered by (year asc, title asc),
	// without vectors.
	ListCourses(ctx context.Context) ([]*core.CourseRecord, error)

	// Info returns catalog metadata. Returns ErrNotSeeded if the catalog has
	// never been seeded.
	Info(ctx context.Context) (*CatalogInfo, error)

	// Close closes the repository and releases resources.
	Close() error
}
