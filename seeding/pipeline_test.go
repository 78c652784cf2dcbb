package seeding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyport/coursematcher/ai/mock"
	"github.com/studyport/coursematcher/core"
	"github.com/studyport/coursematcher/storage"
	"github.com/studyport/coursematcher/storage/badger"
)

func newTestRepository(t *testing.T) storage.CourseRepository {
	t.Helper()
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func testRecords() []*core.CourseRecord {
	return []*core.CourseRecord{
		{
			Title:       "Introduction to Robotics",
			Code:        "RB101",
			Year:        1,
			Credits:     15,
			TotalHours:  150,
			Program:     "Robotics",
			Description: "Fundamentals of robot kinematics and control.",
		},
		{
			Title:       "Advanced Robotics",
			Code:        "RB301",
			Year:        3,
			Credits:     15,
			TotalHours:  150,
			Program:     "Robotics",
			Description: "Autonomous navigation and manipulation.",
		},
	}
}

func TestNewSeeder(t *testing.T) {
	repo := newTestRepository(t)
	provider := mock.NewMockProvider()

	t.Run("valid configuration", func(t *testing.T) {
		seeder, err := NewSeeder(repo, provider)
		require.NoError(t, err)
		assert.NotNil(t, seeder)
		seeder.Release()
	})

	t.Run("nil course repository", func(t *testing.T) {
		_, err := NewSeeder(nil, provider)
		assert.Equal(t, ErrCourseRepositoryRequired, err)
	})

	t.Run("nil provider", func(t *testing.T) {
		_, err := NewSeeder(repo, nil)
		assert.Equal(t, ErrAIProviderRequired, err)
	})
}

func TestSeed_EmbedsAndStoresCatalog(t *testing.T) {
	repo := newTestRepository(t)
	provider := mock.NewMockProvider()

	seeder, err := NewSeeder(repo, provider, WithModelName("test-model"))
	require.NoError(t, err)
	defer seeder.Release()

	ctx := context.Background()
	records := testRecords()
	require.NoError(t, seeder.Seed(ctx, records))

	for _, record := range records {
		assert.NotEmpty(t, record.Vector)
	}

	info, err := repo.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, info.Courses)
	assert.Equal(t, "test-model", info.Model)
	assert.Equal(t, len(records[0].Vector), info.Dimension)

	corpus, err := repo.LoadCorpus(ctx)
	require.NoError(t, err)
	assert.Len(t, corpus, 2)
}

func TestSeed_IsIdempotent(t *testing.T) {
	repo := newTestRepository(t)
	provider := mock.NewMockProvider()

	seeder, err := NewSeeder(repo, provider, WithModelName("test-model"))
	require.NoError(t, err)
	defer seeder.Release()

	ctx := context.Background()
	require.NoError(t, seeder.Seed(ctx, testRecords()))

	first, err := repo.ListCourses(ctx)
	require.NoError(t, err)

	// Seeding the same source again replaces, never duplicates
	require.NoError(t, seeder.Seed(ctx, testRecords()))

	second, err := repo.ListCourses(ctx)
	require.NoError(t, err)
	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Id, second[i].Id)
		assert.Equal(t, first[i].Title, second[i].Title)
	}
}

func TestSeed_SmallBatches(t *testing.T) {
	repo := newTestRepository(t)

	embedder := mock.NewMockEmbedder()
	provider := mock.NewMockProviderWithServices(embedder, mock.NewMockSegmenter())

	seeder, err := NewSeeder(repo, provider, WithBatchSize(1), WithPoolSize(2))
	require.NoError(t, err)
	defer seeder.Release()

	records := testRecords()
	require.NoError(t, seeder.Seed(context.Background(), records))

	// One EmbedTexts call per record
	assert.Equal(t, len(records), embedder.CallCount())
}

func TestSeed_EmbeddingFailure(t *testing.T) {
	repo := newTestRepository(t)

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(_ context.Context, _ []string) ([][]float32, error) {
		return nil, errors.New("embedding service unavailable")
	}
	provider := mock.NewMockProviderWithServices(embedder, mock.NewMockSegmenter())

	seeder, err := NewSeeder(repo, provider)
	require.NoError(t, err)
	defer seeder.Release()

	ctx := context.Background()
	require.Error(t, seeder.Seed(ctx, testRecords()))

	// The stored catalog is untouched by a failed run
	_, err = repo.Info(ctx)
	assert.ErrorIs(t, err, storage.ErrNotSeeded)
}

func TestSeed_NoRecords(t *testing.T) {
	repo := newTestRepository(t)
	seeder, err := NewSeeder(repo, mock.NewMockProvider())
	require.NoError(t, err)
	defer seeder.Release()

	assert.ErrorIs(t, seeder.Seed(context.Background(), nil), ErrNoCourses)
}
