package search

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/studyport/coursematcher/ai"
	"github.com/studyport/coursematcher/core"
	"github.com/studyport/coursematcher/storage"
)

// DefaultMaxHits is the number of matches returned per parsed entry when the
// caller does not ask for a specific count.
const DefaultMaxHits = 5

// emptyCatalogNote is attached to results produced against an un-seeded catalog.
const emptyCatalogNote = "course catalog is empty; run the seeder before searching"

// Searcher matches free-form course descriptions against the seeded catalog.
// It segments the text into course-like entries, embeds each entry and ranks
// the whole corpus by cosine similarity.
type Searcher struct {
	courseRepository storage.CourseRepository
	embedder         ai.Embedder
	segmenter        ai.Segmenter
	pool             *ants.Pool
	defaultMaxHits   int
	logger           *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithPoolSize sets the worker pool size for concurrent entry ranking.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(s *Searcher) error {
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

// WithDefaultMaxHits sets the per-entry match count used when a search is
// requested with a non-positive maxHits. Default is DefaultMaxHits.
func WithDefaultMaxHits(maxHits int) Option {
	return func(s *Searcher) error {
		if maxHits < 1 {
			maxHits = DefaultMaxHits
		}
		s.defaultMaxHits = maxHits
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	courseRepository storage.CourseRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Searcher, error) {
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

	s := &Searcher{
		courseRepository: courseRepository,
		embedder:         provider.Embedder(),
		segmenter:        provider.Segmenter(),
		pool:             pool,
		defaultMaxHits:   DefaultMaxHits,
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
// The searcher should not be used after calling Release.
func (s *Searcher) Release() {
	if s.pool != nil {
		s.pool.Release()
	}
}

// Search matches the given text against the catalog.
// Returns up to maxHits catalog courses per parsed entry, ranked by similarity.
func (s *Searcher) Search(ctx context.Context, text string, maxHits int) (*core.SearchResult, error) {
	return s.SearchWithMonitor(ctx, text, maxHits, nil)
}

// SearchWithMonitor matches the given text against the catalog with monitoring.
// The monitor receives callbacks at each stage of the search; AfterEntryRanked
// and EntryFailed may be called from concurrent workers.
//
// Segmentation never fails a request: a segmenter error or an empty extraction
// falls back to treating the whole text as a single entry. An un-seeded
// catalog yields an empty result carrying a diagnostic note. The request as a
// whole errors only when the corpus cannot be loaded or when every parsed
// entry failed to rank.
func (s *Searcher) SearchWithMonitor(ctx context.Context, text string, maxHits int, monitor SearchMonitor) (*core.SearchResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyQuery
	}
	if maxHits < 1 {
		maxHits = s.defaultMaxHits
	}

	monitor.Start(text)

	// 1. Segment the text into course-like entries
	entries, err := s.segmenter.SegmentCourses(ctx, text)
	if err != nil {
		s.logger.Warn("segmentation failed, treating text as one entry", "err", err)
		entries = nil
	}
	if len(entries) == 0 {
		// Fallback: the raw text stands in as both title and description, so
		// an unparseable request still gets ranked as a whole.
		entries = []core.ParsedEntry{{Title: text, Description: text}}
	}
	monitor.AfterSegmentation(entries)

	// 2. Load the embedded corpus
	corpus, err := s.courseRepository.LoadCorpus(ctx)
	if err != nil {
		s.logger.Error("error loading course corpus", "err", err)
		return nil, err
	}
	monitor.AfterCorpusLoad(len(corpus))

	result := &core.SearchResult{
		Query:   text,
		Entries: make([]core.EntryMatches, len(entries)),
	}

	if len(corpus) == 0 {
		for i, entry := range entries {
			result.Entries[i] = core.EntryMatches{Entry: entry, Matches: []core.SimilarityMatch{}}
		}
		result.Note = emptyCatalogNote
		s.summarize(result)
		monitor.Finish(result)
		return result, nil
	}

	// 3. Embed and rank each entry concurrently
	var wg sync.WaitGroup
	for i, entry := range entries {
		i, entry := i, entry
		wg.Add(1)
		task := func() {
			defer wg.Done()
			result.Entries[i] = s.rankEntry(ctx, i, entry, corpus, maxHits, monitor)
		}
		if err := s.pool.Submit(task); err != nil {
			// Pool unavailable, run inline
			task()
		}
	}
	wg.Wait()

	var firstErr error
	failed := 0
	for i := range result.Entries {
		if result.Entries[i].Err != nil {
			failed++
			if firstErr == nil {
				firstErr = result.Entries[i].Err
			}
		}
	}
	if failed == len(result.Entries) {
		return nil, fmt.Errorf("%w: %w", ErrAllEntriesFailed, firstErr)
	}

	// 4. Derive summary fields from the ranked entries
	s.summarize(result)
	monitor.Finish(result)

	return result, nil
}

// rankEntry embeds one parsed entry and ranks the corpus against it.
func (s *Searcher) rankEntry(ctx context.Context, index int, entry core.ParsedEntry, corpus []*core.CourseRecord, maxHits int, monitor SearchMonitor) core.EntryMatches {
	embedding, err := s.embedder.EmbedText(ctx, entry.QueryText())
	if err != nil {
		s.logger.Error("error embedding parsed entry", "entry", index, "title", entry.Title, "err", err)
		stageErr := &StageError{Stage: "embed", Entry: index, Err: err}
		monitor.EntryFailed(index, stageErr)
		return core.EntryMatches{Entry: entry, Matches: []core.SimilarityMatch{}, Err: stageErr}
	}

	matches := Rank(embedding, corpus, maxHits)
	monitor.AfterEntryRanked(index, matches)
	return core.EntryMatches{Entry: entry, Matches: matches}
}

// summarize fills the summary fields derived from the ranked entries.
//
// MatchesFor names the primary (first) entry. TopMatches lists the titles of
// the primary entry's best matches. GeneralTitle labels the catalog area by
// the most common program among all matched courses; ties break
// alphabetically so the label is stable across runs.
func (s *Searcher) summarize(result *core.SearchResult) {
	if len(result.Entries) == 0 {
		return
	}

	result.MatchesFor = result.Entries[0].Entry.Title

	primary := result.Entries[0].Matches
	if len(primary) == 0 {
		result.TopMatches = "No matches found"
	} else {
		titles := make([]string, 0, 3)
		for _, match := range primary {
			titles = append(titles, match.Record.Title)
			if len(titles) == 3 {
				break
			}
		}
		result.TopMatches = strings.Join(titles, ", ")
	}

	programCounts := make(map[string]int)
	for _, entry := range result.Entries {
		for _, match := range entry.Matches {
			if match.Record.Program != "" {
				programCounts[match.Record.Program]++
			}
		}
	}

	best := ""
	for program, count := range programCounts {
		if best == "" || count > programCounts[best] ||
			(count == programCounts[best] && program < best) {
			best = program
		}
	}
	if best == "" {
		result.GeneralTitle = "Courses"
	} else {
		result.GeneralTitle = best + " Courses"
	}
}
