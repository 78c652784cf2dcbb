package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// Course IDs are derived from content so that re-seeding the same catalog
// produces the same keys.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// Identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// CourseRecord is one entry of the course catalog.
// Records are created by the seeding pipeline and immutable afterwards; the
// whole catalog is dropped and recreated on re-seed.
type CourseRecord struct {
	Id                ID
	Title             string
	Code              string // SMS code, e.g. "ID750001 / IA750001"
	Year              int    // called "level" in the source data
	Credits           int
	Prerequisites     []string // ordered course codes
	DirectedHours     int
	WorkplaceHours    int
	SelfDirectedHours int
	TotalHours        int
	Program           string
	Description       string
	Vector            []float32 // unit-normalized embedding; stored out of band, see storage
}

// EmbeddingText returns the text a course is embedded from.
func (c *CourseRecord) EmbeddingText() string {
	return c.Title + ". " + c.Description
}

// ParsedEntry is one course-like unit extracted from free user text.
// The order of a parsed sequence is significant: the first entry is treated
// as the primary one for summary fields.
type ParsedEntry struct {
	Title       string
	Description string // may be empty
}

// QueryText returns the text an entry is embedded from.
func (e ParsedEntry) QueryText() string {
	return e.Title + ". " + e.Description
}

// SimilarityMatch pairs a catalog course with its similarity to a query vector.
type SimilarityMatch struct {
	Record *CourseRecord
	Score  float32
}

// EntryMatches holds the ranked matches for one parsed entry.
// Entries are addressed by position in SearchResult.Entries, so two entries
// that happen to share a title never collide.
type EntryMatches struct {
	Entry   ParsedEntry
	Matches []SimilarityMatch
	Err     error // stage failure for this entry; nil when ranking succeeded
}

// SearchResult is the outcome of one search request.
type SearchResult struct {
	Query        string
	GeneralTitle string // catalog label derived from the most common program among matched rows
	MatchesFor   string // title of the primary (first) parsed entry
	TopMatches   string // short summary of the primary entry's top match titles
	Entries      []EntryMatches
	Note         string // diagnostic note for recoverable empty states, e.g. an un-seeded catalog
}
