package ai

import (
	"context"

	"github.com/studyport/coursematcher/core"
)

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must return unit-normalized vectors so that downstream
// dot-product scoring equals cosine similarity, and must be thread-safe for
// concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Segmenter converts arbitrary user text into an ordered sequence of
// course-like entries. Implementations must be thread-safe for concurrent use.
//
// The collaborator behind a Segmenter is a natural-language model and must
// not be assumed deterministic. When the extraction step fails, refuses, or
// produces output that cannot be parsed, implementations return an empty
// sequence rather than an error; callers own the fallback policy. Errors are
// reserved for transport-level failures, and callers are expected to treat
// them the same way as an empty sequence.
type Segmenter interface {
	// SegmentCourses extracts course-like entries from free text, in source
	// order. Entries without an explicit title in the text carry a short
	// synthesized one.
	SegmentCourses(ctx context.Context, text string) ([]core.ParsedEntry, error)
}

// AIProvider aggregates AI services for convenient initialization and
// lifecycle management. A provider creates and manages Embedder and Segmenter
// instances, ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	Embedder() Embedder

	// Segmenter returns the course segmentation service.
	Segmenter() Segmenter

	// Close releases resources held by the provider and its services.
	Close() error
}
