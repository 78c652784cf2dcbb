// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.Embedder, ai.Segmenter,
// and ai.AIProvider for use in unit tests. The mocks allow tests to run without
// external AI service dependencies and enable controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockProvider := mock.NewMockProvider()
//	embedding, err := mockProvider.Embedder().EmbedText(ctx, "test")
//
//	// Custom behavior injection
//	mockSegmenter := mock.NewMockSegmenter()
//	mockSegmenter.SegmentFunc = func(ctx context.Context, text string) ([]core.ParsedEntry, error) {
//	    return []core.ParsedEntry{{Title: "Algebra", Description: text}}, nil
//	}
//
//	// Check call counts
//	count := mockSegmenter.CallCount()
//
// # Default Behavior
//
// The mock implementations provide sensible defaults:
//
//   - MockEmbedder: Returns deterministic unit vectors based on text hash
//   - MockSegmenter: Treats the whole text as one course entry
//   - MockProvider: Aggregates mock embedder and segmenter
package mock
