package mock

import (
	"context"
	"strings"

	"github.com/studyport/coursematcher/core"
)

// MockSegmenter is a test double for ai.Segmenter.
// It allows custom behavior injection via function fields.
type MockSegmenter struct {
	// SegmentFunc is called by SegmentCourses if set.
	// If nil, uses default single-entry behavior.
	SegmentFunc func(ctx context.Context, text string) ([]core.ParsedEntry, error)

	callCount int
}

// NewMockSegmenter creates a mock segmenter with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockSegmenter().
func NewMockSegmenter() *MockSegmenter {
	return &MockSegmenter{}
}

// SegmentCourses returns mock course entries for the given text.
// Default behavior: the whole text becomes one entry, with the first sentence
// as the title. Blank text yields no entries, matching the production contract.
func (m *MockSegmenter) SegmentCourses(ctx context.Context, text string) ([]core.ParsedEntry, error) {
	m.callCount++

	if m.SegmentFunc != nil {
		return m.SegmentFunc(ctx, text)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return []core.ParsedEntry{}, nil
	}

	title := text
	if idx := strings.IndexByte(text, '.'); idx > 0 {
		title = text[:idx]
	}

	return []core.ParsedEntry{
		{Title: title, Description: text},
	}, nil
}

// CallCount returns the number of times SegmentCourses was called.
func (m *MockSegmenter) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockSegmenter) Reset() {
	m.callCount = 0
	m.SegmentFunc = nil
}
