package search

import (
	"github.com/studyport/coursematcher/core"
)

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterSegmentation(entries []core.ParsedEntry)
	AfterCorpusLoad(courseCount int)
	AfterEntryRanked(entryIndex int, matches []core.SimilarityMatch)
	EntryFailed(entryIndex int, err error)
	Finish(result *core.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                                   {}
func (n *noopMonitor) AfterSegmentation(_ []core.ParsedEntry)           {}
func (n *noopMonitor) AfterCorpusLoad(_ int)                            {}
func (n *noopMonitor) AfterEntryRanked(_ int, _ []core.SimilarityMatch) {}
func (n *noopMonitor) EntryFailed(_ int, _ error)                       {}
func (n *noopMonitor) Finish(_ *core.SearchResult)                      {}
