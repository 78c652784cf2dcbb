package search

import (
	"sort"

	"github.com/studyport/coursematcher/core"
)

// Rank scores every course in the corpus against the query vector and returns
// the top maxHits matches in descending score order. Both inputs are expected
// to be unit vectors, so the dot product is the cosine similarity.
//
// The corpus is never mutated and the query vector is used as-is. Ranking is
// deterministic: equal scores keep the corpus order, so repeated calls over
// the same corpus produce identical output.
func Rank(queryVector []float32, corpus []*core.CourseRecord, maxHits int) []core.SimilarityMatch {
	if maxHits < 1 || len(corpus) == 0 {
		return []core.SimilarityMatch{}
	}

	matches := make([]core.SimilarityMatch, 0, len(corpus))
	for _, record := range corpus {
		if record == nil || len(record.Vector) == 0 {
			continue
		}
		matches = append(matches, core.SimilarityMatch{
			Record: record,
			Score:  core.Dot(queryVector, record.Vector),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > maxHits {
		matches = matches[:maxHits]
	}
	return matches
}
