package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/studyport/coursematcher/core"
)

func makeCorpus(vectors ...[]float32) []*core.CourseRecord {
	corpus := make([]*core.CourseRecord, len(vectors))
	for i, v := range vectors {
		corpus[i] = &core.CourseRecord{
			Id:     core.ID(i + 1),
			Title:  string(rune('A' + i)),
			Vector: v,
		}
	}
	return corpus
}

func TestRank_OrdersByDescendingScore(t *testing.T) {
	corpus := makeCorpus(
		[]float32{0.0, 1.0, 0.0},
		[]float32{1.0, 0.0, 0.0},
		[]float32{0.6, 0.8, 0.0},
	)

	matches := Rank([]float32{1.0, 0.0, 0.0}, corpus, 10)
	assert.Len(t, matches, 3)
	for i := 1; i < len(matches); i++ {
		assert.LessOrEqual(t, matches[i].Score, matches[i-1].Score)
	}
	assert.Equal(t, core.ID(2), matches[0].Record.Id)
	assert.InDelta(t, 1.0, matches[0].Score, 1e-6)
}

func TestRank_TruncatesToMaxHits(t *testing.T) {
	corpus := makeCorpus(
		[]float32{1.0, 0.0, 0.0},
		[]float32{0.0, 1.0, 0.0},
		[]float32{0.0, 0.0, 1.0},
	)

	matches := Rank([]float32{1.0, 0.0, 0.0}, corpus, 2)
	assert.Len(t, matches, 2)

	// maxHits larger than corpus returns everything
	matches = Rank([]float32{1.0, 0.0, 0.0}, corpus, 50)
	assert.Len(t, matches, 3)
}

func TestRank_StableOnTies(t *testing.T) {
	// Two courses with identical vectors keep corpus order
	corpus := makeCorpus(
		[]float32{0.6, 0.8, 0.0},
		[]float32{0.6, 0.8, 0.0},
		[]float32{0.0, 0.0, 1.0},
	)

	first := Rank([]float32{0.6, 0.8, 0.0}, corpus, 3)
	second := Rank([]float32{0.6, 0.8, 0.0}, corpus, 3)

	assert.Equal(t, core.ID(1), first[0].Record.Id)
	assert.Equal(t, core.ID(2), first[1].Record.Id)
	for i := range first {
		assert.Equal(t, first[i].Record.Id, second[i].Record.Id)
		assert.Equal(t, first[i].Score, second[i].Score)
	}
}

func TestRank_SkipsUnembeddedRecords(t *testing.T) {
	corpus := makeCorpus(
		[]float32{1.0, 0.0, 0.0},
		nil,
		[]float32{0.0, 1.0, 0.0},
	)
	corpus = append(corpus, nil)

	matches := Rank([]float32{1.0, 0.0, 0.0}, corpus, 10)
	assert.Len(t, matches, 2)
}

func TestRank_EmptyInputs(t *testing.T) {
	assert.Empty(t, Rank([]float32{1.0}, nil, 5))
	assert.Empty(t, Rank([]float32{1.0}, makeCorpus([]float32{1.0}), 0))
}

func TestRank_DoesNotMutateInputs(t *testing.T) {
	query := []float32{0.6, 0.8, 0.0}
	corpus := makeCorpus([]float32{0.6, 0.8, 0.0})

	Rank(query, corpus, 1)

	assert.Equal(t, []float32{0.6, 0.8, 0.0}, query)
	assert.Equal(t, []float32{0.6, 0.8, 0.0}, corpus[0].Vector)
}
