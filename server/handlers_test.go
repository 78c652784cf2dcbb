package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyport/coursematcher/ai/mock"
	"github.com/studyport/coursematcher/core"
	"github.com/studyport/coursematcher/search"
	"github.com/studyport/coursematcher/storage"
	"github.com/studyport/coursematcher/storage/badger"
)

func newTestServer(t *testing.T, seed bool) (*Server, storage.CourseRepository) {
	t.Helper()

	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})

	if seed {
		records := []*core.CourseRecord{
			{
				Title:       "Advanced Robotics",
				Code:        "RB301",
				Year:        3,
				Credits:     15,
				Program:     "Robotics",
				Description: "Autonomous navigation and manipulation.",
				Vector:      []float32{0.8, 0.6, 0.0},
			},
			{
				Title:       "Introduction to Robotics",
				Code:        "RB101",
				Year:        1,
				Credits:     15,
				Program:     "Robotics",
				Description: "Fundamentals of robot kinematics and control.",
				Vector:      []float32{1.0, 0.0, 0.0},
			},
		}
		require.NoError(t, repo.ReplaceCatalog(context.Background(), records, "test-model"))
	}

	searcher, err := search.NewSearcher(repo, mock.NewMockProvider())
	require.NoError(t, err)
	t.Cleanup(searcher.Release)

	srv := New(Config{
		Addr:        ":0",
		ReadTimeout: time.Second,
	}, repo, searcher, nil)
	return srv, repo
}

func doRequest(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	recorder := httptest.NewRecorder()
	srv.Handler().ServeHTTP(recorder, req)
	return recorder
}

func TestHandleHealthz(t *testing.T) {
	t.Run("unseeded", func(t *testing.T) {
		srv, _ := newTestServer(t, false)
		recorder := doRequest(t, srv, "/healthz")
		require.Equal(t, http.StatusOK, recorder.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, false, body["seeded"])
	})

	t.Run("seeded", func(t *testing.T) {
		srv, _ := newTestServer(t, true)
		recorder := doRequest(t, srv, "/healthz")
		require.Equal(t, http.StatusOK, recorder.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, true, body["seeded"])
		assert.EqualValues(t, 2, body["courses"])
		assert.Equal(t, "test-model", body["model"])
	})
}

func TestHandleCourses(t *testing.T) {
	t.Run("ordered by year then title", func(t *testing.T) {
		srv, _ := newTestServer(t, true)
		recorder := doRequest(t, srv, "/courses")
		require.Equal(t, http.StatusOK, recorder.Code)

		var body coursesResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		require.Len(t, body.Courses, 2)
		assert.Equal(t, "Introduction to Robotics", body.Courses[0].Title)
		assert.Equal(t, "Advanced Robotics", body.Courses[1].Title)

		// Prerequisites serialize as a list even when absent
		assert.NotNil(t, body.Courses[0].Prerequisites)
	})

	t.Run("empty catalog", func(t *testing.T) {
		srv, _ := newTestServer(t, false)
		recorder := doRequest(t, srv, "/courses")
		require.Equal(t, http.StatusOK, recorder.Code)

		var body coursesResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Empty(t, body.Courses)
	})

	t.Run("trailing slash", func(t *testing.T) {
		srv, _ := newTestServer(t, true)
		recorder := doRequest(t, srv, "/courses/")
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestHandleSearch_Validation(t *testing.T) {
	srv, _ := newTestServer(t, true)

	t.Run("q too short", func(t *testing.T) {
		recorder := doRequest(t, srv, "/search?q=ab")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("q missing", func(t *testing.T) {
		recorder := doRequest(t, srv, "/search")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("k not an integer", func(t *testing.T) {
		recorder := doRequest(t, srv, "/search?q=robotics&k=abc")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("k out of range", func(t *testing.T) {
		recorder := doRequest(t, srv, "/search?q=robotics&k=0")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		recorder = doRequest(t, srv, "/search?q=robotics&k=51")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestHandleSearch(t *testing.T) {
	t.Run("returns ranked results", func(t *testing.T) {
		srv, _ := newTestServer(t, true)
		recorder := doRequest(t, srv, "/search?q=robot+kinematics&k=2")
		require.Equal(t, http.StatusOK, recorder.Code)

		var body searchResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "robot kinematics", body.Query)
		require.Len(t, body.ParsedCourses, 1)
		require.Len(t, body.Results, 1)
		assert.Len(t, body.Results[0].Matches, 2)
		assert.Equal(t, "Robotics Courses", body.GeneralTitle)
		assert.NotEmpty(t, body.MatchesFor)
		assert.NotEmpty(t, body.TopMatches)
		assert.Empty(t, body.Note)

		// Scores never increase down the list
		matches := body.Results[0].Matches
		for i := 1; i < len(matches); i++ {
			assert.LessOrEqual(t, matches[i].Similarity, matches[i-1].Similarity)
		}
	})

	t.Run("empty catalog carries a note", func(t *testing.T) {
		srv, _ := newTestServer(t, false)
		recorder := doRequest(t, srv, "/search?q=robot+kinematics")
		require.Equal(t, http.StatusOK, recorder.Code)

		var body searchResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Note)
		assert.Equal(t, "No matches found", body.TopMatches)
		require.Len(t, body.Results, 1)
		assert.Empty(t, body.Results[0].Matches)
	})

	t.Run("trailing slash", func(t *testing.T) {
		srv, _ := newTestServer(t, true)
		recorder := doRequest(t, srv, "/search/?q=robot+kinematics")
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
