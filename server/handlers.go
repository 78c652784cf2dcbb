package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/studyport/coursematcher/search"
	"github.com/studyport/coursematcher/storage"
)

const (
	minQueryLength = 3
	minMaxHits     = 1
	maxMaxHits     = 50
	defaultMaxHits = 5
)

// Handlers holds the HTTP handlers for the search API.
type Handlers struct {
	courseRepository storage.CourseRepository
	searcher         *search.Searcher
	logger           *slog.Logger
}

// NewHandlers creates the API handler set.
func NewHandlers(courseRepository storage.CourseRepository, searcher *search.Searcher, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		courseRepository: courseRepository,
		searcher:         searcher,
		logger:           logger.With("component", "http"),
	}
}

// HandleCourses serves GET /courses: the full catalog ordered by year, then title.
func (h *Handlers) HandleCourses(w http.ResponseWriter, r *http.Request) {
	records, err := h.courseRepository.ListCourses(r.Context())
	if err != nil {
		h.logger.Error("error listing courses", "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to list courses"})
		return
	}

	courses := make([]courseDTO, 0, len(records))
	for _, record := range records {
		courses = append(courses, toCourseDTO(record))
	}
	writeJSON(w, http.StatusOK, coursesResponse{Courses: courses})
}

// HandleSearch serves GET /search?q=...&k=...
// q must be at least 3 characters; k is bounded to [1, 50] and defaults to 5.
func (h *Handlers) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if len(query) < minQueryLength {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "query parameter 'q' must be at least 3 characters",
		})
		return
	}

	maxHits := defaultMaxHits
	if kParam := r.URL.Query().Get("k"); kParam != "" {
		k, err := strconv.Atoi(kParam)
		if err != nil || k < minMaxHits || k > maxMaxHits {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error: "query parameter 'k' must be an integer between 1 and 50",
			})
			return
		}
		maxHits = k
	}

	result, err := h.searcher.Search(r.Context(), query, maxHits)
	if err != nil {
		var decodeErr *storage.DecodeError
		switch {
		case errors.Is(err, search.ErrEmptyQuery):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "query text is blank"})
		case errors.As(err, &decodeErr):
			h.logger.Error("stored embedding is corrupt", "course", decodeErr.Course, "err", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		default:
			h.logger.Error("search failed", "query", query, "err", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "search failed"})
		}
		return
	}

	writeJSON(w, http.StatusOK, toSearchResponse(result))
}

// HandleHealthz serves GET /healthz with catalog status.
func (h *Handlers) HandleHealthz(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{"status": "ok", "seeded": false}

	info, err := h.courseRepository.Info(r.Context())
	switch {
	case err == nil:
		status["seeded"] = true
		status["courses"] = info.Courses
		status["model"] = info.Model
	case errors.Is(err, storage.ErrNotSeeded):
		// Fine, serving with an empty catalog
	default:
		h.logger.Error("error reading catalog info", "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "storage unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, status)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
