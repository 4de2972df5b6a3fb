package web

import (
	"net/http"
	"strings"

	"github.com/JonMunkholm/aptadb/internal/core"
	"github.com/go-chi/chi/v5"
)

// handleSearchAPI returns the target groups matching q.
// A blank query yields an empty list, not an error.
func (s *Server) handleSearchAPI(w http.ResponseWriter, r *http.Request) {
	resp, err := s.search(r)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	writeJSON(w, resp)
}

// handleTargetAPI returns one target group and the records of a tab.
func (s *Server) handleTargetAPI(w http.ResponseWriter, r *http.Request) {
	view, status, err := s.targetView(r)
	if err != nil {
		s.respondError(w, r, err, status)
		return
	}
	writeJSON(w, view)
}

// handleRecordAPI returns one record by its load-time ID.
func (s *Server) handleRecordAPI(w http.ResponseWriter, r *http.Request) {
	rec, err := s.service.RecordByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	writeJSON(w, rec)
}

// handleStatsAPI returns the dataset summary.
func (s *Server) handleStatsAPI(w http.ResponseWriter, r *http.Request) {
	stats, err := s.service.Stats(r.Context())
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	info, _ := s.service.Store().Info()
	writeJSON(w, StatsResponse{DatasetStats: stats, Source: info})
}

// handleSuggestAPI returns target names that fuzzily match q.
func (s *Server) handleSuggestAPI(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	limit := min(parseIntParam(r, "limit", core.DefaultSuggestLimit), maxSuggestLimit)

	names, err := s.service.Suggest(r.Context(), q, limit)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, SuggestResponse{Query: q, Suggestions: names})
}

// handleHealth reports liveness. It never waits for the records to load.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	info, loaded := s.service.Store().Info()
	writeJSON(w, HealthResponse{
		Status:   "ok",
		Loaded:   loaded,
		Records:  info.Records,
		Fallback: info.Fallback,
	})
}
