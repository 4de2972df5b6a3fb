package web

import (
	"net/http"

	"github.com/JonMunkholm/aptadb/internal/core"
	"github.com/JonMunkholm/aptadb/internal/logging"
	"github.com/JonMunkholm/aptadb/internal/web/templates"
	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
)

// handleHome renders the landing page with dataset statistics.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	records, err := s.service.Records(r.Context())
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	info, _ := s.service.Store().Info()

	render(w, r, templates.Home(templates.HomeParams{
		Stats:    core.Summarize(records),
		Info:     info,
		Examples: core.TopTargets(records, homeExampleCount),
	}))
}

// handleSearchPage renders grouped search results.
func (s *Server) handleSearchPage(w http.ResponseWriter, r *http.Request) {
	resp, err := s.search(r)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	logging.WithFields(r.Context(), "query", resp.Query).Debug("search",
		"groups", len(resp.Groups),
		"suggestions", len(resp.Suggestions),
	)

	render(w, r, templates.SearchResults(templates.SearchParams{
		Query:       resp.Query,
		Groups:      resp.Groups,
		Suggestions: resp.Suggestions,
	}))
}

// handleTargetPage renders all aptamers of one target.
func (s *Server) handleTargetPage(w http.ResponseWriter, r *http.Request) {
	view, status, err := s.targetView(r)
	if err != nil {
		s.respondError(w, r, err, status)
		return
	}

	render(w, r, templates.TargetDetail(templates.TargetParams{
		Group:   view.TargetGroup,
		Tab:     view.Tab,
		Tabs:    view.Tabs,
		Records: view.TabRecords,
	}))
}

// handleRecordPage renders one aptamer record.
func (s *Server) handleRecordPage(w http.ResponseWriter, r *http.Request) {
	rec, err := s.service.RecordByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	render(w, r, templates.AptamerDetail(rec))
}

// handleNotFound answers unknown paths in the client's format.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.respondError(w, r, errPageMissing, http.StatusNotFound)
}

// render writes a page component as text/html.
func render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	templ.Handler(c).ServeHTTP(w, r)
}
