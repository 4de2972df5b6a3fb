package web

// handlers_common.go holds request parsing helpers and response types shared
// by the page and API handlers.

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/JonMunkholm/aptadb/internal/core"
)

// maxSuggestLimit caps the limit parameter of the suggest endpoint.
const maxSuggestLimit = 20

// homeExampleCount is how many example targets the landing page offers.
const homeExampleCount = 3

// SearchResponse is the API shape of a search.
type SearchResponse struct {
	Query       string             `json:"query"`
	Groups      []core.TargetGroup `json:"groups"`
	Suggestions []string           `json:"suggestions,omitempty"`
}

// TargetResponse is a target group plus the records of one tab.
type TargetResponse struct {
	core.TargetGroup
	Tab        core.Tab      `json:"tab"`
	Tabs       []core.Tab    `json:"tabs"`
	TabRecords []core.Record `json:"tab_records"`
}

// StatsResponse is the dataset summary plus where the data came from.
type StatsResponse struct {
	core.DatasetStats
	Source core.LoadInfo `json:"source"`
}

// SuggestResponse lists target names close to a query.
type SuggestResponse struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
}

// HealthResponse reports liveness and load state without triggering a load.
type HealthResponse struct {
	Status   string `json:"status"`
	Loaded   bool   `json:"loaded"`
	Records  int    `json:"records"`
	Fallback bool   `json:"fallback"`
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil || i < 1 {
		return defaultVal
	}
	return i
}

// requiredParam returns a trimmed query parameter or a missing-parameter error.
func requiredParam(r *http.Request, name string) (string, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return "", missingParam(name)
	}
	return v, nil
}

// tabParam resolves the tab query parameter, defaulting by the group's levels.
func tabParam(r *http.Request, g core.TargetGroup) (core.Tab, error) {
	raw := r.URL.Query().Get("tab")
	if strings.TrimSpace(raw) == "" {
		return core.DefaultTab(g), nil
	}
	tab, ok := core.ParseTab(raw)
	if !ok {
		return "", errInvalidTab
	}
	return tab, nil
}

// targetView loads a target group and the records of the requested tab.
func (s *Server) targetView(r *http.Request) (TargetResponse, int, error) {
	name, err := requiredParam(r, "name")
	if err != nil {
		return TargetResponse{}, http.StatusBadRequest, err
	}

	g, err := s.service.TargetGroup(r.Context(), name)
	if err != nil {
		return TargetResponse{}, statusFor(err), err
	}

	tab, err := tabParam(r, g)
	if err != nil {
		return TargetResponse{}, http.StatusBadRequest, err
	}

	return TargetResponse{
		TargetGroup: g,
		Tab:         tab,
		Tabs:        core.VisibleTabs(g),
		TabRecords:  core.TabRecords(g, tab),
	}, http.StatusOK, nil
}

// search runs a query and, when nothing matches, looks up suggestions.
func (s *Server) search(r *http.Request) (SearchResponse, error) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	resp := SearchResponse{Query: q}

	groups, err := s.service.Search(r.Context(), q)
	if err != nil {
		return resp, err
	}
	resp.Groups = groups

	if q != "" && len(groups) == 0 {
		resp.Suggestions, err = s.service.Suggest(r.Context(), q, core.DefaultSuggestLimit)
		if err != nil {
			return resp, err
		}
	}
	return resp, nil
}
