// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/bundlescope/core/internal/models"
	"github.com/bundlescope/core/internal/parser"
)

// AnalyzeResponse is the payload returned for one load: the full
// normalized stats, the hierarchy built from the currently visible
// modules, and the visible module ids for the graph view.
type AnalyzeResponse struct {
	Stats          *models.BuildStats    `json:"stats"`
	Hierarchy      *models.HierarchyNode `json:"hierarchy"`
	VisibleModules []string              `json:"visibleModules"`
}

// AnalyzeHandler accepts raw bundler stats JSON and responds with the
// normalized model. Query parameters: types (comma-separated type filter,
// default all), q (search substring), path (hierarchy drill-down target),
// pretty (indented output).
func AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read body", http.StatusBadRequest)
		return
	}

	defer r.Body.Close()

	raw, err := parser.ParseStats(body)
	if err != nil {
		http.Error(w, "Invalid stats: "+err.Error(), http.StatusBadRequest)
		return
	}

	stats, err := parser.Normalize(raw)
	if err != nil {
		http.Error(w, "Invalid stats: "+err.Error(), http.StatusBadRequest)
		return
	}

	activeTypes := parseTypes(r.URL.Query().Get("types"))
	visible := parser.Filter(stats.Modules, activeTypes, r.URL.Query().Get("q"))
	visible = parser.PruneEdges(visible, parser.VisibleSet(visible))

	hierarchy := parser.BuildHierarchy(visible)
	if path := r.URL.Query().Get("path"); path != "" {
		hierarchy = parser.DrillDown(hierarchy, path)
	}

	response := AnalyzeResponse{
		Stats:          stats,
		Hierarchy:      hierarchy,
		VisibleModules: moduleIDs(visible),
	}

	w.Header().Set("Content-Type", "application/json")

	encoder := json.NewEncoder(w)
	if r.URL.Query().Get("pretty") == "true" {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(response); err != nil {
		log.Error().Err(err).Msg("failed to encode analyze response")
	}
}

// parseTypes turns a comma-separated types parameter into an active-type
// set. An empty parameter activates every type; unknown tokens are
// ignored.
func parseTypes(param string) map[models.ModuleType]bool {
	if strings.TrimSpace(param) == "" {
		return parser.TypeSet(models.AllModuleTypes()...)
	}

	known := parser.TypeSet(models.AllModuleTypes()...)
	active := make(map[models.ModuleType]bool)
	for _, token := range strings.Split(param, ",") {
		t := models.ModuleType(strings.ToLower(strings.TrimSpace(token)))
		if known[t] {
			active[t] = true
		}
	}
	return active
}

func moduleIDs(modules []models.Module) []string {
	ids := make([]string, 0, len(modules))
	for _, m := range modules {
		ids = append(ids, m.ID)
	}
	return ids
}
