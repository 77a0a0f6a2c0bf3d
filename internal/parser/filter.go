// Package parser turns raw bundler stats into the normalized bundle
// model, the drill-down hierarchy and the filtered views consumed by the
// visualization layer.
package parser

import (
	"strings"

	"github.com/bundlescope/core/internal/models"
)

// Filter returns the modules whose type is active and whose name or path
// contains query as a case-insensitive substring. An empty query matches
// everything. Input order is preserved and nothing is mutated; the result
// feeds both the graph view (edge visibility) and the hierarchy builder.
func Filter(modules []models.Module, activeTypes map[models.ModuleType]bool, query string) []models.Module {
	q := strings.ToLower(strings.TrimSpace(query))
	visible := make([]models.Module, 0, len(modules))

	for _, m := range modules {
		if !activeTypes[m.Type] {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(m.Name), q) &&
			!strings.Contains(strings.ToLower(m.Path), q) {
			continue
		}
		visible = append(visible, m)
	}

	return visible
}

// FilterIDs returns the ids of the modules passing the filter, in input
// order.
func FilterIDs(modules []models.Module, activeTypes map[models.ModuleType]bool, query string) []string {
	visible := Filter(modules, activeTypes, query)
	ids := make([]string, 0, len(visible))
	for _, m := range visible {
		ids = append(ids, m.ID)
	}
	return ids
}

// VisibleSet indexes a filtered module slice by id for edge checks.
func VisibleSet(modules []models.Module) map[string]bool {
	set := make(map[string]bool, len(modules))
	for _, m := range modules {
		set[m.ID] = true
	}
	return set
}

// PruneEdges returns copies of the given modules with dependency and
// dependent sets restricted to the visible id set, so an edge survives
// only when both endpoints passed the filter. The inputs are left
// untouched.
func PruneEdges(modules []models.Module, visible map[string]bool) []models.Module {
	pruned := make([]models.Module, 0, len(modules))
	for _, m := range modules {
		m.Dependencies = keepVisible(m.Dependencies, visible)
		m.Dependents = keepVisible(m.Dependents, visible)
		pruned = append(pruned, m)
	}
	return pruned
}

// TypeSet builds an active-type set from a list of types.
func TypeSet(types ...models.ModuleType) map[models.ModuleType]bool {
	set := make(map[models.ModuleType]bool, len(types))
	for _, t := range types {
		set[t] = true
	}
	return set
}

func keepVisible(ids []string, visible map[string]bool) []string {
	kept := make([]string, 0, len(ids))
	for _, id := range ids {
		if visible[id] {
			kept = append(kept, id)
		}
	}
	return kept
}
