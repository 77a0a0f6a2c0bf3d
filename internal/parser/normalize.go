// Package parser turns raw bundler stats into the normalized bundle
// model, the drill-down hierarchy and the filtered views consumed by the
// visualization layer.
package parser

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/bundlescope/core/internal/models"
)

// moduleEntry is the mutable working form of a module during
// normalization. Adjacency lives in sets here and is flattened to sorted
// slices when the BuildStats is assembled.
type moduleEntry struct {
	module       models.Module
	dependencies map[string]struct{}
	dependents   map[string]struct{}
}

// Normalize converts raw bundler stats into a fresh BuildStats. Modules
// are processed in two passes: a creation pass that allocates every
// module and builds the id index, then a resolution pass that links
// reasons into symmetric dependency/dependent sets. Reasons referencing
// ids outside the module set belong to modules that were not loaded
// (externals) and are dropped silently. Individual records missing a
// required field are skipped with a warning; only a stats object with
// none of the three collections fails the load.
func Normalize(raw *models.RawStats) (*models.BuildStats, error) {
	if raw == nil || (raw.Modules == nil && raw.Assets == nil && raw.Chunks == nil) {
		return nil, fmt.Errorf("invalid stats format: %w", ErrInvalidFormat)
	}

	index := make(map[string]*moduleEntry, len(raw.Modules))
	order := make([]string, 0, len(raw.Modules))

	// Pass 1: create every module and index it by id, so reasons can
	// reference modules that appear later in the input.
	for i, rm := range raw.Modules {
		if rm.Name == "" || rm.Size == nil || *rm.Size < 0 {
			log.Warn().Int("index", i).Str("name", rm.Name).
				Msg("skipping malformed module entry")
			continue
		}

		id, ok := coerceID(rm.ID)
		if !ok {
			id = rm.Name
		}
		if _, exists := index[id]; exists {
			log.Warn().Str("id", id).Msg("skipping duplicate module id")
			continue
		}

		gzip := EstimateGzipSize(*rm.Size)
		if rm.GzipSize != nil && *rm.GzipSize >= 0 {
			gzip = *rm.GzipSize
		}

		index[id] = &moduleEntry{
			module: models.Module{
				ID:   id,
				Name: lastSegment(rm.Name),
				Path: rm.Name,
				Size: models.Size{Raw: *rm.Size, Gzip: gzip},
				Type: Classify(rm.Name),
			},
			dependencies: make(map[string]struct{}),
			dependents:   make(map[string]struct{}),
		}
		order = append(order, id)
	}

	// Pass 2: resolve reasons against the full index.
	for _, rm := range raw.Modules {
		srcID, ok := coerceID(rm.ID)
		if !ok {
			srcID = rm.Name
		}
		src, ok := index[srcID]
		if !ok {
			continue
		}

		for _, reason := range rm.Reasons {
			refID, ok := coerceID(reason.ModuleID)
			if !ok {
				refID = reason.ModuleName
			}
			ref, ok := index[refID]
			if !ok || refID == srcID {
				continue
			}
			src.dependencies[refID] = struct{}{}
			ref.dependents[srcID] = struct{}{}
		}
	}

	stats := &models.BuildStats{
		Timestamp:   time.Now().UTC(),
		TotalTime:   raw.Time,
		Modules:     make([]models.Module, 0, len(order)),
		Assets:      make([]models.Asset, 0, len(raw.Assets)),
		Chunks:      make([]models.Chunk, 0, len(raw.Chunks)),
		Entrypoints: []string{},
	}

	for _, id := range order {
		entry := index[id]
		entry.module.Dependencies = sortedIDs(entry.dependencies)
		entry.module.Dependents = sortedIDs(entry.dependents)
		stats.Modules = append(stats.Modules, entry.module)
	}

	for i, ra := range raw.Assets {
		if ra.Name == "" || ra.Size == nil || *ra.Size < 0 {
			log.Warn().Int("index", i).Str("name", ra.Name).
				Msg("skipping malformed asset entry")
			continue
		}

		gzip := EstimateGzipSize(*ra.Size)
		if ra.GzipSize != nil && *ra.GzipSize >= 0 {
			gzip = *ra.GzipSize
		}

		stats.Assets = append(stats.Assets, models.Asset{
			Name:   ra.Name,
			Size:   models.Size{Raw: *ra.Size, Gzip: gzip},
			Type:   Classify(ra.Name),
			Chunks: coerceIDs(ra.Chunks),
		})
		stats.TotalSize.Raw += *ra.Size
		stats.TotalSize.Gzip += gzip
	}

	for i, rc := range raw.Chunks {
		id, ok := coerceID(rc.ID)
		if !ok && len(rc.Names) > 0 {
			id = rc.Names[0]
			ok = true
		}
		if !ok || rc.Size == nil || *rc.Size < 0 {
			log.Warn().Int("index", i).Msg("skipping malformed chunk entry")
			continue
		}

		name := id
		if len(rc.Names) > 0 {
			name = rc.Names[0]
		}

		// Chunk-module references outside the module index are dropped.
		moduleIDs := make([]string, 0, len(rc.Modules))
		for _, ref := range rc.Modules {
			mid, ok := coerceID(ref)
			if !ok {
				continue
			}
			if _, exists := index[mid]; exists {
				moduleIDs = append(moduleIDs, mid)
			}
		}

		stats.Chunks = append(stats.Chunks, models.Chunk{
			ID:      id,
			Name:    name,
			Size:    models.Size{Raw: *rc.Size, Gzip: EstimateGzipSize(*rc.Size)},
			Modules: moduleIDs,
		})

		// Entrypoint heuristic: a named chunk contributes its first
		// resolvable module. Best effort, not a guarantee of true
		// entry-point identity.
		if len(rc.Names) > 0 && len(moduleIDs) > 0 {
			stats.Entrypoints = appendUnique(stats.Entrypoints, moduleIDs[0])
		}
	}

	return stats, nil
}

// coerceID turns a bundler id into its canonical string form. Bundlers
// emit strings or numbers; JSON numbers arrive as float64.
func coerceID(v any) (string, bool) {
	switch id := v.(type) {
	case nil:
		return "", false
	case string:
		return id, id != ""
	case float64:
		if id == math.Trunc(id) {
			return strconv.FormatInt(int64(id), 10), true
		}
		return strconv.FormatFloat(id, 'f', -1, 64), true
	case int:
		return strconv.Itoa(id), true
	default:
		return fmt.Sprintf("%v", id), true
	}
}

func coerceIDs(refs []any) []string {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		if id, ok := coerceID(ref); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func sortedIDs(set map[string]struct{}) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func lastSegment(p string) string {
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
