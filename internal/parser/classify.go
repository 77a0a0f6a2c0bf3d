// Package parser turns raw bundler stats into the normalized bundle
// model, the drill-down hierarchy and the filtered views consumed by the
// visualization layer.
package parser

import (
	"path"
	"strings"

	"github.com/bundlescope/core/internal/models"
)

var extensionTypes = map[string]models.ModuleType{
	".js":    models.TypeJS,
	".jsx":   models.TypeJS,
	".ts":    models.TypeJS,
	".tsx":   models.TypeJS,
	".mjs":   models.TypeJS,
	".cjs":   models.TypeJS,
	".css":   models.TypeCSS,
	".scss":  models.TypeCSS,
	".sass":  models.TypeCSS,
	".less":  models.TypeCSS,
	".png":   models.TypeImage,
	".jpg":   models.TypeImage,
	".jpeg":  models.TypeImage,
	".gif":   models.TypeImage,
	".svg":   models.TypeImage,
	".webp":  models.TypeImage,
	".ico":   models.TypeImage,
	".woff":  models.TypeFont,
	".woff2": models.TypeFont,
	".ttf":   models.TypeFont,
	".otf":   models.TypeFont,
	".eot":   models.TypeFont,
	".json":  models.TypeJSON,
	".wasm":  models.TypeWasm,
	".html":  models.TypeHTML,
	".htm":   models.TypeHTML,
	".map":   models.TypeMap,
}

// Classify maps a file name to its type by case-insensitive extension
// match. It is total: unrecognized or missing extensions classify as
// unknown. Query and fragment suffixes on emitted asset names are ignored.
func Classify(name string) models.ModuleType {
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}

	ext := strings.ToLower(path.Ext(name))
	if t, ok := extensionTypes[ext]; ok {
		return t
	}

	return models.TypeUnknown
}
