// Package parser turns raw bundler stats into the normalized bundle
// model, the drill-down hierarchy and the filtered views consumed by the
// visualization layer.
package parser

import (
	"testing"

	"github.com/bundlescope/core/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected models.ModuleType
	}{
		{"javascript", "./src/index.js", models.TypeJS},
		{"typescript", "./src/app.ts", models.TypeJS},
		{"jsx component", "./src/App.jsx", models.TypeJS},
		{"es module", "runtime.mjs", models.TypeJS},
		{"stylesheet", "./src/styles/main.css", models.TypeCSS},
		{"sass stylesheet", "theme.scss", models.TypeCSS},
		{"png image", "assets/logo.png", models.TypeImage},
		{"svg image", "icon.svg", models.TypeImage},
		{"web font", "fonts/roboto.woff2", models.TypeFont},
		{"truetype font", "fonts/arial.ttf", models.TypeFont},
		{"json data", "manifest.json", models.TypeJSON},
		{"wasm binary", "lib/engine.wasm", models.TypeWasm},
		{"html page", "index.html", models.TypeHTML},
		{"source map", "main.js.map", models.TypeMap},
		{"uppercase extension", "PHOTO.PNG", models.TypeImage},
		{"mixed case extension", "./src/Widget.Js", models.TypeJS},
		{"hashed asset name", "main.js?v=abc123", models.TypeJS},
		{"fragment suffix", "sprite.svg#icon", models.TypeImage},
		{"unknown extension", "LICENSE.txt", models.TypeUnknown},
		{"no extension", "Makefile", models.TypeUnknown},
		{"empty name", "", models.TypeUnknown},
		{"dot file", ".gitignore", models.TypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.input))
		})
	}
}
