// Package models defines the raw input contract and the normalized
// bundle data model shared by the parser and the API handlers.
package models

// RawStats is the loosely-typed stats object emitted by a bundler and
// already parsed from JSON. Every field is optional: a missing collection
// is nil, a present-but-empty one is an empty slice. The distinction
// matters for format validation.
type RawStats struct {
	Time    int64       `json:"time,omitempty"`
	Modules []RawModule `json:"modules"`
	Assets  []RawAsset  `json:"assets"`
	Chunks  []RawChunk  `json:"chunks"`
}

// RawModule is one compiled unit as the bundler reports it. IDs may be
// strings or numbers depending on the bundler, so they stay untyped until
// normalization coerces them. Size is a pointer so that a record missing
// its size can be told apart from a zero-byte module.
type RawModule struct {
	ID       any         `json:"id"`
	Name     string      `json:"name"`
	Size     *int64      `json:"size"`
	GzipSize *int64      `json:"gzipSize,omitempty"`
	Reasons  []RawReason `json:"reasons,omitempty"`
	Chunks   []any       `json:"chunks,omitempty"`
}

// RawReason records why a module was included in the build. ModuleID is
// the bundler's id of the referenced module; ModuleName is a fallback used
// by bundlers that null out ids for entry modules.
type RawReason struct {
	ModuleID   any    `json:"moduleId"`
	ModuleName string `json:"moduleName,omitempty"`
}

// RawAsset is a physical output file as the bundler reports it.
type RawAsset struct {
	Name     string `json:"name"`
	Size     *int64 `json:"size"`
	GzipSize *int64 `json:"gzipSize,omitempty"`
	Chunks   []any  `json:"chunks,omitempty"`
}

// RawChunk is a named grouping of modules as the bundler reports it.
type RawChunk struct {
	ID      any      `json:"id"`
	Names   []string `json:"names,omitempty"`
	Size    *int64   `json:"size"`
	Modules []any    `json:"modules,omitempty"`
}
