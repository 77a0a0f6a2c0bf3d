// Package models defines the raw input contract and the normalized
// bundle data model shared by the parser and the API handlers.
package models

import "time"

// ModuleType is the closed set of categories a module or asset can carry.
// TypeFolder is reserved for internal hierarchy nodes and never appears on
// a normalized module.
type ModuleType string

const (
	TypeJS      ModuleType = "js"
	TypeCSS     ModuleType = "css"
	TypeImage   ModuleType = "image"
	TypeFont    ModuleType = "font"
	TypeJSON    ModuleType = "json"
	TypeWasm    ModuleType = "wasm"
	TypeHTML    ModuleType = "html"
	TypeMap     ModuleType = "map"
	TypeUnknown ModuleType = "unknown"
	TypeFolder  ModuleType = "folder"
)

// AllModuleTypes returns every type a normalized module can have, in a
// fixed order. Folder is excluded.
func AllModuleTypes() []ModuleType {
	return []ModuleType{
		TypeJS, TypeCSS, TypeImage, TypeFont, TypeJSON,
		TypeWasm, TypeHTML, TypeMap, TypeUnknown,
	}
}

// Size holds a raw byte count and its gzip counterpart. Gzip is an
// estimate whenever the source format did not supply one and is
// advisory-only.
type Size struct {
	Raw  int64 `json:"raw"`
	Gzip int64 `json:"gzip"`
}

// Module is a single compiled unit after normalization. Dependencies and
// Dependents are symmetric, self-reference-free id sets stored as sorted
// slices, so the whole structure stays acyclic and tree-serializable.
// Modules are read-only once normalization returns.
type Module struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Path         string     `json:"path"`
	Size         Size       `json:"size"`
	Type         ModuleType `json:"type"`
	Dependencies []string   `json:"dependencies"`
	Dependents   []string   `json:"dependents"`
}

// Asset is a physical build output file. It carries no dependency edges.
type Asset struct {
	Name   string     `json:"name"`
	Size   Size       `json:"size"`
	Type   ModuleType `json:"type"`
	Chunks []string   `json:"chunks"`
}

// Chunk is a named grouping of modules. Name is the first declared name,
// or the id when the chunk is unnamed. Modules keeps input order and only
// contains ids present in the module collection.
type Chunk struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Size    Size     `json:"size"`
	Modules []string `json:"modules"`
}

// BuildStats is the normalized root produced by one load. TotalSize is
// the sum over assets. Each load builds a fresh BuildStats; it is never
// patched in place.
type BuildStats struct {
	Timestamp   time.Time `json:"timestamp"`
	TotalSize   Size      `json:"totalSize"`
	TotalTime   int64     `json:"totalTime,omitempty"`
	Modules     []Module  `json:"modules"`
	Assets      []Asset   `json:"assets"`
	Chunks      []Chunk   `json:"chunks"`
	Entrypoints []string  `json:"entrypoints"`
}
