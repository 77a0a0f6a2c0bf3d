// Package models defines the raw input contract and the normalized
// bundle data model shared by the parser and the API handlers.
package models

// HierarchyNode is one node of the drill-down tree. Leaves carry a
// module's type, size and origin; internal nodes are folders whose Value
// is the sum of all descendant leaf values. Path is the full segment path
// from the root, joined with "/". Children are sorted by descending Value,
// ties broken by Name. The tree is rebuilt wholesale on every load or
// filter change and never mutated afterwards.
type HierarchyNode struct {
	Name         string           `json:"name"`
	Path         string           `json:"path"`
	Type         ModuleType       `json:"type"`
	Value        int64            `json:"value"`
	Children     []*HierarchyNode `json:"children,omitempty"`
	OriginModule *Module          `json:"originModule,omitempty"`
}
