// Package parser turns raw bundler stats into the normalized bundle
// model, the drill-down hierarchy and the filtered views consumed by the
// visualization layer.
package parser

import (
	"sort"
	"strings"

	"github.com/bundlescope/core/internal/models"
)

// BuildHierarchy builds the drill-down tree from a module collection.
// Each module path is walked segment by segment through a trie with
// map-based child lookup, creating folder nodes for intermediate segments
// and a leaf carrying the module at the last one. After construction,
// folder values are recomputed bottom-up so every internal node's value
// is exactly the sum of its descendant leaves, and children are sorted by
// descending value with name as tiebreak. The tree is rebuilt in full for
// every module set; there is no incremental update.
func BuildHierarchy(modules []models.Module) *models.HierarchyNode {
	root := &models.HierarchyNode{Name: "root", Type: models.TypeFolder}
	index := map[string]*models.HierarchyNode{"": root}

	for _, m := range modules {
		segments := splitPath(m.Path)
		if len(segments) == 0 {
			continue
		}

		parent := root
		nodePath := ""
		for i, segment := range segments {
			if nodePath == "" {
				nodePath = segment
			} else {
				nodePath = nodePath + "/" + segment
			}

			node, ok := index[nodePath]
			if !ok {
				node = &models.HierarchyNode{
					Name: segment,
					Path: nodePath,
					Type: models.TypeFolder,
				}
				index[nodePath] = node
				parent.Children = append(parent.Children, node)
			}

			if i == len(segments)-1 {
				origin := m
				node.Type = m.Type
				node.Value += m.Size.Raw
				node.OriginModule = &origin
			}
			parent = node
		}
	}

	aggregateValues(root)
	sortChildren(root)
	return root
}

// DrillDown returns the subtree rooted at path, or the whole tree when
// the path does not resolve to a node.
func DrillDown(root *models.HierarchyNode, path string) *models.HierarchyNode {
	if root == nil || path == "" {
		return root
	}
	if node := findNode(root, path); node != nil {
		return node
	}
	return root
}

// splitPath cuts a module path into hierarchy segments. A leading "./" is
// folded into the first segment so relative prefixes stay visible as
// top-level folders and node paths align with module-path prefixes.
func splitPath(p string) []string {
	prefix := ""
	if strings.HasPrefix(p, "./") {
		prefix = "./"
		p = p[2:]
	}

	parts := strings.Split(p, "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	if prefix != "" && len(segments) > 0 {
		segments[0] = prefix + segments[0]
	}
	return segments
}

func aggregateValues(node *models.HierarchyNode) int64 {
	if len(node.Children) == 0 {
		return node.Value
	}

	var total int64
	for _, child := range node.Children {
		total += aggregateValues(child)
	}
	node.Value = total
	return total
}

func sortChildren(node *models.HierarchyNode) {
	sort.SliceStable(node.Children, func(i, j int) bool {
		if node.Children[i].Value != node.Children[j].Value {
			return node.Children[i].Value > node.Children[j].Value
		}
		return node.Children[i].Name < node.Children[j].Name
	})
	for _, child := range node.Children {
		sortChildren(child)
	}
}

func findNode(node *models.HierarchyNode, path string) *models.HierarchyNode {
	if node.Path == path {
		return node
	}
	for _, child := range node.Children {
		if path == child.Path || strings.HasPrefix(path, child.Path+"/") {
			if found := findNode(child, path); found != nil {
				return found
			}
		}
	}
	return nil
}
