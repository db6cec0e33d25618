package gcp

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/dominikbraun/graph"
)

// ProjectNumberResolver maps a numeric project identifier to its project ID.
// Implementations return the raw number when resolution fails.
type ProjectNumberResolver interface {
	Resolve(ctx context.Context, projectNumber string) string
}

var numericProjectParentRe = regexp.MustCompile(`^projects/(\d+)$`)

// BuildTree links flat hierarchy nodes into a single rooted tree.
//
// Every input node ends up in the tree exactly once. Nodes whose parent is the
// scope itself, or absent from the search results, become direct scope
// children. A parent reference that would close a cycle is refused and the
// node is forced under the root instead, with a warning recorded; the guard is
// structural, so the returned tree is cycle-free regardless of input.
func BuildTree(ctx context.Context, nodes []*HierarchyNode, scope Scope, resolver ProjectNumberResolver) *Tree {
	index := make(map[string]*HierarchyNode, len(nodes))
	ordered := make([]*HierarchyNode, 0, len(nodes))
	for _, node := range nodes {
		if _, duplicate := index[node.ID]; duplicate {
			continue
		}
		index[node.ID] = node
		ordered = append(ordered, node)
	}

	root, found := index[scope.String()]
	if !found {
		root = &HierarchyNode{
			ID:          scope.String(),
			DisplayName: scope.String(),
			Kind:        scope.Kind(),
		}
	}

	t := &Tree{Root: root}

	g := graph.New(graph.StringHash, graph.Directed(), graph.PreventCycles())
	_ = g.AddVertex(root.ID)
	for _, node := range ordered {
		_ = g.AddVertex(node.ID)
	}

	for _, node := range ordered {
		if node.ID == root.ID {
			continue
		}

		parentID, direct := resolveParent(ctx, node, root.ID, index, resolver)

		if err := g.AddEdge(parentID, node.ID); err != nil {
			if !errors.Is(err, graph.ErrEdgeCreatesCycle) {
				continue
			}
			t.CycleWarnings = append(t.CycleWarnings,
				fmt.Sprintf("cycle detected: %s declares parent %s; attaching under %s", node.ID, node.ParentID, root.ID))
			_ = g.AddEdge(root.ID, node.ID)
			root.Children = append(root.Children, node)
			continue
		}

		if direct {
			root.Children = append(root.Children, node)
			t.DirectScopeChildren = append(t.DirectScopeChildren, node)
			continue
		}
		parent := index[parentID]
		parent.Children = append(parent.Children, node)
	}

	sortChildren(root)
	sortNodes(t.DirectScopeChildren)
	return t
}

// resolveParent decides where a node attaches. The second return value is
// true when the node is a direct scope child: its declared parent is the
// scope root or lies outside the search-result index.
func resolveParent(ctx context.Context, node *HierarchyNode, rootID string, index map[string]*HierarchyNode, resolver ProjectNumberResolver) (string, bool) {
	parentID := node.ParentID
	if parentID == "" || parentID == node.ID {
		return rootID, true
	}

	if _, known := index[parentID]; !known && parentID != rootID {
		// A project's parent may be declared by project number while
		// the index keys projects by project ID.
		if m := numericProjectParentRe.FindStringSubmatch(parentID); m != nil && resolver != nil {
			if resolved := resolver.Resolve(ctx, m[1]); resolved != m[1] {
				if _, known := index["projects/"+resolved]; known {
					return "projects/" + resolved, false
				}
			}
		}
	}

	if parentID == rootID {
		return rootID, true
	}
	if _, known := index[parentID]; !known {
		return rootID, true
	}
	return parentID, false
}

// sortChildren orders every child list: projects first, then folders, then
// organizations, each group by case-insensitive display name with ties broken
// by id.
func sortChildren(node *HierarchyNode) {
	sortNodes(node.Children)
	for _, child := range node.Children {
		sortChildren(child)
	}
}

func sortNodes(nodes []*HierarchyNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		if a, b := kindRank(nodes[i].Kind), kindRank(nodes[j].Kind); a != b {
			return a < b
		}
		a, b := strings.ToLower(nodes[i].DisplayName), strings.ToLower(nodes[j].DisplayName)
		if a != b {
			return a < b
		}
		return nodes[i].ID < nodes[j].ID
	})
}

func kindRank(kind NodeKind) int {
	switch kind {
	case KindProject:
		return 0
	case KindFolder:
		return 1
	default:
		return 2
	}
}
