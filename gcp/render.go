package gcp

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/kyokomi/emoji"
)

// HierarchyFormat is the closed set of hierarchy output formats.
type HierarchyFormat string

const (
	FormatTree    HierarchyFormat = "tree"
	FormatPretty  HierarchyFormat = "pretty"
	FormatJSON    HierarchyFormat = "json"
	FormatTabular HierarchyFormat = "tabular"
)

// ParseHierarchyFormat validates a --format flag value.
func ParseHierarchyFormat(value string) (HierarchyFormat, error) {
	switch HierarchyFormat(value) {
	case FormatTree, FormatPretty, FormatJSON, FormatTabular:
		return HierarchyFormat(value), nil
	default:
		return "", fmt.Errorf("unknown hierarchy format %q (expected tree, pretty, json or tabular)", value)
	}
}

// Render produces one textual representation of the tree. All renderers are
// pure: the same tree renders to byte-identical output every time, and the
// tree is never mutated.
func (t *Tree) Render(format HierarchyFormat) (string, error) {
	switch format {
	case FormatTree:
		return t.renderTree(), nil
	case FormatPretty:
		return t.renderPretty(), nil
	case FormatJSON:
		return t.renderJSON()
	case FormatTabular:
		return t.renderTabular(), nil
	default:
		return "", fmt.Errorf("unknown hierarchy format %q", format)
	}
}

func (t *Tree) renderTree() string {
	var lines []string
	walkConnectors(t.Root, "", func(n *HierarchyNode) string {
		return fmt.Sprintf("%s (%s)", n.DisplayName, n.ID)
	}, &lines)
	return strings.Join(lines, "\n")
}

func (t *Tree) renderPretty() string {
	lines := []string{fmt.Sprintf("Scope: %s", t.Root.ID)}
	walkConnectors(t.Root, "", func(n *HierarchyNode) string {
		if n.Kind == KindProject {
			return emoji.Sprintf(":page_facing_up:%s", n.DisplayName)
		}
		return emoji.Sprintf(":file_folder:%s", n.DisplayName)
	}, &lines)
	return strings.Join(lines, "\n")
}

// walkConnectors emits one line per node below n, using box-drawing
// connectors: last sibling at any level gets a corner, the rest get tees, and
// non-last ancestors contribute a continuation bar to the prefix.
func walkConnectors(n *HierarchyNode, prefix string, label func(*HierarchyNode) string, lines *[]string) {
	for i, child := range n.Children {
		last := i == len(n.Children)-1
		connector := "├── "
		childPrefix := prefix + "│   "
		if last {
			connector = "└── "
			childPrefix = prefix + "    "
		}
		*lines = append(*lines, prefix+connector+label(child))
		walkConnectors(child, childPrefix, label, lines)
	}
}

type jsonNode struct {
	ID          string     `json:"id"`
	DisplayName string     `json:"display_name"`
	Type        NodeKind   `json:"type"`
	Children    []jsonNode `json:"children"`
}

type jsonProjectRef struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type jsonHierarchy struct {
	Root                 jsonNode         `json:"root"`
	OrganizationProjects []jsonProjectRef `json:"organization_projects"`
}

func (t *Tree) renderJSON() (string, error) {
	doc := jsonHierarchy{
		Root:                 toJSONNode(t.Root),
		OrganizationProjects: make([]jsonProjectRef, 0, len(t.DirectScopeChildren)),
	}
	for _, n := range t.DirectScopeChildren {
		doc.OrganizationProjects = append(doc.OrganizationProjects, jsonProjectRef{ID: n.ID, DisplayName: n.DisplayName})
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshalling hierarchy: %w", err)
	}
	return string(out), nil
}

func toJSONNode(n *HierarchyNode) jsonNode {
	node := jsonNode{
		ID:          n.ID,
		DisplayName: n.DisplayName,
		Type:        n.Kind,
		Children:    make([]jsonNode, 0, len(n.Children)),
	}
	for _, child := range n.Children {
		node.Children = append(node.Children, toJSONNode(child))
	}
	return node
}

// renderTabular lists every node below the root in depth-first order, one row
// per node, with column widths computed from the widest value per column. The
// root itself is excluded: the scope is already part of the command banner.
func (t *Tree) renderTabular() string {
	headers := []string{"ID", "Display Name", "Type", "Parent ID"}

	var rows [][]string
	var walk func(n *HierarchyNode, parentID string)
	walk = func(n *HierarchyNode, parentID string) {
		rows = append(rows, []string{n.ID, n.DisplayName, string(n.Kind), parentID})
		for _, child := range n.Children {
			walk(child, n.ID)
		}
	}
	for _, child := range t.Root.Children {
		walk(child, t.Root.ID)
	}

	return renderFixedWidth(headers, rows)
}

// renderFixedWidth lays out rows in left-justified columns separated by two
// spaces, with a dashed rule under the header.
func renderFixedWidth(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	formatRow := func(row []string) string {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		return strings.Join(cells, "  ")
	}

	headerLine := formatRow(headers)
	lines := []string{headerLine, strings.Repeat("-", len(headerLine))}
	for _, row := range rows {
		lines = append(lines, formatRow(row))
	}
	return strings.Join(lines, "\n")
}
