package gcp

import (
	"context"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/kyokomi/emoji"
)

func scenarioTree(t *testing.T) *Tree {
	t.Helper()
	nodes := []*HierarchyNode{
		{ID: "folders/1", DisplayName: "Team Folder", Kind: KindFolder, ParentID: "organizations/9"},
		{ID: "projects/A", DisplayName: "app-a", Kind: KindProject, ParentID: "folders/1"},
		{ID: "projects/B", DisplayName: "app-b", Kind: KindProject, ParentID: "organizations/9"},
	}
	return BuildTree(context.Background(), nodes, orgScope(t), nil)
}

func TestRenderTree(t *testing.T) {
	out, err := scenarioTree(t).Render(FormatTree)
	if err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"├── app-b (projects/B)",
		"└── Team Folder (folders/1)",
		"    └── app-a (projects/A)",
	}, "\n")
	if out != want {
		t.Errorf("tree output:\n%s\nwant:\n%s", out, want)
	}
}

func TestRenderTreeContinuationBars(t *testing.T) {
	nodes := []*HierarchyNode{
		{ID: "folders/1", DisplayName: "alpha", Kind: KindFolder, ParentID: "organizations/9"},
		{ID: "folders/2", DisplayName: "beta", Kind: KindFolder, ParentID: "organizations/9"},
		{ID: "projects/a1", DisplayName: "a1", Kind: KindProject, ParentID: "folders/1"},
	}
	tree := BuildTree(context.Background(), nodes, orgScope(t), nil)

	out, err := tree.Render(FormatTree)
	if err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"├── alpha (folders/1)",
		"│   └── a1 (projects/a1)",
		"└── beta (folders/2)",
	}, "\n")
	if out != want {
		t.Errorf("tree output:\n%s\nwant:\n%s", out, want)
	}
}

func TestRenderPretty(t *testing.T) {
	out, err := scenarioTree(t).Render(FormatPretty)
	if err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"Scope: organizations/9",
		"├── " + emoji.Sprintf(":page_facing_up:app-b"),
		"└── " + emoji.Sprintf(":file_folder:Team Folder"),
		"    └── " + emoji.Sprintf(":page_facing_up:app-a"),
	}, "\n")
	if out != want {
		t.Errorf("pretty output:\n%s\nwant:\n%s", out, want)
	}
}

func TestRenderJSON(t *testing.T) {
	out, err := scenarioTree(t).Render(FormatJSON)
	if err != nil {
		t.Fatal(err)
	}

	var doc struct {
		Root struct {
			ID       string `json:"id"`
			Type     string `json:"type"`
			Children []struct {
				ID       string `json:"id"`
				Children []struct {
					ID string `json:"id"`
				} `json:"children"`
			} `json:"children"`
		} `json:"root"`
		OrganizationProjects []struct {
			ID          string `json:"id"`
			DisplayName string `json:"display_name"`
		} `json:"organization_projects"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not valid json: %v\n%s", err, out)
	}

	if doc.Root.ID != "organizations/9" || doc.Root.Type != "ORGANIZATION" {
		t.Errorf("root = %+v", doc.Root)
	}
	if len(doc.Root.Children) != 2 {
		t.Fatalf("root children = %d, want 2", len(doc.Root.Children))
	}
	if doc.Root.Children[0].ID != "projects/B" {
		t.Errorf("first child = %s, want projects/B", doc.Root.Children[0].ID)
	}
	if got := doc.Root.Children[1].Children; len(got) != 1 || got[0].ID != "projects/A" {
		t.Errorf("folder children = %v, want [projects/A]", got)
	}

	ids := make(map[string]bool)
	for _, p := range doc.OrganizationProjects {
		ids[p.ID] = true
	}
	if !ids["projects/B"] || !ids["folders/1"] {
		t.Errorf("organization_projects = %v, want direct scope children projects/B and folders/1", ids)
	}
	if ids["projects/A"] {
		t.Error("organization_projects must not contain nested projects/A")
	}
}

func TestRenderJSONEmptyChildrenIsArray(t *testing.T) {
	tree := BuildTree(context.Background(), nil, orgScope(t), nil)
	out, err := tree.Render(FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"children": []`) {
		t.Errorf("empty children must render as [], got:\n%s", out)
	}
	if !strings.Contains(out, `"organization_projects": []`) {
		t.Errorf("empty organization_projects must render as [], got:\n%s", out)
	}
}

func TestRenderTabular(t *testing.T) {
	out, err := scenarioTree(t).Render(FormatTabular)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(out, "\n")

	// Header, dashed rule, one row per node (root excluded).
	if len(lines) != 5 {
		t.Fatalf("tabular output has %d lines, want 5:\n%s", len(lines), out)
	}
	if fields := strings.Fields(lines[0]); strings.Join(fields, " ") != "ID Display Name Type Parent ID" {
		t.Errorf("header = %q", lines[0])
	}
	if strings.Count(lines[1], "-") != len(lines[0]) {
		t.Errorf("rule length %d != header length %d", strings.Count(lines[1], "-"), len(lines[0]))
	}

	wantRows := []string{
		"projects/B app-b PROJECT organizations/9",
		"folders/1 Team Folder FOLDER organizations/9",
		"projects/A app-a PROJECT folders/1",
	}
	for i, want := range wantRows {
		if got := strings.Join(strings.Fields(lines[i+2]), " "); got != want {
			t.Errorf("row %d = %q, want %q", i, got, want)
		}
	}

	// Columns line up: every row must have identical total width.
	for i := 2; i < len(lines); i++ {
		if len(lines[i]) != len(lines[0]) {
			t.Errorf("row %d width %d != header width %d", i-2, len(lines[i]), len(lines[0]))
		}
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	tree := scenarioTree(t)
	for _, format := range []HierarchyFormat{FormatTree, FormatPretty, FormatJSON, FormatTabular} {
		first, err := tree.Render(format)
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		second, err := tree.Render(format)
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if first != second {
			t.Errorf("%s render is not byte-identical across calls", format)
		}
	}
}

func TestParseHierarchyFormat(t *testing.T) {
	for _, valid := range []string{"tree", "pretty", "json", "tabular"} {
		if _, err := ParseHierarchyFormat(valid); err != nil {
			t.Errorf("ParseHierarchyFormat(%q) unexpected error: %v", valid, err)
		}
	}
	if _, err := ParseHierarchyFormat("yaml"); err == nil {
		t.Error("ParseHierarchyFormat(\"yaml\") expected error")
	}
}
