package gcp

import (
	"context"
	"fmt"

	"github.com/fennecsec/gcpassets/console"
	assetservice "github.com/fennecsec/gcpassets/gcp/services/assetService"
	"github.com/fennecsec/gcpassets/globals"
	"github.com/fennecsec/gcpassets/internal"
)

// HierarchyModule renders the resource hierarchy below a scope: a single
// point-in-time asset search snapshot, normalized and linked into a tree, then
// rendered in the requested format.
type HierarchyModule struct {
	AssetService assetservice.AssetService
	Cache        *ProjectIDCache

	Scope           Scope
	Format          HierarchyFormat
	OutputDirectory string
	Verbosity       int
	WrapTable       bool
}

func (m *HierarchyModule) DisplayHierarchy(ctx context.Context) error {
	logger := internal.NewLogger()
	logger.InfoM(fmt.Sprintf("Fetching resource hierarchy for %s...", m.Scope), globals.GCP_HIERARCHY_MODULE_NAME)

	counter := &console.CommandCounter{}
	done := make(chan bool)
	go console.SpinUntil(globals.GCP_HIERARCHY_MODULE_NAME, counter, done, "records")

	results, err := m.AssetService.SearchResources(ctx, m.Scope.String(), []string{
		globals.GCP_ORGANIZATION_ASSET_TYPE,
		globals.GCP_FOLDER_ASSET_TYPE,
		globals.GCP_PROJECT_ASSET_TYPE,
	}, counter.AddComplete)
	done <- true
	<-done
	if err != nil {
		if IsPermissionDenied(err) {
			logger.ErrorM("The authenticated principal needs cloudasset.assets.searchAllResources on the scope", globals.GCP_HIERARCHY_MODULE_NAME)
		} else if IsNotFound(err) {
			logger.ErrorM(fmt.Sprintf("Scope %s does not exist or is not visible to the authenticated principal", m.Scope), globals.GCP_HIERARCHY_MODULE_NAME)
		}
		return fmt.Errorf("searching hierarchy assets in %s: %w", m.Scope, err)
	}

	normalized := NormalizeAssets(results)
	if normalized.Dropped > 0 {
		logger.ErrorM(fmt.Sprintf("Dropped %d malformed search result(s)", normalized.Dropped), globals.GCP_HIERARCHY_MODULE_NAME)
	}
	if len(normalized.Nodes) == 0 {
		logger.InfoM("No folders or projects found under the specified scope", globals.GCP_HIERARCHY_MODULE_NAME)
		return nil
	}

	tree := BuildTree(ctx, normalized.Nodes, m.Scope, m.Cache)
	for _, warning := range tree.CycleWarnings {
		logger.ErrorM(warning, globals.GCP_HIERARCHY_MODULE_NAME)
	}

	out, err := tree.Render(m.Format)
	if err != nil {
		return err
	}
	fmt.Println(out)

	for _, failure := range m.Cache.Failures() {
		logger.ErrorM(fmt.Sprintf("Could not resolve project number %s", failure), globals.GCP_HIERARCHY_MODULE_NAME)
	}

	if m.OutputDirectory != "" {
		m.writeArtifacts(tree)
	}
	return nil
}

// writeArtifacts mirrors the tabular rendition into table/csv/json files under
// the output directory.
func (m *HierarchyModule) writeArtifacts(tree *Tree) {
	var body [][]string
	var walk func(n *HierarchyNode, parentID string)
	walk = func(n *HierarchyNode, parentID string) {
		body = append(body, []string{n.ID, n.DisplayName, string(n.Kind), parentID})
		for _, child := range n.Children {
			walk(child, n.ID)
		}
	}
	for _, child := range tree.Root.Children {
		walk(child, tree.Root.ID)
	}

	o := internal.OutputClient{
		Verbosity:        m.Verbosity,
		CallingModule:    globals.GCP_HIERARCHY_MODULE_NAME,
		PrefixIdentifier: m.Scope.String(),
		Table: internal.TableClient{
			Wrap:          m.WrapTable,
			DirectoryName: m.OutputDirectory,
		},
	}
	o.WriteFullOutput([]internal.TableFile{{
		Name:              globals.GCP_HIERARCHY_MODULE_NAME,
		Header:            []string{"ID", "Display Name", "Type", "Parent ID"},
		Body:              body,
		SkipPrintToScreen: true,
	}})
}
