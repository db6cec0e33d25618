package gcp

import (
	"context"
	"fmt"

	"github.com/fennecsec/gcpassets/console"
	assetservice "github.com/fennecsec/gcpassets/gcp/services/assetService"
	"github.com/fennecsec/gcpassets/globals"
	"github.com/fennecsec/gcpassets/internal"
	"google.golang.org/protobuf/encoding/protojson"
)

// InventoryModule lists typed resources below a scope and labels each row with
// its owning project's ID, resolved through the shared project-ID cache.
type InventoryModule struct {
	AssetService assetservice.AssetService
	Cache        *ProjectIDCache

	Scope           Scope
	AssetType       string
	Format          ResourceListFormat
	Debug           bool
	OutputDirectory string
	Verbosity       int
	WrapTable       bool
}

func (m *InventoryModule) ListResources(ctx context.Context) error {
	logger := internal.NewLogger()
	logger.InfoM(fmt.Sprintf("Fetching %s resources in %s...", m.AssetType, m.Scope), globals.GCP_LIST_RESOURCES_MODULE_NAME)

	counter := &console.CommandCounter{}
	done := make(chan bool)
	go console.SpinUntil(globals.GCP_LIST_RESOURCES_MODULE_NAME, counter, done, "resources")

	results, err := m.AssetService.SearchResources(ctx, m.Scope.String(), []string{m.AssetType}, counter.AddComplete)
	done <- true
	<-done
	if err != nil {
		if IsPermissionDenied(err) {
			logger.ErrorM("The authenticated principal needs cloudasset.assets.searchAllResources on the scope", globals.GCP_LIST_RESOURCES_MODULE_NAME)
		} else if IsNotFound(err) {
			logger.ErrorM(fmt.Sprintf("Scope %s does not exist or is not visible to the authenticated principal", m.Scope), globals.GCP_LIST_RESOURCES_MODULE_NAME)
		}
		return fmt.Errorf("searching %s resources in %s: %w", m.AssetType, m.Scope, err)
	}

	if m.Debug {
		if len(results) == 0 {
			logger.InfoM("No resources found", globals.GCP_LIST_RESOURCES_MODULE_NAME)
			return nil
		}
		raw, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(results[0])
		if err != nil {
			return fmt.Errorf("marshalling raw search result: %w", err)
		}
		fmt.Println(string(raw))
		return nil
	}

	normalized := NormalizeAssets(results)
	if normalized.Dropped > 0 {
		logger.ErrorM(fmt.Sprintf("Dropped %d malformed search result(s)", normalized.Dropped), globals.GCP_LIST_RESOURCES_MODULE_NAME)
	}
	if len(normalized.Records) == 0 {
		logger.InfoM("No resources found", globals.GCP_LIST_RESOURCES_MODULE_NAME)
		return nil
	}

	rows := BuildResourceRows(ctx, normalized.Records, m.Cache)
	out, err := RenderResourceRows(rows, m.Format)
	if err != nil {
		return err
	}
	fmt.Println(out)

	for _, failure := range m.Cache.Failures() {
		logger.ErrorM(fmt.Sprintf("Could not resolve project number %s", failure), globals.GCP_LIST_RESOURCES_MODULE_NAME)
	}

	if m.OutputDirectory != "" {
		m.writeArtifacts(rows)
	}
	return nil
}

func (m *InventoryModule) writeArtifacts(rows []ResourceRow) {
	body := make([][]string, 0, len(rows))
	for _, row := range rows {
		body = append(body, []string{row.ProjectID, row.ResourceName})
	}

	o := internal.OutputClient{
		Verbosity:        m.Verbosity,
		CallingModule:    globals.GCP_LIST_RESOURCES_MODULE_NAME,
		PrefixIdentifier: m.Scope.String(),
		Table: internal.TableClient{
			Wrap:          m.WrapTable,
			DirectoryName: m.OutputDirectory,
		},
	}
	o.WriteFullOutput([]internal.TableFile{{
		Name:              globals.GCP_LIST_RESOURCES_MODULE_NAME,
		Header:            []string{"Project ID", "Resource Name"},
		Body:              body,
		SkipPrintToScreen: true,
	}})
}
