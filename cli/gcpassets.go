package cli

import (
	"context"
	"fmt"

	asset "cloud.google.com/go/asset/apiv1"
	resourcemanager "cloud.google.com/go/resourcemanager/apiv3"
	"github.com/fennecsec/gcpassets/gcp"
	assetservice "github.com/fennecsec/gcpassets/gcp/services/assetService"
	projectsservice "github.com/fennecsec/gcpassets/gcp/services/projectsService"
	"github.com/fennecsec/gcpassets/globals"
	"github.com/fennecsec/gcpassets/internal"
	"github.com/spf13/cobra"
)

var (
	Scope           string
	OutputDirectory string
	Verbosity       int
	WrapTable       bool

	hierarchyFormat string
	resourceFormat  string
	resourceType    string
	resourceDebug   bool

	HierarchyCommand = &cobra.Command{
		Use:     globals.GCP_HIERARCHY_MODULE_NAME,
		Aliases: []string{"tree"},
		Short:   "Display the folder/project hierarchy below a scope",
		Long: `
Display the resource hierarchy below an organization or folder:
./gcpassets hierarchy --scope organizations/123456789
./gcpassets hierarchy --scope folders/987654321 --format pretty`,
		Run: runHierarchyCommand,
	}

	ListResourcesCommand = &cobra.Command{
		Use:     globals.GCP_LIST_RESOURCES_MODULE_NAME,
		Aliases: []string{"resources", "list"},
		Short:   "List typed resources below a scope",
		Long: `
List resources of a given type below an organization, folder or project:
./gcpassets list-resources --scope organizations/123456789 --type vm
./gcpassets list-resources --scope projects/my-project --type storage.googleapis.com/Bucket --format csv

Run with --type help to list the known type aliases.`,
		Run: runListResourcesCommand,
	}
)

func init() {
	HierarchyCommand.Flags().StringVarP(&Scope, "scope", "s", "", "Scope to search: organizations/<id>, folders/<id> or projects/<id>")
	HierarchyCommand.MarkFlagRequired("scope")
	HierarchyCommand.Flags().StringVarP(&hierarchyFormat, "format", "f", "tree", "[\"tree\" | \"pretty\" | \"json\" | \"tabular\"]")
	HierarchyCommand.Flags().StringVarP(&OutputDirectory, "outdir", "o", "", "Also write table/csv/json artifacts under this directory")
	HierarchyCommand.Flags().IntVarP(&Verbosity, "verbosity", "v", 2, "1 = control messages only\n2 = control messages and module output\n3 = also echo artifact tables\n")
	HierarchyCommand.Flags().BoolVarP(&WrapTable, "wrap", "w", false, "Wrap artifact tables to fit in terminal (complicates grepping)")

	ListResourcesCommand.Flags().StringVarP(&Scope, "scope", "s", "", "Scope to search: organizations/<id>, folders/<id> or projects/<id>")
	ListResourcesCommand.MarkFlagRequired("scope")
	ListResourcesCommand.Flags().StringVarP(&resourceType, "type", "t", "", "Resource type alias (e.g. vm, bucket) or full asset type")
	ListResourcesCommand.MarkFlagRequired("type")
	ListResourcesCommand.Flags().StringVarP(&resourceFormat, "format", "f", "tabular", "[\"tabular\" | \"json\" | \"csv\"]")
	ListResourcesCommand.Flags().BoolVar(&resourceDebug, "debug", false, "Print the first raw search result and exit")
	ListResourcesCommand.Flags().StringVarP(&OutputDirectory, "outdir", "o", "", "Also write table/csv/json artifacts under this directory")
	ListResourcesCommand.Flags().IntVarP(&Verbosity, "verbosity", "v", 2, "1 = control messages only\n2 = control messages and module output\n3 = also echo artifact tables\n")
	ListResourcesCommand.Flags().BoolVarP(&WrapTable, "wrap", "w", false, "Wrap artifact tables to fit in terminal (complicates grepping)")
}

func runHierarchyCommand(cmd *cobra.Command, args []string) {
	logger := internal.NewLogger()

	scope, err := gcp.ParseScope(Scope)
	if err != nil {
		logger.FatalM(err.Error(), globals.GCP_HIERARCHY_MODULE_NAME)
	}
	format, err := gcp.ParseHierarchyFormat(hierarchyFormat)
	if err != nil {
		logger.FatalM(err.Error(), globals.GCP_HIERARCHY_MODULE_NAME)
	}

	ctx := commandContext(cmd)
	assetSvc, projectsSvc, closeClients := newServices(ctx, logger, globals.GCP_HIERARCHY_MODULE_NAME)
	defer closeClients()

	module := gcp.HierarchyModule{
		AssetService:    assetSvc,
		Cache:           gcp.NewProjectIDCache(projectsSvc.ProjectID),
		Scope:           scope,
		Format:          format,
		OutputDirectory: OutputDirectory,
		Verbosity:       Verbosity,
		WrapTable:       WrapTable,
	}
	if err := module.DisplayHierarchy(ctx); err != nil {
		logger.FatalM(err.Error(), globals.GCP_HIERARCHY_MODULE_NAME)
	}
}

func runListResourcesCommand(cmd *cobra.Command, args []string) {
	logger := internal.NewLogger()

	if resourceType == "help" {
		for _, line := range gcp.AssetTypeAliases() {
			fmt.Println(line)
		}
		return
	}

	scope, err := gcp.ParseScope(Scope)
	if err != nil {
		logger.FatalM(err.Error(), globals.GCP_LIST_RESOURCES_MODULE_NAME)
	}
	assetType, err := gcp.ResolveAssetType(resourceType)
	if err != nil {
		logger.FatalM(err.Error(), globals.GCP_LIST_RESOURCES_MODULE_NAME)
	}
	format, err := gcp.ParseResourceListFormat(resourceFormat)
	if err != nil {
		logger.FatalM(err.Error(), globals.GCP_LIST_RESOURCES_MODULE_NAME)
	}

	ctx := commandContext(cmd)
	assetSvc, projectsSvc, closeClients := newServices(ctx, logger, globals.GCP_LIST_RESOURCES_MODULE_NAME)
	defer closeClients()

	module := gcp.InventoryModule{
		AssetService:    assetSvc,
		Cache:           gcp.NewProjectIDCache(projectsSvc.ProjectID),
		Scope:           scope,
		AssetType:       assetType,
		Format:          format,
		Debug:           resourceDebug,
		OutputDirectory: OutputDirectory,
		Verbosity:       Verbosity,
		WrapTable:       WrapTable,
	}
	if err := module.ListResources(ctx); err != nil {
		logger.FatalM(err.Error(), globals.GCP_LIST_RESOURCES_MODULE_NAME)
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// newServices builds the asset search and project lookup clients with
// Application Default Credentials. Client construction failure is fatal; there
// is nothing to degrade to.
func newServices(ctx context.Context, logger internal.Logger, module string) (assetservice.AssetService, projectsservice.ProjectsService, func()) {
	assetClient, err := asset.NewClient(ctx)
	if err != nil {
		logger.FatalM(fmt.Sprintf("failed to create asset client: %v", err), module)
	}
	projectsClient, err := resourcemanager.NewProjectsClient(ctx)
	if err != nil {
		assetClient.Close()
		logger.FatalM(fmt.Sprintf("failed to create projects client: %v", err), module)
	}

	closeClients := func() {
		assetClient.Close()
		projectsClient.Close()
	}
	return assetservice.New(assetClient), projectsservice.New(projectsClient), closeClients
}
