package gcp

import (
	"regexp"
	"strings"

	assetpb "cloud.google.com/go/asset/apiv1/assetpb"
	"github.com/fennecsec/gcpassets/globals"
)

const bigqueryDatasetAssetType = "bigquery.googleapis.com/Dataset"

var projectNumberRe = regexp.MustCompile(`(?:^|/)projects/(\d+)(?:/|$)`)

// NormalizedAssets is the output of NormalizeAssets: hierarchy nodes for
// resource-manager asset types, resource records for everything else, and a
// count of malformed entries that were dropped.
type NormalizedAssets struct {
	Nodes   []*HierarchyNode
	Records []ResourceRecord
	Dropped int
}

// NormalizeAssets converts raw search results into the uniform internal
// shapes. Entries without a resource name are dropped and counted, never
// fatal. Output ordering follows the input collection; the tree builder owns
// any ordering the renderers need.
func NormalizeAssets(results []*assetpb.ResourceSearchResult) NormalizedAssets {
	var normalized NormalizedAssets
	seenDatasets := make(map[string]bool)

	for _, result := range results {
		if result == nil || result.Name == "" {
			normalized.Dropped++
			continue
		}

		switch result.AssetType {
		case globals.GCP_ORGANIZATION_ASSET_TYPE, globals.GCP_FOLDER_ASSET_TYPE, globals.GCP_PROJECT_ASSET_TYPE:
			normalized.Nodes = append(normalized.Nodes, normalizeHierarchyNode(result))
		case bigqueryDatasetAssetType:
			// The search API returns shadow copies of datasets in
			// every region they replicate to.
			key := result.Project + "|" + result.Name
			if seenDatasets[key] {
				continue
			}
			seenDatasets[key] = true
			normalized.Records = append(normalized.Records, normalizeResourceRecord(result))
		default:
			normalized.Records = append(normalized.Records, normalizeResourceRecord(result))
		}
	}
	return normalized
}

func normalizeHierarchyNode(result *assetpb.ResourceSearchResult) *HierarchyNode {
	id := strings.TrimPrefix(result.Name, globals.GCP_CRM_RESOURCE_PREFIX)

	var kind NodeKind
	switch result.AssetType {
	case globals.GCP_ORGANIZATION_ASSET_TYPE:
		kind = KindOrganization
	case globals.GCP_FOLDER_ASSET_TYPE:
		kind = KindFolder
	default:
		kind = KindProject
	}

	displayName := result.DisplayName
	if displayName == "" {
		displayName = id
	}

	return &HierarchyNode{
		ID:          id,
		DisplayName: displayName,
		Kind:        kind,
		ParentID:    strings.TrimPrefix(result.ParentFullResourceName, globals.GCP_CRM_RESOURCE_PREFIX),
	}
}

func normalizeResourceRecord(result *assetpb.ResourceSearchResult) ResourceRecord {
	displayName := result.DisplayName
	if displayName == "" {
		segments := strings.Split(result.Name, "/")
		displayName = segments[len(segments)-1]
	}

	return ResourceRecord{
		ResourceName:       result.Name,
		OwnerProjectNumber: extractProjectNumber(result),
		DisplayName:        displayName,
	}
}

// extractProjectNumber pulls the owning project number from the result's
// project field, falling back to the resource name or parent path.
func extractProjectNumber(result *assetpb.ResourceSearchResult) string {
	if m := projectNumberRe.FindStringSubmatch(result.Project); m != nil {
		return m[1]
	}
	if m := projectNumberRe.FindStringSubmatch(result.ParentFullResourceName); m != nil {
		return m[1]
	}
	if m := projectNumberRe.FindStringSubmatch(result.Name); m != nil {
		return m[1]
	}
	return ""
}
