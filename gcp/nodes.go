package gcp

// NodeKind is the closed set of resource-manager node types that can appear
// in a hierarchy.
type NodeKind string

const (
	KindOrganization NodeKind = "ORGANIZATION"
	KindFolder       NodeKind = "FOLDER"
	KindProject      NodeKind = "PROJECT"
)

// HierarchyNode is one organization, folder or project discovered by an asset
// search. Children is populated by BuildTree only.
type HierarchyNode struct {
	ID          string
	DisplayName string
	Kind        NodeKind
	ParentID    string
	Children    []*HierarchyNode
}

// ResourceRecord is a single typed resource returned by a list-resources
// search.
type ResourceRecord struct {
	ResourceName       string
	OwnerProjectNumber string
	DisplayName        string
}

// Tree is the output of BuildTree. DirectScopeChildren are the nodes that were
// attached straight under the root because their declared parent was the scope
// itself or was absent from the search results; renderers need them without
// re-walking the tree.
type Tree struct {
	Root                *HierarchyNode
	DirectScopeChildren []*HierarchyNode
	CycleWarnings       []string
}
