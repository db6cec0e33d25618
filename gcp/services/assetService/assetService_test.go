package assetservice_test

import (
	"context"
	"errors"
	"testing"

	assetpb "cloud.google.com/go/asset/apiv1/assetpb"
	assetservice "github.com/fennecsec/gcpassets/gcp/services/assetService"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/iterator"
)

// resultIterator simulates the paginated iterator over search results.
type resultIterator struct {
	results   []*assetpb.ResourceSearchResult
	nextIndex int
	err       error
}

func (it *resultIterator) Next() (*assetpb.ResourceSearchResult, error) {
	if it.err != nil {
		return nil, it.err
	}
	if it.nextIndex >= len(it.results) {
		return nil, iterator.Done
	}
	result := it.results[it.nextIndex]
	it.nextIndex++
	return result, nil
}

type mockAssetClient struct {
	results []*assetpb.ResourceSearchResult
	err     error
	lastReq *assetpb.SearchAllResourcesRequest
}

func (m *mockAssetClient) Close() error {
	return nil
}

func (m *mockAssetClient) SearchAllResources(ctx context.Context, req *assetpb.SearchAllResourcesRequest, opts ...gax.CallOption) assetservice.Iterator {
	m.lastReq = req
	return &resultIterator{results: m.results, err: m.err}
}

func newMockedService(mock *mockAssetClient) assetservice.AssetService {
	return assetservice.AssetService{
		Client: &assetservice.AssetClientWrapper{
			Closer: mock.Close,
			ResourceSearcher: func(ctx context.Context, req *assetpb.SearchAllResourcesRequest, opts ...gax.CallOption) assetservice.Iterator {
				return mock.SearchAllResources(ctx, req, opts...)
			},
		},
	}
}

func TestSearchResources(t *testing.T) {
	mock := &mockAssetClient{
		results: []*assetpb.ResourceSearchResult{
			{Name: "//cloudresourcemanager.googleapis.com/projects/1"},
			{Name: "//cloudresourcemanager.googleapis.com/folders/2"},
			{Name: "//cloudresourcemanager.googleapis.com/organizations/3"},
		},
	}
	service := newMockedService(mock)

	var progressCalls int
	results, err := service.SearchResources(
		context.Background(),
		"organizations/3",
		[]string{"cloudresourcemanager.googleapis.com/Project"},
		func(int) { progressCalls++ },
	)
	if err != nil {
		t.Fatalf("SearchResources() error = %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("SearchResources() returned %d results, want 3", len(results))
	}
	if progressCalls != 3 {
		t.Errorf("progress callback invoked %d times, want once per result", progressCalls)
	}

	if mock.lastReq.Scope != "organizations/3" {
		t.Errorf("request scope = %q, want organizations/3", mock.lastReq.Scope)
	}
	if len(mock.lastReq.AssetTypes) != 1 || mock.lastReq.AssetTypes[0] != "cloudresourcemanager.googleapis.com/Project" {
		t.Errorf("request asset types = %v", mock.lastReq.AssetTypes)
	}
	if mock.lastReq.PageSize == 0 {
		t.Error("request page size not set")
	}
}

func TestSearchResourcesEmpty(t *testing.T) {
	service := newMockedService(&mockAssetClient{})

	results, err := service.SearchResources(context.Background(), "projects/p", nil, nil)
	if err != nil {
		t.Fatalf("SearchResources() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("SearchResources() returned %d results, want 0", len(results))
	}
}

func TestSearchResourcesIteratorError(t *testing.T) {
	searchErr := errors.New("rpc error: code = PermissionDenied")
	service := newMockedService(&mockAssetClient{err: searchErr})

	_, err := service.SearchResources(context.Background(), "organizations/3", nil, nil)
	if err == nil {
		t.Fatal("SearchResources() expected error")
	}
	if !errors.Is(err, searchErr) {
		t.Errorf("SearchResources() error = %v, want wrapped %v", err, searchErr)
	}
}
