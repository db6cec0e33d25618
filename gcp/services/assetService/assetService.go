package assetservice

import (
	"context"
	"fmt"

	asset "cloud.google.com/go/asset/apiv1"
	assetpb "cloud.google.com/go/asset/apiv1/assetpb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/iterator"
)

const searchPageSize = 500

// Wrappers and abstracting types to facilitate mocking the client responses
type Iterator interface {
	Next() (*assetpb.ResourceSearchResult, error)
}

type AssetClientWrapper struct {
	Closer           func() error
	ResourceSearcher func(ctx context.Context, req *assetpb.SearchAllResourcesRequest, opts ...gax.CallOption) Iterator
}

func (w *AssetClientWrapper) Close() error {
	return w.Closer()
}

func (w *AssetClientWrapper) SearchAllResources(ctx context.Context, req *assetpb.SearchAllResourcesRequest, opts ...gax.CallOption) Iterator {
	return w.ResourceSearcher(ctx, req, opts...)
}

type AssetService struct {
	Client *AssetClientWrapper
}

// New function to facilitate using the asset search client
func New(client *asset.Client) AssetService {
	return AssetService{
		Client: &AssetClientWrapper{
			Closer: client.Close,
			ResourceSearcher: func(ctx context.Context, req *assetpb.SearchAllResourcesRequest, opts ...gax.CallOption) Iterator {
				return client.SearchAllResources(ctx, req, opts...)
			},
		},
	}
}

// SearchResources drains the paginated search into a complete snapshot before
// returning, so callers never observe a partial result set. The optional
// progress callback is invoked once per fetched result.
func (s *AssetService) SearchResources(ctx context.Context, scope string, assetTypes []string, progress func(int)) ([]*assetpb.ResourceSearchResult, error) {
	req := &assetpb.SearchAllResourcesRequest{
		Scope:      scope,
		AssetTypes: assetTypes,
		PageSize:   searchPageSize,
	}

	var results []*assetpb.ResourceSearchResult
	it := s.Client.SearchAllResources(ctx, req)
	for {
		result, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to search resources in %s: %w", scope, err)
		}
		results = append(results, result)
		if progress != nil {
			progress(1)
		}
	}
	return results, nil
}
