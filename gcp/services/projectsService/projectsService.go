package projectsservice

import (
	"context"
	"fmt"

	resourcemanager "cloud.google.com/go/resourcemanager/apiv3"
	resourcemanagerpb "cloud.google.com/go/resourcemanager/apiv3/resourcemanagerpb"
	"github.com/googleapis/gax-go/v2"
)

// Wrappers and abstracting types to facilitate mocking the client responses
type ProjectsClientWrapper struct {
	Closer        func() error
	ProjectGetter func(ctx context.Context, req *resourcemanagerpb.GetProjectRequest, opts ...gax.CallOption) (*resourcemanagerpb.Project, error)
}

func (w *ProjectsClientWrapper) Close() error {
	return w.Closer()
}

func (w *ProjectsClientWrapper) GetProject(ctx context.Context, req *resourcemanagerpb.GetProjectRequest, opts ...gax.CallOption) (*resourcemanagerpb.Project, error) {
	return w.ProjectGetter(ctx, req, opts...)
}

type ProjectsService struct {
	Client *ProjectsClientWrapper
}

// New function to facilitate using the projects client
func New(client *resourcemanager.ProjectsClient) ProjectsService {
	return ProjectsService{
		Client: &ProjectsClientWrapper{
			Closer: client.Close,
			ProjectGetter: func(ctx context.Context, req *resourcemanagerpb.GetProjectRequest, opts ...gax.CallOption) (*resourcemanagerpb.Project, error) {
				return client.GetProject(ctx, req, opts...)
			},
		},
	}
}

// ProjectID resolves a numeric project identifier to its project ID through
// the resource manager API.
func (ps *ProjectsService) ProjectID(ctx context.Context, projectNumber string) (string, error) {
	project, err := ps.Client.GetProject(ctx, &resourcemanagerpb.GetProjectRequest{
		Name: "projects/" + projectNumber,
	})
	if err != nil {
		return "", fmt.Errorf("failed to get project %s: %w", projectNumber, err)
	}
	return project.ProjectId, nil
}
