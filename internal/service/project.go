package service

import (
	"context"
	"fmt"

	"github.com/team-insight/insight-cli/internal/api"
	iface "github.com/team-insight/insight-cli/internal/service/interface"
)

// projectService implements iface.ProjectService
type projectService struct {
	client *api.Client
}

// NewProjectService creates a new project service
func NewProjectService(client *api.Client) iface.ProjectService {
	return &projectService{client: client}
}

// projectsResponse represents the response from GET /api/v1/projects
type projectsResponse struct {
	Projects []iface.Project `json:"projects"`
}

// ListProjects returns all synced projects visible to the user
func (s *projectService) ListProjects(ctx context.Context) ([]iface.Project, error) {
	var resp projectsResponse
	if err := s.client.Get(ctx, "/api/v1/projects", &resp); err != nil {
		return nil, err
	}
	return resp.Projects, nil
}

// GetProject returns a project by ID
func (s *projectService) GetProject(ctx context.Context, id string) (*iface.Project, error) {
	var project iface.Project
	if err := s.client.Get(ctx, fmt.Sprintf("/api/v1/projects/%s", id), &project); err != nil {
		return nil, err
	}
	return &project, nil
}
