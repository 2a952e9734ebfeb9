package service

import (
	"context"
	"net/url"

	"github.com/team-insight/insight-cli/internal/api"
	iface "github.com/team-insight/insight-cli/internal/service/interface"
)

// taskService implements iface.TaskService
type taskService struct {
	client *api.Client
}

// NewTaskService creates a new task service
func NewTaskService(client *api.Client) iface.TaskService {
	return &taskService{client: client}
}

// tasksResponse represents the response from GET /api/v1/tasks
type tasksResponse struct {
	Tasks []iface.Task `json:"tasks"`
}

// ListTasks returns tasks matching the filter
func (s *taskService) ListTasks(ctx context.Context, filter iface.TaskFilter) ([]iface.Task, error) {
	query := url.Values{}
	if filter.ProjectID != "" {
		query.Set("project_id", filter.ProjectID)
	}
	if filter.Assignee != "" {
		query.Set("assignee", filter.Assignee)
	}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}

	path := "/api/v1/tasks"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var resp tasksResponse
	if err := s.client.Get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}
