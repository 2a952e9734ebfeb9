package service

import (
	"context"
	"fmt"

	"github.com/team-insight/insight-cli/internal/api"
	iface "github.com/team-insight/insight-cli/internal/service/interface"
)

// teamService implements iface.TeamService
type teamService struct {
	client *api.Client
}

// NewTeamService creates a new team service
func NewTeamService(client *api.Client) iface.TeamService {
	return &teamService{client: client}
}

// teamsResponse represents the response from GET /api/v1/teams
type teamsResponse struct {
	Teams []iface.Team `json:"teams"`
}

// teamRequest represents the request body for creating or updating a team
type teamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ListTeams returns all teams
func (s *teamService) ListTeams(ctx context.Context) ([]iface.Team, error) {
	var resp teamsResponse
	if err := s.client.Get(ctx, "/api/v1/teams", &resp); err != nil {
		return nil, err
	}
	return resp.Teams, nil
}

// CreateTeam creates a new team
func (s *teamService) CreateTeam(ctx context.Context, input *iface.TeamInput) (*iface.Team, error) {
	req := &teamRequest{Name: input.Name, Description: input.Description}

	var team iface.Team
	if err := s.client.Post(ctx, "/api/v1/teams", req, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

// UpdateTeam updates an existing team by ID
func (s *teamService) UpdateTeam(ctx context.Context, id string, input *iface.TeamInput) (*iface.Team, error) {
	req := &teamRequest{Name: input.Name, Description: input.Description}

	var team iface.Team
	if err := s.client.Put(ctx, fmt.Sprintf("/api/v1/teams/%s", id), req, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

// DeleteTeam deletes a team by ID
func (s *teamService) DeleteTeam(ctx context.Context, id string) error {
	return s.client.Delete(ctx, fmt.Sprintf("/api/v1/teams/%s", id), nil)
}
