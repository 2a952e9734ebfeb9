package iface

import (
	"context"
	"time"
)

// Team represents a Team Insight team
type Team struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	MemberCount int       `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TeamInput carries the writable fields of a team
type TeamInput struct {
	Name        string
	Description string
}

// TeamService defines the interface for team admin operations
type TeamService interface {
	// ListTeams returns all teams
	ListTeams(ctx context.Context) ([]Team, error)

	// CreateTeam creates a new team
	CreateTeam(ctx context.Context, input *TeamInput) (*Team, error)

	// UpdateTeam updates an existing team by ID
	UpdateTeam(ctx context.Context, id string, input *TeamInput) (*Team, error)

	// DeleteTeam deletes a team by ID
	DeleteTeam(ctx context.Context, id string) error
}
