package iface

import (
	"context"
	"time"
)

// User represents a Team Insight user account
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	TeamIDs   []string  `json:"team_ids,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserInput carries the writable fields of a user
type UserInput struct {
	Name  string
	Email string
	Role  string
}

// UserService defines the interface for user admin operations
type UserService interface {
	// ListUsers returns all user accounts
	ListUsers(ctx context.Context) ([]User, error)

	// CreateUser creates a new user account
	CreateUser(ctx context.Context, input *UserInput) (*User, error)

	// UpdateUser updates an existing user by ID
	UpdateUser(ctx context.Context, id string, input *UserInput) (*User, error)

	// DeleteUser deletes a user by ID
	DeleteUser(ctx context.Context, id string) error
}
