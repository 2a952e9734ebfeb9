package service

import (
	"context"
	"fmt"

	"github.com/team-insight/insight-cli/internal/api"
	iface "github.com/team-insight/insight-cli/internal/service/interface"
)

// userService implements iface.UserService
type userService struct {
	client *api.Client
}

// NewUserService creates a new user service
func NewUserService(client *api.Client) iface.UserService {
	return &userService{client: client}
}

// usersResponse represents the response from GET /api/v1/users
type usersResponse struct {
	Users []iface.User `json:"users"`
}

// userRequest represents the request body for creating or updating a user
type userRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ListUsers returns all user accounts
func (s *userService) ListUsers(ctx context.Context) ([]iface.User, error) {
	var resp usersResponse
	if err := s.client.Get(ctx, "/api/v1/users", &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// CreateUser creates a new user account
func (s *userService) CreateUser(ctx context.Context, input *iface.UserInput) (*iface.User, error) {
	req := &userRequest{Name: input.Name, Email: input.Email, Role: input.Role}

	var user iface.User
	if err := s.client.Post(ctx, "/api/v1/users", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates an existing user by ID
func (s *userService) UpdateUser(ctx context.Context, id string, input *iface.UserInput) (*iface.User, error) {
	req := &userRequest{Name: input.Name, Email: input.Email, Role: input.Role}

	var user iface.User
	if err := s.client.Put(ctx, fmt.Sprintf("/api/v1/users/%s", id), req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser deletes a user by ID
func (s *userService) DeleteUser(ctx context.Context, id string) error {
	return s.client.Delete(ctx, fmt.Sprintf("/api/v1/users/%s", id), nil)
}
