package cmd

import (
	"context"

	iface "github.com/team-insight/insight-cli/internal/service/interface"
)

// MockAuthService is a mock implementation of iface.AuthService
type MockAuthService struct {
	LoginFunc      func(ctx context.Context) error
	LogoutFunc     func(ctx context.Context) error
	IsLoggedInFunc func() bool
	WhoAmIFunc     func(ctx context.Context) (*iface.Identity, error)
}

func (m *MockAuthService) Login(ctx context.Context) error {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx)
	}
	return nil
}

func (m *MockAuthService) Logout(ctx context.Context) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx)
	}
	return nil
}

func (m *MockAuthService) IsLoggedIn() bool {
	if m.IsLoggedInFunc != nil {
		return m.IsLoggedInFunc()
	}
	return true
}

func (m *MockAuthService) WhoAmI(ctx context.Context) (*iface.Identity, error) {
	if m.WhoAmIFunc != nil {
		return m.WhoAmIFunc(ctx)
	}
	return &iface.Identity{ID: "user-1", Name: "Test User", Email: "test@example.com", Role: "member"}, nil
}

// MockProjectService is a mock implementation of iface.ProjectService
type MockProjectService struct {
	ListProjectsFunc func(ctx context.Context) ([]iface.Project, error)
	GetProjectFunc   func(ctx context.Context, id string) (*iface.Project, error)
}

func (m *MockProjectService) ListProjects(ctx context.Context) ([]iface.Project, error) {
	if m.ListProjectsFunc != nil {
		return m.ListProjectsFunc(ctx)
	}
	return nil, nil
}

func (m *MockProjectService) GetProject(ctx context.Context, id string) (*iface.Project, error) {
	if m.GetProjectFunc != nil {
		return m.GetProjectFunc(ctx, id)
	}
	return nil, nil
}

// MockTaskService is a mock implementation of iface.TaskService
type MockTaskService struct {
	ListTasksFunc func(ctx context.Context, filter iface.TaskFilter) ([]iface.Task, error)
}

func (m *MockTaskService) ListTasks(ctx context.Context, filter iface.TaskFilter) ([]iface.Task, error) {
	if m.ListTasksFunc != nil {
		return m.ListTasksFunc(ctx, filter)
	}
	return nil, nil
}

// MockTeamService is a mock implementation of iface.TeamService
type MockTeamService struct {
	ListTeamsFunc  func(ctx context.Context) ([]iface.Team, error)
	CreateTeamFunc func(ctx context.Context, input *iface.TeamInput) (*iface.Team, error)
	UpdateTeamFunc func(ctx context.Context, id string, input *iface.TeamInput) (*iface.Team, error)
	DeleteTeamFunc func(ctx context.Context, id string) error
}

func (m *MockTeamService) ListTeams(ctx context.Context) ([]iface.Team, error) {
	if m.ListTeamsFunc != nil {
		return m.ListTeamsFunc(ctx)
	}
	return nil, nil
}

func (m *MockTeamService) CreateTeam(ctx context.Context, input *iface.TeamInput) (*iface.Team, error) {
	if m.CreateTeamFunc != nil {
		return m.CreateTeamFunc(ctx, input)
	}
	return &iface.Team{ID: "team-1", Name: input.Name}, nil
}

func (m *MockTeamService) UpdateTeam(ctx context.Context, id string, input *iface.TeamInput) (*iface.Team, error) {
	if m.UpdateTeamFunc != nil {
		return m.UpdateTeamFunc(ctx, id, input)
	}
	return &iface.Team{ID: id, Name: input.Name}, nil
}

func (m *MockTeamService) DeleteTeam(ctx context.Context, id string) error {
	if m.DeleteTeamFunc != nil {
		return m.DeleteTeamFunc(ctx, id)
	}
	return nil
}

// MockUserService is a mock implementation of iface.UserService
type MockUserService struct {
	ListUsersFunc  func(ctx context.Context) ([]iface.User, error)
	CreateUserFunc func(ctx context.Context, input *iface.UserInput) (*iface.User, error)
	UpdateUserFunc func(ctx context.Context, id string, input *iface.UserInput) (*iface.User, error)
	DeleteUserFunc func(ctx context.Context, id string) error
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]iface.User, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserService) CreateUser(ctx context.Context, input *iface.UserInput) (*iface.User, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, input)
	}
	return &iface.User{ID: "user-1", Name: input.Name}, nil
}

func (m *MockUserService) UpdateUser(ctx context.Context, id string, input *iface.UserInput) (*iface.User, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, id, input)
	}
	return &iface.User{ID: id, Name: input.Name}, nil
}

func (m *MockUserService) DeleteUser(ctx context.Context, id string) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, id)
	}
	return nil
}
