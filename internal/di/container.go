// Package di provides dependency injection for the Insight CLI.
// It contains the service container and factory functions.
package di

import (
	"fmt"
	"os"

	"github.com/team-insight/insight-cli/internal/api"
	"github.com/team-insight/insight-cli/internal/config"
	"github.com/team-insight/insight-cli/internal/events"
	"github.com/team-insight/insight-cli/internal/logging"
	"github.com/team-insight/insight-cli/internal/service"
	iface "github.com/team-insight/insight-cli/internal/service/interface"
)

// Container holds all service dependencies for the CLI.
// Services are accessed via interfaces to enable mocking in tests.
type Container struct {
	configManager  *config.Manager
	client         *api.Client
	authService    iface.AuthService
	projectService iface.ProjectService
	taskService    iface.TaskService
	teamService    iface.TeamService
	userService    iface.UserService
}

// NewContainer creates a new dependency container with default implementations
func NewContainer(debug bool) (*Container, error) {
	configManager, err := config.NewManager()
	if err != nil {
		return nil, err
	}

	apiURL, err := configManager.GetAPIURL()
	if err != nil {
		return nil, err
	}

	logger := logging.New(os.Stderr, debug || configManager.DebugEnabled())

	bus := events.NewBus()
	// The identity store reaction: a logout event invalidates whatever
	// credentials are cached locally.
	bus.Subscribe(events.Logout, func() {
		if err := configManager.Clear(); err != nil {
			logger.Warn().Err(err).Msg("failed to clear credentials on logout")
		}
	})

	opts := []api.Option{
		api.WithCredentialStore(configManager),
		api.WithEventBus(bus),
		api.WithLogger(logger),
		api.WithAuthRequiredHook(func() {
			fmt.Fprintln(os.Stderr, "Session expired. Please run 'insight login' again.")
		}),
	}
	if timeout := configManager.GetTimeout(); timeout > 0 {
		opts = append(opts, api.WithTimeout(timeout))
	}

	client, err := api.NewClient(apiURL, opts...)
	if err != nil {
		return nil, err
	}

	return &Container{
		configManager:  configManager,
		client:         client,
		authService:    service.NewAuthService(configManager, client),
		projectService: service.NewProjectService(client),
		taskService:    service.NewTaskService(client),
		teamService:    service.NewTeamService(client),
		userService:    service.NewUserService(client),
	}, nil
}

// NewContainerWithServices creates a container with custom service
// implementations. This is useful for testing with mock services.
func NewContainerWithServices(
	authService iface.AuthService,
	projectService iface.ProjectService,
	taskService iface.TaskService,
	teamService iface.TeamService,
	userService iface.UserService,
) *Container {
	return &Container{
		authService:    authService,
		projectService: projectService,
		taskService:    taskService,
		teamService:    teamService,
		userService:    userService,
	}
}

// AuthService returns the authentication service
func (c *Container) AuthService() iface.AuthService {
	return c.authService
}

// ProjectService returns the project service
func (c *Container) ProjectService() iface.ProjectService {
	return c.projectService
}

// TaskService returns the task service
func (c *Container) TaskService() iface.TaskService {
	return c.taskService
}

// TeamService returns the team service
func (c *Container) TeamService() iface.TeamService {
	return c.teamService
}

// UserService returns the user service
func (c *Container) UserService() iface.UserService {
	return c.userService
}

// ConfigManager returns the config manager
func (c *Container) ConfigManager() *config.Manager {
	return c.configManager
}

// Client returns the underlying API client
func (c *Container) Client() *api.Client {
	return c.client
}
