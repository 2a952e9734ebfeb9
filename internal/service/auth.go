package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/team-insight/insight-cli/internal/api"
	"github.com/team-insight/insight-cli/internal/auth"
	"github.com/team-insight/insight-cli/internal/config"
	iface "github.com/team-insight/insight-cli/internal/service/interface"
)

// authService implements iface.AuthService
type authService struct {
	configManager *config.Manager
	client        *api.Client
}

// NewAuthService creates a new authentication service
func NewAuthService(configManager *config.Manager, client *api.Client) iface.AuthService {
	return &authService{
		configManager: configManager,
		client:        client,
	}
}

// Login performs OAuth authentication and saves credentials
func (s *authService) Login(ctx context.Context) error {
	if s.IsLoggedIn() {
		return fmt.Errorf("already logged in. Use 'insight logout' first to log out")
	}

	apiURL, err := s.configManager.GetAPIURL()
	if err != nil {
		return fmt.Errorf("failed to get API URL: %w", err)
	}

	flow := auth.NewFlow(apiURL)

	result, err := flow.Login(ctx)
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	if err := s.configManager.SaveSession(result.SessionToken, result.RefreshToken, result.ExpiresIn); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}

	return nil
}

// Logout clears stored credentials. The server-side session teardown is
// best-effort: local credentials are cleared even when the call fails.
func (s *authService) Logout(ctx context.Context) error {
	if !s.IsLoggedIn() {
		return fmt.Errorf("not logged in")
	}

	_ = s.client.Post(ctx, "/api/v1/auth/logout", nil, nil)

	if err := s.configManager.Clear(); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}

	return nil
}

// IsLoggedIn checks if the user is currently authenticated
// Note: This only checks if credentials exist, not if they're valid
func (s *authService) IsLoggedIn() bool {
	return s.configManager.IsLoggedIn()
}

// WhoAmI probes the backend for the current identity. When no credentials
// are stored the probe runs in a public context: a 401 then means an
// expected "no identity" state and yields (nil, nil) with no lifecycle
// events.
func (s *authService) WhoAmI(ctx context.Context) (*iface.Identity, error) {
	if !s.configManager.IsLoggedIn() {
		s.client.SetPublicContext(true)
		defer s.client.SetPublicContext(false)
	}

	var identity iface.Identity
	if err := s.client.Get(ctx, api.IdentityPath, &identity); err != nil {
		if errors.Is(err, api.ErrNotAuthenticated) {
			return nil, nil
		}
		return nil, err
	}

	return &identity, nil
}
