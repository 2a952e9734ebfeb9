package cmd

import (
	"context"
	"strings"
	"testing"

	iface "github.com/team-insight/insight-cli/internal/service/interface"
)

func TestWhoAmICommand_Run(t *testing.T) {
	tests := []struct {
		name         string
		mockIdentity *iface.Identity
		mockError    error
		wantOutput   []string
		wantErr      bool
	}{
		{
			name:         "shows the authenticated user",
			mockIdentity: &iface.Identity{ID: "user-1", Name: "Alice", Email: "alice@example.com", Role: "admin"},
			wantOutput:   []string{"Alice", "alice@example.com", "admin"},
			wantErr:      false,
		},
		{
			name:         "reports not logged in without error",
			mockIdentity: nil,
			wantOutput:   []string{"Not logged in"},
			wantErr:      false,
		},
		{
			name:      "returns error when probe fails",
			mockError: context.DeadlineExceeded,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAuth := &MockAuthService{
				WhoAmIFunc: func(ctx context.Context) (*iface.Identity, error) {
					if tt.mockError != nil {
						return nil, tt.mockError
					}
					return tt.mockIdentity, nil
				},
			}

			container := newMockContainerWithAuth(mockAuth)

			output, err := runCommand(t, container, "whoami")

			if (err != nil) != tt.wantErr {
				t.Errorf("Run() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			for _, want := range tt.wantOutput {
				if !strings.Contains(output, want) {
					t.Errorf("Output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}
