package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFlow_CallbackServer(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantCode string
		wantErr  string
	}{
		{
			name:     "delivers the authorization code",
			query:    "state=expected-state&code=auth-code-123",
			wantCode: "auth-code-123",
		},
		{
			name:    "rejects a state mismatch",
			query:   "state=wrong-state&code=auth-code-123",
			wantErr: "state mismatch",
		},
		{
			name:    "surfaces provider errors",
			query:   "state=expected-state&error=access_denied&error_description=user+cancelled",
			wantErr: "access_denied",
		},
		{
			name:    "rejects a missing code",
			query:   "state=expected-state",
			wantErr: "no authorization code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flow := NewFlow("http://localhost:1")

			port, err := flow.findAvailablePort()
			require.NoError(t, err)

			codeChan := make(chan string, 1)
			errChan := make(chan error, 1)

			server := flow.startCallbackServer(port, "expected-state", codeChan, errChan)
			defer server.Shutdown(context.Background())

			// The listener starts in a goroutine; give it a moment.
			url := fmt.Sprintf("http://localhost:%d/callback?%s", port, tt.query)
			var resp *http.Response
			for i := 0; i < 20; i++ {
				resp, err = http.Get(url)
				if err == nil {
					break
				}
				time.Sleep(10 * time.Millisecond)
			}
			require.NoError(t, err)
			resp.Body.Close()

			if tt.wantCode != "" {
				select {
				case code := <-codeChan:
					require.Equal(t, tt.wantCode, code)
				case <-time.After(time.Second):
					t.Fatal("no code delivered")
				}
				return
			}

			select {
			case err := <-errChan:
				require.ErrorContains(t, err, tt.wantErr)
			case <-time.After(time.Second):
				t.Fatal("no error delivered")
			}
		})
	}
}

func TestFlow_ExchangeCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/auth/token", r.URL.Path)
		require.NoError(t, r.ParseForm())
		require.Equal(t, "auth-code-123", r.FormValue("code"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"sess-abc","refresh_token":"refresh-xyz","token_type":"bearer","expires_in":3600}`)
	}))
	defer server.Close()

	flow := NewFlow(server.URL)
	cfg := flow.oauthConfig("http://localhost:9131/callback")

	result, err := flow.exchangeCode(context.Background(), cfg, "auth-code-123")
	require.NoError(t, err)
	require.Equal(t, "sess-abc", result.SessionToken)
	require.Equal(t, "refresh-xyz", result.RefreshToken)
	require.InDelta(t, 3600, result.ExpiresIn, 5)
}

func TestFlow_OAuthConfig(t *testing.T) {
	flow := NewFlow("https://api.team-insight.io")
	cfg := flow.oauthConfig("http://localhost:9131/callback")

	require.Equal(t, DefaultClientID, cfg.ClientID)
	require.Equal(t, "https://api.team-insight.io/api/v1/auth/authorize", cfg.Endpoint.AuthURL)
	require.Equal(t, "https://api.team-insight.io/api/v1/auth/token", cfg.Endpoint.TokenURL)
}
