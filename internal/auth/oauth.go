// Package auth provides the OAuth login flow for the CLI.
//
// The Team Insight backend fronts Backlog's OAuth handshake: the CLI opens
// the browser at the backend's authorize endpoint, receives the code on a
// local callback server, and exchanges it for session credentials. The code
// exchange itself is an opaque remote call.
package auth

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/browser"
	"golang.org/x/oauth2"
)

const (
	// DefaultCallbackPort is the first port probed for the local OAuth
	// callback server
	DefaultCallbackPort = 9131

	// DefaultClientID identifies the CLI as a public OAuth client
	DefaultClientID = "insight-cli"

	// loginTimeout bounds the wait for the browser handshake
	loginTimeout = 5 * time.Minute
)

// Result contains the session credentials established by a login
type Result struct {
	SessionToken string
	RefreshToken string
	ExpiresIn    int
}

// Flow handles the OAuth authentication flow
type Flow struct {
	apiURL       string
	clientID     string
	callbackPort int
}

// NewFlow creates a new OAuth flow handler for the given API base URL
func NewFlow(apiURL string) *Flow {
	return &Flow{
		apiURL:       apiURL,
		clientID:     DefaultClientID,
		callbackPort: DefaultCallbackPort,
	}
}

// oauthConfig builds the oauth2 configuration against the backend's
// authorize/token bridge endpoints
func (f *Flow) oauthConfig(redirectURI string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:    f.clientID,
		RedirectURL: redirectURI,
		Scopes:      []string{"read", "write"},
		Endpoint: oauth2.Endpoint{
			AuthURL:  f.apiURL + "/api/v1/auth/authorize",
			TokenURL: f.apiURL + "/api/v1/auth/token",
		},
	}
}

// Login performs the OAuth login flow. It starts a local callback server,
// opens the browser for authentication, and exchanges the returned
// authorization code for session credentials.
func (f *Flow) Login(ctx context.Context) (*Result, error) {
	port, err := f.findAvailablePort()
	if err != nil {
		return nil, fmt.Errorf("failed to find available port: %w", err)
	}

	redirectURI := fmt.Sprintf("http://localhost:%d/callback", port)
	cfg := f.oauthConfig(redirectURI)

	state := uuid.NewString()

	codeChan := make(chan string, 1)
	errChan := make(chan error, 1)

	server := f.startCallbackServer(port, state, codeChan, errChan)
	defer server.Shutdown(context.Background())

	authURL := cfg.AuthCodeURL(state)

	fmt.Println("Opening browser for authentication...")
	fmt.Printf("If the browser doesn't open, please visit:\n%s\n\n", authURL)

	if err := browser.OpenURL(authURL); err != nil {
		fmt.Printf("Failed to open browser automatically: %v\n", err)
	}

	fmt.Println("Waiting for authentication...")

	select {
	case code := <-codeChan:
		return f.exchangeCode(ctx, cfg, code)
	case err := <-errChan:
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(loginTimeout):
		return nil, fmt.Errorf("authentication timed out")
	}
}

// exchangeCode trades the authorization code for session credentials
func (f *Flow) exchangeCode(ctx context.Context, cfg *oauth2.Config, code string) (*Result, error) {
	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("token exchange failed: %w", err)
	}

	expiresIn := 0
	if !token.Expiry.IsZero() {
		expiresIn = int(time.Until(token.Expiry).Seconds())
	}

	return &Result{
		SessionToken: token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresIn:    expiresIn,
	}, nil
}

// findAvailablePort finds an available port starting from the default
func (f *Flow) findAvailablePort() (int, error) {
	for port := f.callbackPort; port < f.callbackPort+10; port++ {
		listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err == nil {
			listener.Close()
			return port, nil
		}
	}
	return 0, fmt.Errorf("no available port found")
}

// startCallbackServer starts the local OAuth callback server
func (f *Flow) startCallbackServer(port int, expectedState string, codeChan chan<- string, errChan chan<- error) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		state := r.URL.Query().Get("state")
		if state != expectedState {
			errChan <- fmt.Errorf("state mismatch")
			http.Error(w, "State mismatch", http.StatusBadRequest)
			return
		}

		if errMsg := r.URL.Query().Get("error"); errMsg != "" {
			errDesc := r.URL.Query().Get("error_description")
			errChan <- fmt.Errorf("OAuth error: %s - %s", errMsg, errDesc)
			w.Header().Set("Content-Type", "text/html")
			fmt.Fprint(w, callbackHTML("Authentication failed. You can close this window."))
			return
		}

		code := r.URL.Query().Get("code")
		if code == "" {
			errChan <- fmt.Errorf("no authorization code received")
			http.Error(w, "No code received", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, callbackHTML("Authentication successful! You can close this window."))

		codeChan <- code
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}

	go server.ListenAndServe()

	return server
}

// callbackHTML returns the HTML page shown after the OAuth handshake settles
func callbackHTML(message string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <title>Team Insight CLI</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
            display: flex;
            justify-content: center;
            align-items: center;
            height: 100vh;
            margin: 0;
            background-color: #f5f5f5;
        }
        .container {
            text-align: center;
            padding: 40px;
            background: white;
            border-radius: 8px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        h1 { color: #333; margin-bottom: 10px; }
        p { color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Team Insight</h1>
        <p>%s</p>
    </div>
</body>
</html>`, message)
}
