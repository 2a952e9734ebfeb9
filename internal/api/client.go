// Package api provides the authenticated HTTP client for the Team Insight API.
//
// The client attaches session cookies to every request and transparently
// recovers from an expired session: the first 401 on an authenticated
// endpoint triggers a single refresh call shared by all concurrent callers,
// after which each failed request is replayed exactly once. Unrecoverable
// auth failures emit lifecycle events on the configured bus.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/team-insight/insight-cli/internal/events"
)

const (
	// DefaultTimeout is the fixed per-request timeout
	DefaultTimeout = 30 * time.Second

	// RefreshPath is the endpoint used exclusively for session recovery
	RefreshPath = "/api/v1/auth/refresh"

	// IdentityPath is the "who am I" probe used to hydrate identity state
	IdentityPath = "/api/v1/auth/me"
)

// defaultPublicPrefixes lists endpoints reachable without a session.
// A 401 from any of these never triggers refresh, queueing, or events.
var defaultPublicPrefixes = []string{
	"/api/v1/auth/login",
	"/api/v1/auth/authorize",
	"/api/v1/auth/callback",
	"/api/v1/auth/token",
}

// CredentialStore persists session cookies across client lifetimes.
// SaveCookies is called after a successful refresh rotates the session.
type CredentialStore interface {
	Cookies() []*http.Cookie
	SaveCookies(cookies []*http.Cookie) error
}

// Client is an HTTP client for the Team Insight API
type Client struct {
	baseURL        *url.URL
	httpClient     *http.Client
	creds          CredentialStore
	bus            *events.Bus
	logger         zerolog.Logger
	onAuthRequired func()
	publicPrefixes []string

	gate refreshGate

	// publicContext marks the client as running from a public context
	// (pre-login commands), where an unauthenticated identity probe is an
	// expected state rather than a failure. Only mutated from the setup
	// path, before requests are issued.
	publicContext bool
}

// Option configures a Client
type Option func(*Client)

// WithLogger sets the logger used for request diagnostics
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithEventBus sets the bus that receives auth lifecycle events
func WithEventBus(bus *events.Bus) Option {
	return func(c *Client) { c.bus = bus }
}

// WithCredentialStore sets the store that seeds and persists session cookies
func WithCredentialStore(store CredentialStore) Option {
	return func(c *Client) { c.creds = store }
}

// WithTimeout overrides the default request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = timeout }
}

// WithAuthRequiredHook sets a callback invoked when the session becomes
// unrecoverable and the user must log in again. Not invoked in a public
// context.
func WithAuthRequiredHook(fn func()) Option {
	return func(c *Client) { c.onAuthRequired = fn }
}

// WithPublicContext marks the client as running from a public context
func WithPublicContext(public bool) Option {
	return func(c *Client) { c.publicContext = public }
}

// NewClient creates a new API client for the given base URL
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	c := &Client{
		baseURL: u,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			Jar:     jar,
		},
		bus:            events.NewBus(),
		logger:         zerolog.Nop(),
		publicPrefixes: defaultPublicPrefixes,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.creds != nil {
		jar.SetCookies(u, c.creds.Cookies())
	}

	return c, nil
}

// SetPublicContext toggles the public-context flag. Intended for setup code
// that probes identity before the user has logged in.
func (c *Client) SetPublicContext(public bool) {
	c.publicContext = public
}

// Events returns the bus carrying this client's lifecycle events
func (c *Client) Events() *events.Bus {
	return c.bus
}

// requestConfig describes one in-flight call. The retried flag lives on the
// config itself so that a replay of a replay is detectable without external
// bookkeeping.
type requestConfig struct {
	method  string
	path    string
	body    interface{}
	headers http.Header
	retried bool
}

// RequestOption configures a single request
type RequestOption func(*requestConfig)

// WithHeader sets an additional header on the request
func WithHeader(key, value string) RequestOption {
	return func(rc *requestConfig) {
		if rc.headers == nil {
			rc.headers = make(http.Header)
		}
		rc.headers.Set(key, value)
	}
}

// Request performs an HTTP request to the API. On success the response body
// is unmarshalled into result (when non-nil). Any non-2xx status yields an
// *APIError; transport failures are returned wrapped.
func (c *Client) Request(ctx context.Context, method, path string, body, result interface{}, opts ...RequestOption) error {
	rc := &requestConfig{method: method, path: path, body: body}
	for _, opt := range opts {
		opt(rc)
	}
	return c.do(ctx, rc, result)
}

// Get performs a GET request
func (c *Client) Get(ctx context.Context, path string, result interface{}, opts ...RequestOption) error {
	return c.Request(ctx, http.MethodGet, path, nil, result, opts...)
}

// Post performs a POST request
func (c *Client) Post(ctx context.Context, path string, body, result interface{}, opts ...RequestOption) error {
	return c.Request(ctx, http.MethodPost, path, body, result, opts...)
}

// Put performs a PUT request
func (c *Client) Put(ctx context.Context, path string, body, result interface{}, opts ...RequestOption) error {
	return c.Request(ctx, http.MethodPut, path, body, result, opts...)
}

// Patch performs a PATCH request
func (c *Client) Patch(ctx context.Context, path string, body, result interface{}, opts ...RequestOption) error {
	return c.Request(ctx, http.MethodPatch, path, body, result, opts...)
}

// Delete performs a DELETE request
func (c *Client) Delete(ctx context.Context, path string, result interface{}, opts ...RequestOption) error {
	return c.Request(ctx, http.MethodDelete, path, nil, result, opts...)
}

// do sends the request and applies the refresh protocol on a 401 response.
// Recovery is attempted at most once per original request.
func (c *Client) do(ctx context.Context, rc *requestConfig, result interface{}) error {
	statusCode, respBody, err := c.send(ctx, rc)
	if err != nil {
		// Transport failure (including timeout). Never subject to refresh.
		return err
	}

	if statusCode >= 200 && statusCode < 300 {
		if result != nil && len(respBody) > 0 {
			if err := json.Unmarshal(respBody, result); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}
		}
		return nil
	}

	if statusCode != http.StatusUnauthorized {
		return normalizeError(statusCode, respBody)
	}

	// The replay itself failed with 401; terminal for this request.
	if rc.retried {
		return normalizeError(statusCode, respBody)
	}

	// Public endpoints and the refresh endpoint itself never trigger
	// recovery. Checked before any refresh logic so a failing refresh call
	// cannot loop.
	if c.isPublicPath(rc.path) || strings.HasPrefix(rc.path, RefreshPath) {
		return normalizeError(statusCode, respBody)
	}

	// An identity probe from a public context: expected "no identity"
	// state. No events, no auth-required hook.
	if strings.HasPrefix(rc.path, IdentityPath) && c.publicContext {
		return ErrNotAuthenticated
	}

	if err := c.awaitRefresh(ctx); err != nil {
		return err
	}

	rc.retried = true
	return c.do(ctx, rc, result)
}

// awaitRefresh joins or initiates the shared refresh. The initiator performs
// the refresh call and, on failure, emits token-refresh-failed then logout
// exactly once; waiters simply adopt the outcome.
func (c *Client) awaitRefresh(ctx context.Context) error {
	return c.gate.run(ctx, func(ctx context.Context) error {
		err := c.refresh(ctx)
		if err == nil {
			return nil
		}

		c.logger.Debug().Err(err).Msg("session refresh failed")
		c.bus.Emit(events.TokenRefreshFailed)
		c.bus.Emit(events.Logout)
		if c.onAuthRequired != nil && !c.publicContext {
			c.onAuthRequired()
		}
		return err
	})
}

// refresh exchanges the expired session for a renewed one. The server
// rotates the session cookies via Set-Cookie; the jar picks them up and the
// renewed values are persisted through the credential store.
func (c *Client) refresh(ctx context.Context) error {
	refreshURL := c.baseURL.String() + RefreshPath

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, refreshURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create refresh request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("refresh request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read refresh response: %w", err)
	}

	c.logger.Debug().
		Str("method", http.MethodPost).
		Str("path", RefreshPath).
		Int("status", resp.StatusCode).
		Msg("api request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return normalizeError(resp.StatusCode, respBody)
	}

	if c.creds != nil {
		if err := c.creds.SaveCookies(c.httpClient.Jar.Cookies(c.baseURL)); err != nil {
			c.logger.Warn().Err(err).Msg("failed to persist refreshed session")
		}
	}

	return nil
}

// send performs one wire round trip and returns the status and raw body
func (c *Client) send(ctx context.Context, rc *requestConfig) (int, []byte, error) {
	// Paths may carry a query string, so plain concatenation rather than
	// URL path joining.
	reqURL := c.baseURL.String() + rc.path

	var bodyReader io.Reader
	if rc.body != nil {
		jsonBody, err := json.Marshal(rc.body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, rc.method, reqURL, bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	for key, values := range rc.headers {
		for _, value := range values {
			req.Header.Set(key, value)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug().
		Str("method", rc.method).
		Str("path", rc.path).
		Str("request_id", req.Header.Get("X-Request-Id")).
		Int("status", resp.StatusCode).
		Bool("retried", rc.retried).
		Msg("api request")

	return resp.StatusCode, respBody, nil
}

// isPublicPath reports whether the path targets a publicly accessible
// endpoint, by prefix match against the exclusion list.
func (c *Client) isPublicPath(path string) bool {
	for _, prefix := range c.publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
