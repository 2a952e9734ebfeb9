package config_test

import (
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/team-insight/insight-cli/internal/config"
)

func newTestManager(t *testing.T) *config.Manager {
	t.Helper()
	return config.NewManagerWithPath(filepath.Join(t.TempDir(), "config.json"))
}

func TestManager_LoadReturnsDefaultsWhenMissing(t *testing.T) {
	m := newTestManager(t)

	cfg, err := m.Load()
	require.NoError(t, err)
	require.Equal(t, config.DefaultAPIURL, cfg.APIURL)
	require.Empty(t, cfg.SessionToken)
	require.False(t, m.IsLoggedIn())
}

func TestManager_SaveSessionRoundTrip(t *testing.T) {
	m := newTestManager(t)

	err := m.SaveSession("session-abc", "refresh-xyz", 3600)
	require.NoError(t, err)

	cfg, err := m.Load()
	require.NoError(t, err)
	require.Equal(t, "session-abc", cfg.SessionToken)
	require.Equal(t, "refresh-xyz", cfg.RefreshToken)
	require.WithinDuration(t, time.Now().Add(time.Hour), cfg.ExpiresAt, time.Minute)
	require.True(t, m.IsLoggedIn())
}

func TestManager_Clear(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.SaveSession("session-abc", "refresh-xyz", 3600))
	require.NoError(t, m.Clear())

	cfg, err := m.Load()
	require.NoError(t, err)
	require.Empty(t, cfg.SessionToken)
	require.Empty(t, cfg.RefreshToken)
	require.True(t, cfg.ExpiresAt.IsZero())
	require.False(t, m.IsLoggedIn())
}

func TestManager_APIURLEnvOverride(t *testing.T) {
	m := newTestManager(t)

	t.Setenv("INSIGHT_API_URL", "http://localhost:9999")

	apiURL, err := m.GetAPIURL()
	require.NoError(t, err)
	require.Equal(t, "http://localhost:9999", apiURL)
}

func TestManager_TimeoutEnvOverride(t *testing.T) {
	m := newTestManager(t)

	require.Zero(t, m.GetTimeout())

	t.Setenv("INSIGHT_TIMEOUT", "5")
	require.Equal(t, 5*time.Second, m.GetTimeout())

	t.Setenv("INSIGHT_TIMEOUT", "not-a-number")
	require.Zero(t, m.GetTimeout())
}

func TestManager_CookiesRoundTrip(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.SaveSession("session-abc", "refresh-xyz", 0))

	cookies := m.Cookies()
	require.Len(t, cookies, 2)

	values := map[string]string{}
	for _, cookie := range cookies {
		values[cookie.Name] = cookie.Value
	}
	require.Equal(t, "session-abc", values[config.SessionCookieName])
	require.Equal(t, "refresh-xyz", values[config.RefreshCookieName])
}

func TestManager_SaveCookiesPersistsSessionPair(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.SaveSession("old-session", "old-refresh", 0))

	err := m.SaveCookies([]*http.Cookie{
		{Name: config.SessionCookieName, Value: "new-session"},
		{Name: "unrelated", Value: "ignored"},
	})
	require.NoError(t, err)

	cfg, err := m.Load()
	require.NoError(t, err)
	require.Equal(t, "new-session", cfg.SessionToken)
	require.Equal(t, "old-refresh", cfg.RefreshToken, "cookies outside the session pair are ignored")
}

func TestManager_CookiesEmptyWhenLoggedOut(t *testing.T) {
	m := newTestManager(t)

	require.Empty(t, m.Cookies())
}
