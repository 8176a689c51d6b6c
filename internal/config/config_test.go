package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")

	cfg := Load("")
	require.Equal(t, ":8080", cfg.Addr())
	require.Equal(t, 50, cfg.NotificationCap)
	require.Equal(t, 3*time.Second, cfg.FlagClearDelay)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.True(t, cfg.AlertsEnabled)
	require.Empty(t, cfg.BackendURL)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BACKEND_URL", "http://backend:8081/")
	t.Setenv("NOTIFICATION_CAP", "-3")
	t.Setenv("FLAG_CLEAR_DELAY", "1500ms")

	cfg := Load("")
	require.Equal(t, ":9090", cfg.Addr())
	require.Equal(t, "http://backend:8081", cfg.BackendURL)
	require.Equal(t, 50, cfg.NotificationCap, "non-positive cap falls back to default")
	require.Equal(t, 1500*time.Millisecond, cfg.FlagClearDelay)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "client.yaml")
	require.NoError(t, os.WriteFile(path, []byte("PUSH_URL: ws://push:9000/ws\nNOTIFICATION_CAP: 20\n"), 0o600))

	cfg := Load(path)
	require.Equal(t, "ws://push:9000/ws", cfg.PushURL)
	require.Equal(t, 20, cfg.NotificationCap)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NotNil(t, cfg)
	require.Equal(t, "/wallet/charge", cfg.FundingURL)
}
