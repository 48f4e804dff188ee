package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	return root
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 2000, cfg.Notification.DurationMs)
	assert.Equal(t, "/results", cfg.Search.ResultsPath)
	assert.Equal(t, 5, cfg.Recommendations.HistoryLimit)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NoError(t, validateConfig(withDB(cfg)))
}

func withDB(cfg *Config) *Config {
	cfg.Database.Path = "/tmp/bookmark.sqlite"
	return cfg
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "ws://localhost:5000/ws", mgr.viper.GetString("server.url"))
	assert.Equal(t, 2000, mgr.viper.GetInt("notification.duration_ms"))
	assert.Equal(t, 5, mgr.viper.GetInt("recommendations.history_limit"))
	assert.Zero(t, mgr.viper.GetInt("server.dedupe_window_ms"), "identical pushes are delivered unless opted in")
}

func TestManager_LoadCreatesDefaultFile(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.True(t, mgr.Created())
	assert.FileExists(t, filepath.Join(root, "config", "bookmark", "config.toml"))

	cfg := mgr.Get()
	assert.Equal(t, filepath.Join(root, "data", "bookmark", "bookmark.sqlite"), cfg.Database.Path)
	assert.Equal(t, "/results", cfg.Search.ResultsPath)
}

func TestManager_LoadReadsFileAndEnv(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "config", "bookmark")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[server]
url = "wss://books.example/ws"

[recommendations]
history_limit = 3

[logging]
level = "WARNING"
`), 0o644))
	t.Setenv("BOOKMARK_NOTIFICATION_DURATION_MS", "500")
	t.Setenv("BOOKMARK_LOG_FORMAT", "json")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	assert.False(t, mgr.Created())

	cfg := mgr.Get()
	assert.Equal(t, "wss://books.example/ws", cfg.Server.URL)
	assert.Equal(t, 3, cfg.Recommendations.HistoryLimit)
	assert.Equal(t, 500, cfg.Notification.DurationMs)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestManager_LoadRejectsInvalidValues(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "config", "bookmark")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[server]
url = "http://books.example"

[page]
cache_size = 0
`), 0o644))

	mgr, err := NewManager()
	require.NoError(t, err)
	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.url must use the ws or wss scheme")
	assert.Contains(t, err.Error(), "page.cache_size must be positive")
}

func TestManager_ReloadNotifiesCallbacks(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var got *Config
	mgr.OnConfigChange(func(c *Config) { got = c })

	path := filepath.Join(root, "config", "bookmark", "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[notification]\nduration_ms = 4000\n"), 0o644))
	require.NoError(t, mgr.Reload())

	require.NotNil(t, got)
	assert.Equal(t, 4000, got.Notification.DurationMs)
	assert.Equal(t, 4000, mgr.Get().Notification.DurationMs)
}

func TestManager_InvalidReloadKeepsPreviousConfig(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	path := filepath.Join(root, "config", "bookmark", "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[notification]\nduration_ms = -1\n"), 0o644))
	assert.Error(t, mgr.Reload())
	assert.Equal(t, 2000, mgr.Get().Notification.DurationMs)
}

func TestValidateConfig_AggregatesErrors(t *testing.T) {
	cfg := withDB(DefaultConfig())
	cfg.Logging.Level = "loud"
	cfg.Logging.Format = "xml"
	cfg.Recommendations.HistoryLimit = 0

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "logging.format")
	assert.Contains(t, err.Error(), "recommendations.history_limit")
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Bookmark Configuration", doc["title"])

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{"server", "database", "logging", "notification", "search", "recommendations", "page", "metrics"} {
		assert.Contains(t, props, key)
	}
}
