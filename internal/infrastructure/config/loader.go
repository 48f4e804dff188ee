package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/bookmark/internal/logging"
)

// EnvPrefix prefixes every environment override, e.g. BOOKMARK_SERVER_URL.
const EnvPrefix = "BOOKMARK"

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	created   bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// BOOKMARK_SERVER_URL, BOOKMARK_DATABASE_PATH, ...
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short names shared with logging.NewFromEnv.
	if err := v.BindEnv("logging.level", "BOOKMARK_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind BOOKMARK_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "BOOKMARK_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind BOOKMARK_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default file is written on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if err := m.createDefaultConfig(); err != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf("failed to create default config at %s: %w\nTry creating the directory manually or check permissions", configDir, err)
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read newly created config file: %w", err)
	}
	return nil
}

// decode unmarshals, fills derived values, normalizes and validates.
func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	if err := ensureDatabasePath(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	defaults := DefaultConfig()

	config.Server.URL = strings.TrimSpace(config.Server.URL)
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Level == "warning" {
		config.Logging.Level = "warn"
	}

	config.Search.ResultsPath = strings.TrimSpace(config.Search.ResultsPath)
	if config.Search.ResultsPath == "" {
		config.Search.ResultsPath = defaults.Search.ResultsPath
	}
	if strings.TrimSpace(config.Search.DefaultError) == "" {
		config.Search.DefaultError = defaults.Search.DefaultError
	}
	if strings.TrimSpace(config.Page.UserAgent) == "" {
		config.Page.UserAgent = defaults.Page.UserAgent
	}
	config.Metrics.Addr = strings.TrimSpace(config.Metrics.Addr)
}

// Get returns a copy of the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// Created reports whether Load wrote a default file.
func (m *Manager) Created() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.created
}

func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	m.created = true

	log := logging.NewFromEnv()
	log.Info().Str("path", configFile).Msg("created default configuration file")
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// database.path is derived in Load so the written file stays portable.
	m.viper.SetDefault("server.url", defaults.Server.URL)
	m.viper.SetDefault("server.handshake_timeout_ms", defaults.Server.HandshakeTimeoutMs)
	m.viper.SetDefault("server.dedupe_window_ms", defaults.Server.DedupeWindowMs)
	m.viper.SetDefault("database.path", "")

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("notification.duration_ms", defaults.Notification.DurationMs)

	m.viper.SetDefault("search.results_path", defaults.Search.ResultsPath)
	m.viper.SetDefault("search.default_error", defaults.Search.DefaultError)
	m.viper.SetDefault("recommendations.history_limit", defaults.Recommendations.HistoryLimit)

	m.viper.SetDefault("page.cache_size", defaults.Page.CacheSize)
	m.viper.SetDefault("page.user_agent", defaults.Page.UserAgent)
	m.viper.SetDefault("page.timeout_ms", defaults.Page.TimeoutMs)

	m.viper.SetDefault("metrics.addr", defaults.Metrics.Addr)
}
