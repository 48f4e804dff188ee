// Package config loads the bookmark configuration with viper.
package config

// Config is the whole configuration file.
type Config struct {
	Server          ServerConfig          `mapstructure:"server" toml:"server" json:"server"`
	Database        DatabaseConfig        `mapstructure:"database" toml:"database" json:"database"`
	Logging         LoggingConfig         `mapstructure:"logging" toml:"logging" json:"logging"`
	Notification    NotificationConfig    `mapstructure:"notification" toml:"notification" json:"notification"`
	Search          SearchConfig          `mapstructure:"search" toml:"search" json:"search"`
	Recommendations RecommendationsConfig `mapstructure:"recommendations" toml:"recommendations" json:"recommendations"`
	Page            PageConfig            `mapstructure:"page" toml:"page" json:"page"`
	Metrics         MetricsConfig         `mapstructure:"metrics" toml:"metrics" json:"metrics"`
}

// ServerConfig points at the backend real-time endpoint.
type ServerConfig struct {
	// URL of the websocket endpoint, ws:// or wss://
	URL                string `mapstructure:"url" toml:"url" json:"url" jsonschema:"description=Websocket endpoint of the backend (ws:// or wss://)"`
	HandshakeTimeoutMs int    `mapstructure:"handshake_timeout_ms" toml:"handshake_timeout_ms" json:"handshake_timeout_ms" jsonschema:"minimum=1"`
	// Identical pushes arriving within this window are dropped. 0, the default, keeps them all.
	DedupeWindowMs     int    `mapstructure:"dedupe_window_ms" toml:"dedupe_window_ms" json:"dedupe_window_ms" jsonschema:"minimum=0"`
}

// DatabaseConfig locates the local store.
type DatabaseConfig struct {
	// Path of the sqlite file. Empty means $XDG_DATA_HOME/bookmark/bookmark.sqlite.
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// LoggingConfig configures zerolog.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// NotificationConfig configures toasts.
type NotificationConfig struct {
	DurationMs int `mapstructure:"duration_ms" toml:"duration_ms" json:"duration_ms" jsonschema:"minimum=1"`
}

// SearchConfig configures the search flow.
type SearchConfig struct {
	// ResultsPath is used by search_done pushes that carry no URL.
	ResultsPath  string `mapstructure:"results_path" toml:"results_path" json:"results_path"`
	DefaultError string `mapstructure:"default_error" toml:"default_error" json:"default_error"`
}

// RecommendationsConfig configures AI recommendation requests.
type RecommendationsConfig struct {
	HistoryLimit int `mapstructure:"history_limit" toml:"history_limit" json:"history_limit" jsonschema:"minimum=1,maximum=50"`
}

// PageConfig configures book page fetching.
type PageConfig struct {
	CacheSize int    `mapstructure:"cache_size" toml:"cache_size" json:"cache_size" jsonschema:"minimum=1"`
	UserAgent string `mapstructure:"user_agent" toml:"user_agent" json:"user_agent"`
	TimeoutMs int    `mapstructure:"timeout_ms" toml:"timeout_ms" json:"timeout_ms" jsonschema:"minimum=1"`
}

// MetricsConfig exposes prometheus metrics. An empty Addr disables the endpoint.
type MetricsConfig struct {
	Addr string `mapstructure:"addr" toml:"addr" json:"addr" jsonschema:"description=Listen address of the /metrics endpoint; empty disables it"`
}
