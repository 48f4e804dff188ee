package config

import (
	"github.com/bnema/bookmark/internal/app/control"
	"github.com/bnema/bookmark/internal/app/messaging"
	"github.com/bnema/bookmark/internal/application/port"
	"github.com/bnema/bookmark/internal/domain/entity"
	"github.com/bnema/bookmark/internal/infrastructure/page"
)

const (
	defaultServerURL          = "ws://localhost:5000/ws"
	defaultHandshakeTimeoutMs = 10000
	defaultPageTimeoutMs      = 15000
)

// DefaultConfig returns the configuration used when the file sets nothing.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			URL:                defaultServerURL,
			HandshakeTimeoutMs: defaultHandshakeTimeoutMs,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Notification: NotificationConfig{
			DurationMs: port.DefaultNotificationDurationMs,
		},
		Search: SearchConfig{
			ResultsPath:  messaging.DefaultResultsPath,
			DefaultError: control.DefaultSearchError,
		},
		Recommendations: RecommendationsConfig{
			HistoryLimit: entity.DefaultRecentSearches,
		},
		Page: PageConfig{
			CacheSize: page.DefaultCacheSize,
			UserAgent: page.DefaultUserAgent,
			TimeoutMs: defaultPageTimeoutMs,
		},
	}
}
