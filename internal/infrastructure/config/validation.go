package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validateConfig collects every problem before failing.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateServer(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateNotification(config)...)
	validationErrors = append(validationErrors, validateSearch(config)...)
	validationErrors = append(validationErrors, validateRecommendations(config)...)
	validationErrors = append(validationErrors, validatePage(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateServer(config *Config) []string {
	var validationErrors []string
	u, err := url.Parse(config.Server.URL)
	switch {
	case config.Server.URL == "":
		validationErrors = append(validationErrors, "server.url must not be empty")
	case err != nil:
		validationErrors = append(validationErrors, fmt.Sprintf("server.url is not a valid URL: %v", err))
	case u.Scheme != "ws" && u.Scheme != "wss":
		validationErrors = append(validationErrors, "server.url must use the ws or wss scheme")
	case u.Host == "":
		validationErrors = append(validationErrors, "server.url must include a host")
	}
	if config.Server.HandshakeTimeoutMs <= 0 {
		validationErrors = append(validationErrors, "server.handshake_timeout_ms must be positive")
	}
	if config.Server.DedupeWindowMs < 0 {
		validationErrors = append(validationErrors, "server.dedupe_window_ms must not be negative")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, disabled (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	return validationErrors
}

func validateNotification(config *Config) []string {
	if config.Notification.DurationMs <= 0 {
		return []string{"notification.duration_ms must be positive"}
	}
	return nil
}

func validateSearch(config *Config) []string {
	if !strings.HasPrefix(config.Search.ResultsPath, "/") && !strings.Contains(config.Search.ResultsPath, "://") {
		return []string{"search.results_path must be an absolute path or URL"}
	}
	return nil
}

func validateRecommendations(config *Config) []string {
	if config.Recommendations.HistoryLimit < 1 || config.Recommendations.HistoryLimit > 50 {
		return []string{"recommendations.history_limit must be between 1 and 50"}
	}
	return nil
}

func validatePage(config *Config) []string {
	var validationErrors []string
	if config.Page.CacheSize < 1 {
		validationErrors = append(validationErrors, "page.cache_size must be positive")
	}
	if config.Page.TimeoutMs < 1 {
		validationErrors = append(validationErrors, "page.timeout_ms must be positive")
	}
	return validationErrors
}
