package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validateConfig checks every section and reports all problems at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateNotifier(config)...)
	validationErrors = append(validationErrors, validateWebView(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	if !validLogLevels[config.Logging.Level] {
		return []string{fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level)}
	}
	return nil
}

func validateNotifier(config *Config) []string {
	ms := config.Notifier.PollIntervalMs
	if ms < minPollIntervalMs || ms > maxPollIntervalMs {
		return []string{fmt.Sprintf("notifier.poll_interval_ms must be between %d and %d (got %d)", minPollIntervalMs, maxPollIntervalMs, ms)}
	}
	return nil
}

func validateWebView(config *Config) []string {
	if strings.ContainsAny(config.WebView.UserAgent, "\r\n") {
		return []string{"webview.user_agent must be a single line"}
	}
	return nil
}
