package config

import "github.com/bnema/twinview/internal/domain/entity"

// Default configuration constants
const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"

	defaultPollIntervalMs = 500 // milliseconds
	minPollIntervalMs     = 50
	maxPollIntervalMs     = 10000
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Notifier: NotifierConfig{
			Mode:           entity.NotifierHook,
			PollIntervalMs: defaultPollIntervalMs,
			Proactive:      false,
		},
		WebView: WebViewConfig{
			EnableJavaScript:     true,
			DeveloperExtras:      false,
			HardwareAcceleration: true,
		},
	}
}
