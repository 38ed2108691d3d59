// Package config provides configuration management for twinview with Viper integration.
package config

import (
	"time"

	"github.com/bnema/twinview/internal/domain/entity"
)

// File permission constants
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Config represents the complete configuration for twinview.
// Panel geometry and the content panel's initial page are fixed and
// intentionally absent.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging" jsonschema:"title=Logging"`
	Notifier NotifierConfig `mapstructure:"notifier" toml:"notifier" json:"notifier" jsonschema:"title=Change notifier"`
	WebView  WebViewConfig  `mapstructure:"webview" toml:"webview" json:"webview" jsonschema:"title=WebView"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
}

// NotifierConfig selects how content-panel navigations are detected.
type NotifierConfig struct {
	// Mode is "hook" (native navigation policy signal) or "poll" (injected watcher script).
	Mode entity.NotifierMode `mapstructure:"mode" toml:"mode" json:"mode" jsonschema:"enum=hook,enum=poll,default=hook"`
	// PollIntervalMs is the watcher sampling period in poll mode.
	PollIntervalMs int `mapstructure:"poll_interval_ms" toml:"poll_interval_ms" json:"poll_interval_ms" jsonschema:"minimum=50,maximum=10000,default=500"`
	// Proactive reports a navigation right after navigate_webviews succeeds, in poll mode.
	Proactive bool `mapstructure:"proactive" toml:"proactive" json:"proactive" jsonschema:"default=false"`
}

// PollInterval returns PollIntervalMs as a duration.
func (n NotifierConfig) PollInterval() time.Duration {
	return time.Duration(n.PollIntervalMs) * time.Millisecond
}

// ProactiveEnabled reports whether navigate_webviews should notify directly.
func (n NotifierConfig) ProactiveEnabled() bool {
	return n.Mode == entity.NotifierPoll && n.Proactive
}

// WebViewConfig holds settings applied to both panels' webviews.
type WebViewConfig struct {
	EnableJavaScript     bool   `mapstructure:"enable_javascript" toml:"enable_javascript" json:"enable_javascript" jsonschema:"default=true"`
	DeveloperExtras      bool   `mapstructure:"developer_extras" toml:"developer_extras" json:"developer_extras" jsonschema:"default=false"`
	HardwareAcceleration bool   `mapstructure:"hardware_acceleration" toml:"hardware_acceleration" json:"hardware_acceleration" jsonschema:"default=true"`
	UserAgent            string `mapstructure:"user_agent" toml:"user_agent" json:"user_agent,omitempty" jsonschema:"description=Empty keeps the WebKit default"`
}
