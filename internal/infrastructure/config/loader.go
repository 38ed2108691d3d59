package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/twinview/internal/domain/entity"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	dir       string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager rooted at the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerInDir(configDir)
}

// NewManagerInDir creates a configuration manager reading config.toml from dir.
func NewManagerInDir(dir string) (*Manager, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)

	// TWINVIEW_NOTIFIER_MODE, TWINVIEW_WEBVIEW_USER_AGENT, ...
	v.SetEnvPrefix("TWINVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "TWINVIEW_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind TWINVIEW_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "TWINVIEW_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind TWINVIEW_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper: v,
		dir:   dir,
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default config file and its JSON schema are written on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", m.dir, err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
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
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.ConfigFile(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf("failed to create default config at %s: %w\nTry creating the directory manually or check permissions", m.dir, createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.ConfigFile(),
			err,
		)
	}
	return config, nil
}

func (m *Manager) createDefaultConfig() error {
	path := filepath.Join(m.dir, configFileName)
	if err := WriteConfig(DefaultConfig(), path); err != nil {
		return err
	}
	if err := GenerateSchemaFile(m.dir); err != nil {
		return err
	}
	return nil
}

// normalizeConfig folds case and replaces unknown enum values with defaults.
func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}

	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = defaultLogFormat
	}

	switch entity.NotifierMode(strings.ToLower(strings.TrimSpace(string(config.Notifier.Mode)))) {
	case entity.NotifierPoll:
		config.Notifier.Mode = entity.NotifierPoll
	default:
		config.Notifier.Mode = entity.NotifierHook
	}

	if config.Notifier.PollIntervalMs == 0 {
		config.Notifier.PollIntervalMs = defaultPollIntervalMs
	}
	config.WebView.UserAgent = strings.TrimSpace(config.WebView.UserAgent)
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

// ConfigFile returns the path to the configuration file.
func (m *Manager) ConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.dir, configFileName)
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("notifier.mode", string(defaults.Notifier.Mode))
	m.viper.SetDefault("notifier.poll_interval_ms", defaults.Notifier.PollIntervalMs)
	m.viper.SetDefault("notifier.proactive", defaults.Notifier.Proactive)

	m.viper.SetDefault("webview.enable_javascript", defaults.WebView.EnableJavaScript)
	m.viper.SetDefault("webview.developer_extras", defaults.WebView.DeveloperExtras)
	m.viper.SetDefault("webview.hardware_acceleration", defaults.WebView.HardwareAcceleration)
	m.viper.SetDefault("webview.user_agent", defaults.WebView.UserAgent)
}
