package config

import (
	"os"
	"path/filepath"
)

const (
	appName        = "twinview"
	configFileName = "config.toml"
	schemaFileName = "config.schema.json"
)

// GetConfigDir returns the config directory for twinview:
// $XDG_CONFIG_HOME/twinview (default ~/.config/twinview).
// With ENV=dev it is ./.dev/twinview in the working directory.
func GetConfigDir() (string, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return filepath.Join(cwd, ".dev", appName), nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, appName), nil
}

// GetConfigFile returns the path of the TOML config file.
func GetConfigFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}
