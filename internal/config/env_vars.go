package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	appNameVar   = "APP_NAME"
	dataDirVar   = "GASTOMETRO_DATA_DIR"
	logLevelVar  = "GASTOMETRO_LOG_LEVEL"
	envVar       = "ENV"
	sessionFile  = "session.json"
	defaultLevel = "warn"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Gastometro")
}

// GetDataFolder returns the folder holding the persisted session. Defaults to
// ~/.gastometro, or ./data when the home directory cannot be resolved.
func (EnvVars) GetDataFolder() string {
	if dir := os.Getenv(dataDirVar); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "./data"
	}
	return filepath.Join(home, ".gastometro")
}

func (e EnvVars) GetSessionFile() string {
	return filepath.Join(e.GetDataFolder(), sessionFile)
}

func (e EnvVars) GetLogLevel() string {
	if level := os.Getenv(logLevelVar); level != "" {
		return strings.ToLower(level)
	}
	if e.GetEnv() == "DEV" {
		return "debug"
	}
	return defaultLevel
}

func (EnvVars) GetEnv() string {
	return GetEnv(envVar, "PROD")
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
