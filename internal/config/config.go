package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config interface {
	EnvConfig
	APIConfig
	DashboardConfig
}

type EnvConfig interface {
	GetAppName() string
	GetDataFolder() string
	GetSessionFile() string
	GetLogLevel() string
	GetEnv() string
}

type APIConfig interface {
	GetAPIBaseURL() string
}

type mainConfig struct {
	EnvVars
	API
	Dashboard
}

// New returns the environment backed configuration. Values from the given dotenv
// files (".env" when none are given) are loaded first; variables already present in
// the environment win.
func New(envFiles ...string) Config {
	LoadDotEnv(envFiles...)
	return mainConfig{}
}

// LoadDotEnv loads dotenv files into the process environment. Missing files are ignored.
func LoadDotEnv(envFiles ...string) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Str("file", f).Msg("failed to load env file")
		}
	}
}
