package config

import (
	"os"
	"strings"
)

const (
	EnvName     = "CAMPUS_ENV"
	EnvRoster   = "CAMPUS_ROSTER"
	EnvLogLevel = "CAMPUS_LOG_LEVEL"
)

// Settings are the process-level knobs read from the environment.
type Settings struct {
	Env        string
	RosterPath string
	LogLevel   string
}

// LoadFromEnv reads Settings from the environment, applying defaults.
func LoadFromEnv() Settings {
	return Settings{
		Env:        getenv(EnvName, "local"),
		RosterPath: strings.TrimSpace(os.Getenv(EnvRoster)),
		LogLevel:   getenv(EnvLogLevel, "info"),
	}
}

// Roster loads the roster named by RosterPath, or the embedded default when unset.
func (s Settings) Roster() (Roster, error) {
	if s.RosterPath == "" {
		return DefaultRoster()
	}
	return LoadRoster(s.RosterPath)
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
