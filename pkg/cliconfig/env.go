package cliconfig

import (
	"os"
	"strconv"
	"strings"
)

// Environment variable names
const (
	EnvURL       = "APIMCTL_URL"
	EnvUsername  = "APIMCTL_USERNAME"
	EnvPassword  = "APIMCTL_PASSWORD"
	EnvTimeout   = "APIMCTL_TIMEOUT"
	EnvSilent    = "APIMCTL_SILENT"
	EnvLogLevel  = "APIMCTL_LOG_LEVEL"
	EnvLogFormat = "APIMCTL_LOG_FORMAT"
	EnvLogFile   = "APIMCTL_LOG_FILE"
)

// LoadEnvConfig loads configuration from environment variables.
// It only sets values that are present in the environment.
func LoadEnvConfig(cfg *CLIConfig) {
	env := &CLIConfig{
		URL:       os.Getenv(EnvURL),
		Username:  os.Getenv(EnvUsername),
		Password:  os.Getenv(EnvPassword),
		LogLevel:  os.Getenv(EnvLogLevel),
		LogFormat: os.Getenv(EnvLogFormat),
		LogFile:   os.Getenv(EnvLogFile),
		SetFields: make(map[string]bool),
	}

	// APIMCTL_TIMEOUT, ignored unless it is an integer
	if v := os.Getenv(EnvTimeout); v != "" {
		if timeout, err := strconv.Atoi(v); err == nil {
			env.Timeout = timeout
		}
	}

	// APIMCTL_SILENT
	if v, ok := os.LookupEnv(EnvSilent); ok && v != "" {
		env.Silent = parseBool(v)
		env.SetFields["silent"] = true
	}

	MergeConfig(cfg, env, SourceEnv)
}

func parseBool(v string) bool {
	switch strings.ToLower(v) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}
