// Package cliconfig provides configuration types and loading for the apimctl CLI.
package cliconfig

// CLIConfig represents the complete configuration for the apimctl CLI.
// Configuration values can come from multiple sources with the following precedence:
// 1. Command-line flags (highest priority)
// 2. Environment variables
// 3. Local config file (.apimctlrc.yaml in current directory)
// 4. Global config file (~/.config/apimctl/config.yaml)
// 5. Default values (lowest priority)
type CLIConfig struct {
	// Management API connection
	URL      string `yaml:"url" json:"url"`
	Username string `yaml:"username,omitempty" json:"username,omitempty"`
	Password string `yaml:"password,omitempty" json:"-"`
	Timeout  int    `yaml:"timeout" json:"timeout"`

	// Logging settings
	LogLevel  string `yaml:"logLevel" json:"logLevel"`
	LogFormat string `yaml:"logFormat" json:"logFormat"`
	LogFile   string `yaml:"logFile,omitempty" json:"logFile,omitempty"`

	// Output settings
	Silent bool `yaml:"silent" json:"silent"`
	JSON   bool `yaml:"json" json:"json"`

	// Sources tracks where each value came from (for debugging)
	Sources map[string]string `yaml:"-" json:"-"`

	// SetFields records the keys explicitly present in the source, so an
	// explicit false can override an earlier true.
	SetFields map[string]bool `yaml:"-" json:"-"`
}

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceEnv     = "env"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceFlag    = "flag"
)
