package cliconfig

// DefaultURL is the Management API of a local installation.
const DefaultURL = "http://localhost:8083/management"

// DefaultTimeout is the default HTTP timeout in seconds.
const DefaultTimeout = 30

// DefaultLogLevel keeps diagnostic logs quiet unless something goes wrong.
const DefaultLogLevel = "warn"

// DefaultLogFormat is the default diagnostic log format.
const DefaultLogFormat = "text"

// NewDefault creates a new CLIConfig with default values.
func NewDefault() *CLIConfig {
	cfg := &CLIConfig{
		URL:       DefaultURL,
		Timeout:   DefaultTimeout,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Sources:   make(map[string]string),
	}

	// Mark all as default source
	for _, key := range []string{"url", "timeout", "logLevel", "logFormat", "silent", "json"} {
		cfg.Sources[key] = SourceDefault
	}

	return cfg
}
