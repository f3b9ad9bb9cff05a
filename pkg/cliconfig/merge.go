package cliconfig

// MergeConfig merges source config into target, updating sources tracking.
// Only non-zero values from source are applied.
func MergeConfig(target, source *CLIConfig, sourceType string) {
	if source == nil {
		return
	}
	if target.Sources == nil {
		target.Sources = make(map[string]string)
	}

	mergeString(target, &target.URL, source.URL, "url", sourceType)
	mergeString(target, &target.Username, source.Username, "username", sourceType)
	mergeString(target, &target.Password, source.Password, "password", sourceType)
	mergeString(target, &target.LogLevel, source.LogLevel, "logLevel", sourceType)
	mergeString(target, &target.LogFormat, source.LogFormat, "logFormat", sourceType)
	mergeString(target, &target.LogFile, source.LogFile, "logFile", sourceType)

	if source.Timeout != 0 {
		target.Timeout = source.Timeout
		target.Sources["timeout"] = sourceType
	}

	// For booleans, checking `if source.X` cannot detect an explicit false.
	// SetFields (populated by file, env and flag loading) says whether the
	// key was present; without it only true values are merged.
	if boolIsSet(source, "silent") {
		target.Silent = source.Silent
		target.Sources["silent"] = sourceType
	}
	if boolIsSet(source, "json") {
		target.JSON = source.JSON
		target.Sources["json"] = sourceType
	}
}

func mergeString(target *CLIConfig, dst *string, value, key, sourceType string) {
	if value == "" {
		return
	}
	*dst = value
	target.Sources[key] = sourceType
}

// boolIsSet reports whether a boolean field identified by its YAML key was
// explicitly set in the source config.
func boolIsSet(cfg *CLIConfig, yamlKey string) bool {
	if cfg.SetFields != nil {
		return cfg.SetFields[yamlKey]
	}
	switch yamlKey {
	case "silent":
		return cfg.Silent
	case "json":
		return cfg.JSON
	}
	return false
}
