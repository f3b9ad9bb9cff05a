package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCLIConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  CLIConfig
		wantErr string
	}{
		{
			name:    "valid defaults",
			config:  *NewDefault(),
			wantErr: "",
		},
		{
			name:    "https url",
			config:  CLIConfig{URL: "https://apim.example.com/management", Timeout: 10},
			wantErr: "",
		},
		{
			name:    "missing url",
			config:  CLIConfig{Timeout: 10},
			wantErr: "url is required",
		},
		{
			name:    "relative url",
			config:  CLIConfig{URL: "/management", Timeout: 10},
			wantErr: "must be an absolute http or https URL",
		},
		{
			name:    "unsupported scheme",
			config:  CLIConfig{URL: "ftp://host/management", Timeout: 10},
			wantErr: "must be an absolute http or https URL",
		},
		{
			name:    "timeout zero",
			config:  CLIConfig{URL: DefaultURL, Timeout: 0},
			wantErr: "timeout 0 is out of range",
		},
		{
			name:    "timeout too high",
			config:  CLIConfig{URL: DefaultURL, Timeout: 9999},
			wantErr: "timeout 9999 is out of range",
		},
		{
			name:    "bad log level",
			config:  CLIConfig{URL: DefaultURL, Timeout: 10, LogLevel: "trace"},
			wantErr: `logLevel "trace"`,
		},
		{
			name:    "bad log format",
			config:  CLIConfig{URL: DefaultURL, Timeout: 10, LogFormat: "yaml"},
			wantErr: `logFormat "yaml"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
			} else {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.wantErr)
				} else if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
				}
			}
		})
	}
}

func TestMergeConfig_BasicFields(t *testing.T) {
	t.Run("merges non-zero values", func(t *testing.T) {
		target := NewDefault()
		source := &CLIConfig{
			URL:      "http://apim:8083/management",
			Username: "admin",
			Timeout:  5,
		}

		MergeConfig(target, source, SourceLocal)

		if target.URL != "http://apim:8083/management" {
			t.Errorf("expected custom URL, got %q", target.URL)
		}
		if target.Timeout != 5 {
			t.Errorf("expected timeout 5, got %d", target.Timeout)
		}
		if target.Sources["url"] != SourceLocal || target.Sources["username"] != SourceLocal {
			t.Errorf("expected source 'local', got %v", target.Sources)
		}
	})

	t.Run("does not overwrite with zero values", func(t *testing.T) {
		target := NewDefault()

		MergeConfig(target, &CLIConfig{}, SourceLocal)

		if target.Timeout != DefaultTimeout || target.URL != DefaultURL {
			t.Errorf("expected defaults to survive, got %+v", target)
		}
		if target.Sources["url"] != SourceDefault {
			t.Errorf("expected url source 'default', got %q", target.Sources["url"])
		}
	})

	t.Run("handles boolean false with SetFields", func(t *testing.T) {
		target := NewDefault()
		target.Silent = true

		source := &CLIConfig{
			Silent:    false,
			SetFields: map[string]bool{"silent": true},
		}

		MergeConfig(target, source, SourceLocal)

		if target.Silent {
			t.Error("expected silent to be false after merge")
		}
	})

	t.Run("does not merge boolean false without SetFields", func(t *testing.T) {
		target := NewDefault()
		target.JSON = true

		MergeConfig(target, &CLIConfig{JSON: false}, SourceLocal)

		if !target.JSON {
			t.Error("expected json to remain true without SetFields")
		}
	})

	t.Run("nil source is no-op", func(t *testing.T) {
		target := NewDefault()

		MergeConfig(target, nil, SourceLocal)

		if target.URL != DefaultURL {
			t.Errorf("expected URL unchanged, got %q", target.URL)
		}
	})
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `url: https://apim.example.com/management
username: ops
timeout: 12
silent: false
logLevel: debug
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile() error = %v", err)
	}
	if cfg.URL != "https://apim.example.com/management" || cfg.Username != "ops" || cfg.Timeout != 12 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if !cfg.SetFields["silent"] {
		t.Error("expected silent to be recorded as set")
	}
	if cfg.SetFields["json"] {
		t.Error("json was not in the file")
	}
}

func TestLoadConfigFile_SyntaxErrorHasLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("url: http://x\ntimeout: [\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfigFile(path)
	ce, ok := err.(*ConfigError)
	if !ok {
		t.Fatalf("expected *ConfigError, got %T (%v)", err, err)
	}
	if ce.Path != path {
		t.Errorf("Path = %q, want %q", ce.Path, path)
	}
	if ce.Line == 0 {
		t.Errorf("expected a line number in %q", ce.Error())
	}
}

func TestLoadConfigFile_TypeError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("url: http://x\ntimeout: soon\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfigFile(path)
	ce, ok := err.(*ConfigError)
	if !ok {
		t.Fatalf("expected *ConfigError, got %T (%v)", err, err)
	}
	if ce.Line != 2 {
		t.Errorf("Line = %d, want 2 (%s)", ce.Line, ce.Error())
	}
	if !strings.Contains(ce.Error(), "(line 2)") {
		t.Errorf("Error() = %q", ce.Error())
	}
}

func TestLoadEnvConfig(t *testing.T) {
	t.Setenv(EnvURL, "http://env:8083/management")
	t.Setenv(EnvUsername, "env-user")
	t.Setenv(EnvPassword, "env-pass")
	t.Setenv(EnvTimeout, "7")
	t.Setenv(EnvSilent, "yes")
	t.Setenv(EnvLogLevel, "info")

	cfg := NewDefault()
	LoadEnvConfig(cfg)

	if cfg.URL != "http://env:8083/management" || cfg.Username != "env-user" || cfg.Password != "env-pass" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Timeout != 7 || !cfg.Silent || cfg.LogLevel != "info" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Sources["password"] != SourceEnv || cfg.Sources["silent"] != SourceEnv {
		t.Errorf("unexpected sources %v", cfg.Sources)
	}
}

func TestLoadEnvConfig_IgnoresBadTimeout(t *testing.T) {
	t.Setenv(EnvTimeout, "soon")

	cfg := NewDefault()
	LoadEnvConfig(cfg)

	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %d, want %d", cfg.Timeout, DefaultTimeout)
	}
}

func TestLoadAll_Precedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)
	t.Setenv(EnvURL, "")
	t.Setenv(EnvTimeout, "")
	t.Setenv(EnvUsername, "from-env")

	globalDir := filepath.Join(home, GlobalConfigDir)
	if err := os.MkdirAll(globalDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(globalDir, "config.yaml"),
		[]byte("url: http://global/management\nusername: global-user\ntimeout: 20\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	local := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(local, []byte("timeout: 40\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAll(local)
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if cfg.URL != "http://global/management" || cfg.Sources["url"] != SourceGlobal {
		t.Errorf("url = %q (%s)", cfg.URL, cfg.Sources["url"])
	}
	if cfg.Timeout != 40 || cfg.Sources["timeout"] != SourceLocal {
		t.Errorf("timeout = %d (%s)", cfg.Timeout, cfg.Sources["timeout"])
	}
	if cfg.Username != "from-env" || cfg.Sources["username"] != SourceEnv {
		t.Errorf("username = %q (%s)", cfg.Username, cfg.Sources["username"])
	}
}

func TestLoadAll_MissingExplicitFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if _, err := LoadAll(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}
