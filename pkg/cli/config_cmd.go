package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/apimkit/apimctl/pkg/cli/internal/output"
	"github.com/apimkit/apimctl/pkg/cliconfig"
)

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show effective configuration with source annotations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			out := cmd.OutOrStdout()

			if a.jsonOutput() {
				return output.JSON(out, cfg)
			}

			_, _ = fmt.Fprintln(out, "Effective Configuration:")
			_, _ = fmt.Fprintln(out)

			password := ""
			if cfg.Password != "" {
				password = "********"
			}
			printConfigValue(out, "url", cfg.URL, cfg.Sources["url"])
			printConfigValue(out, "username", cfg.Username, cfg.Sources["username"])
			printConfigValue(out, "password", password, cfg.Sources["password"])
			printConfigValue(out, "timeout", cfg.Timeout, cfg.Sources["timeout"])
			printConfigValue(out, "logLevel", cfg.LogLevel, cfg.Sources["logLevel"])
			printConfigValue(out, "logFormat", cfg.LogFormat, cfg.Sources["logFormat"])
			if cfg.LogFile != "" {
				printConfigValue(out, "logFile", cfg.LogFile, cfg.Sources["logFile"])
			}
			printConfigValue(out, "silent", cfg.Silent, cfg.Sources["silent"])

			_, _ = fmt.Fprintln(out)
			_, _ = fmt.Fprintln(out, "Sources loaded:")
			if globalPath, err := cliconfig.FindGlobalConfig(); err == nil && globalPath != "" {
				_, _ = fmt.Fprintf(out, "  • %s (global)\n", globalPath)
			}
			localPath := a.opts.configFile
			if localPath == "" {
				localPath, _ = cliconfig.FindLocalConfig()
			}
			if localPath != "" {
				_, _ = fmt.Fprintf(out, "  • %s (local)\n", localPath)
			}
			return nil
		},
	}
}

// printConfigValue prints a config value with source annotation.
func printConfigValue(w io.Writer, name string, value any, source string) {
	if source == "" {
		source = cliconfig.SourceDefault
	}
	_, _ = fmt.Fprintf(w, "  %-12s %v%s\n", name+":", value, formatSource(source))
}

// formatSource formats a source type for display.
func formatSource(source string) string {
	switch source {
	case cliconfig.SourceDefault:
		return "  (default)"
	case cliconfig.SourceEnv:
		return "  (env)"
	case cliconfig.SourceGlobal:
		return "  (global config)"
	case cliconfig.SourceLocal:
		return "  (local config)"
	case cliconfig.SourceFlag:
		return "  (flag)"
	default:
		return ""
	}
}
