package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/apimkit/apimctl/pkg/cli/internal/flags"
	"github.com/apimkit/apimctl/pkg/cli/internal/output"
	"github.com/apimkit/apimctl/pkg/cliconfig"
	"github.com/apimkit/apimctl/pkg/logging"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	configFile string
	url        string
	username   string
	password   string
	timeout    int
	silent     bool
	jsonOutput bool
	logLevel   *flags.Enum
	logFormat  *flags.Enum
	logFile    string
}

// app is the state shared by the commands of one invocation.
type app struct {
	opts    globalOptions
	cfg     *cliconfig.CLIConfig
	logger  *slog.Logger
	logFile io.Closer
}

// NewRootCmd builds the apimctl command tree.
func NewRootCmd() *cobra.Command {
	return newApp().rootCmd()
}

func newApp() *app {
	return &app{
		opts: globalOptions{
			logLevel:  flags.NewEnum("", "debug", "info", "warn", "error"),
			logFormat: flags.NewEnum("", "text", "json"),
		},
		logger: logging.Nop(),
	}
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "apimctl",
		Short: "apimctl inspects and updates APIs of an API management service in bulk",
		Long: `apimctl drives the Management API of an API management service.

It selects APIs, endpoint groups and endpoints with case-insensitive regular
expressions and applies changes to every match after confirmation.

Configuration can be provided via flags, environment variables (APIMCTL_*),
or a configuration file. By default, apimctl looks for .apimctlrc.yaml in the
current directory and ~/.config/apimctl/config.yaml.`,
		SilenceUsage:      true,
		SilenceErrors:     true, // We handle errors in run()
		PersistentPreRunE: a.setup,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.opts.configFile, "config", "", "Config file (default: .apimctlrc.yaml, then ~/.config/apimctl/config.yaml)")
	pf.StringVar(&a.opts.url, "url", "", "Management API base URL (default: "+cliconfig.DefaultURL+")")
	pf.StringVarP(&a.opts.username, "username", "u", "", "Username to connect to the Management API")
	pf.StringVarP(&a.opts.password, "password", "p", "", "Username's password to connect to the Management API")
	pf.IntVar(&a.opts.timeout, "timeout", cliconfig.DefaultTimeout, "HTTP timeout in seconds")
	pf.BoolVarP(&a.opts.silent, "silent", "s", false, "Only errors will be displayed, but no information message")
	pf.BoolVar(&a.opts.jsonOutput, "json", false, "Output command results in JSON format")
	pf.Var(a.opts.logLevel, "log-level", "Diagnostic log level (default: "+cliconfig.DefaultLogLevel+")")
	pf.Var(a.opts.logFormat, "log-format", "Diagnostic log format (default: "+cliconfig.DefaultLogFormat+")")
	pf.StringVar(&a.opts.logFile, "log-file", "", "Also write diagnostic logs as JSON to this file")

	_ = rootCmd.RegisterFlagCompletionFunc("log-level", enumCompletion(a.opts.logLevel))
	_ = rootCmd.RegisterFlagCompletionFunc("log-format", enumCompletion(a.opts.logFormat))

	rootCmd.AddCommand(
		newEnableEndpointsCmd(a),
		newListEndpointsCmd(a),
		newListAPIsQualityCmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	a := newApp()
	code := a.run(ctx, a.rootCmd(), os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// run executes root with args and returns the process exit code.
// Resources opened by setup are released whether or not the command failed.
func (a *app) run(ctx context.Context, root *cobra.Command, args []string, stderr io.Writer) int {
	defer a.close()

	root.SetArgs(args)
	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return 0
	}
	name := root.Name()
	if cmd != nil {
		name = cmd.Name()
	}
	(&output.Console{Name: name, Err: stderr}).Error(err)
	return 1
}

// setup resolves the configuration and the diagnostic logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := cliconfig.LoadAll(a.opts.configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cliconfig.MergeConfig(cfg, a.flagConfig(cmd), cliconfig.SourceFlag)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	logCfg := logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: logging.ParseFormat(cfg.LogFormat),
		Output: cmd.ErrOrStderr(),
	}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		a.logFile = f
		logCfg.File = f
	}
	a.logger = logging.New(logCfg).With("command", cmd.Name())
	a.logger.Debug("configuration resolved", "url", cfg.URL, "url_source", cfg.Sources["url"])
	return nil
}

// flagConfig collects the persistent flags the user actually set.
func (a *app) flagConfig(cmd *cobra.Command) *cliconfig.CLIConfig {
	fc := &cliconfig.CLIConfig{SetFields: make(map[string]bool)}
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}

	if changed("url") {
		fc.URL = a.opts.url
	}
	if changed("username") {
		fc.Username = a.opts.username
	}
	if changed("password") {
		fc.Password = a.opts.password
	}
	if changed("timeout") {
		fc.Timeout = a.opts.timeout
	}
	if changed("log-level") {
		fc.LogLevel = a.opts.logLevel.String()
	}
	if changed("log-format") {
		fc.LogFormat = a.opts.logFormat.String()
	}
	if changed("log-file") {
		fc.LogFile = a.opts.logFile
	}
	if changed("silent") {
		fc.Silent = a.opts.silent
		fc.SetFields["silent"] = true
	}
	if changed("json") {
		fc.JSON = a.opts.jsonOutput
		fc.SetFields["json"] = true
	}
	return fc
}

func (a *app) close() {
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}

// console returns the user-facing printer for cmd. Info messages are dropped
// in JSON mode so stdout stays parseable.
func (a *app) console(cmd *cobra.Command) *output.Console {
	return &output.Console{
		Name:   cmd.Name(),
		Silent: a.cfg != nil && (a.cfg.Silent || a.cfg.JSON),
		Out:    cmd.OutOrStdout(),
		Err:    cmd.ErrOrStderr(),
	}
}

func (a *app) jsonOutput() bool {
	return a.cfg != nil && a.cfg.JSON
}

func enumCompletion(e *flags.Enum) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return e.Choices(), cobra.ShellCompDirectiveNoFileComp
	}
}

// userAgent identifies apimctl in Management API access logs.
func userAgent() string {
	v := Version
	if c := Commit; c != "none" && len(c) >= 7 {
		v += "+" + c[:7]
	}
	return "apimctl/" + v + " (" + strconv.Quote(BuildDate) + ")"
}
