package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/apimkit/apimctl/pkg/apim"
	"github.com/apimkit/apimctl/pkg/cliconfig"
	"github.com/apimkit/apimctl/pkg/managementapi"
	"github.com/apimkit/apimctl/pkg/selection"
	"github.com/apimkit/apimctl/pkg/toggle"
)

// managementClient is the part of the Management API the commands use.
type managementClient interface {
	toggle.ManagementAPI
	ListSummaries(ctx context.Context) ([]apim.Summary, error)
	Quality(ctx context.Context, apiID string) (*apim.Quality, error)
}

// Hooks replaced by tests.
var (
	newClient = func(cfg *cliconfig.CLIConfig, logger *slog.Logger) managementClient {
		return managementapi.New(cfg.URL,
			managementapi.WithTimeout(time.Duration(cfg.Timeout)*time.Second),
			managementapi.WithLogger(logger),
			managementapi.WithUserAgent(userAgent()),
		)
	}

	stdinIsTerminal = func() bool {
		return term.IsTerminal(int(os.Stdin.Fd()))
	}

	promptPassword = func(username string) (string, error) {
		var password string
		err := huh.NewInput().
			Title(fmt.Sprintf("Password for %s", username)).
			EchoMode(huh.EchoModePassword).
			Value(&password).
			Run()
		return password, err
	}
)

// credentials returns the configured username and password, asking for the
// password when it is missing and a terminal is attached.
func (a *app) credentials() (toggle.Credentials, error) {
	creds := toggle.Credentials{Username: a.cfg.Username, Password: a.cfg.Password}
	if creds.Username == "" {
		return creds, errors.New("username is required (use --username or " + cliconfig.EnvUsername + ")")
	}
	if creds.Password != "" {
		return creds, nil
	}
	if !stdinIsTerminal() {
		return creds, errors.New("password is required (use --password or " + cliconfig.EnvPassword + ")")
	}
	pw, err := promptPassword(creds.Username)
	if err != nil {
		return creds, fmt.Errorf("failed to read password: %w", err)
	}
	creds.Password = pw
	return creds, nil
}

// connect creates a client and logs in.
func (a *app) connect(ctx context.Context) (managementClient, error) {
	creds, err := a.credentials()
	if err != nil {
		return nil, err
	}
	client := newClient(a.cfg, a.logger)
	if _, err := client.Login(ctx, creds.Username, creds.Password); err != nil {
		return nil, withHint(fmt.Errorf("%w: %w", toggle.ErrAuthentication, err))
	}
	return client, nil
}

// hintedError appends suggestions to an error and keeps it unwrappable.
type hintedError struct {
	err error
	msg string
}

func (e *hintedError) Error() string { return e.msg }
func (e *hintedError) Unwrap() error { return e.err }

// withHint adds suggestions to connection and credential failures.
func withHint(err error) error {
	switch {
	case err == nil:
		return nil
	case managementapi.IsConnectionError(err):
		return &hintedError{err: err, msg: managementapi.FormatConnectionError(err)}
	case managementapi.IsUnauthorized(err):
		return &hintedError{err: err, msg: managementapi.FormatAuthError(err)}
	}
	return err
}

// filterOptions holds the pattern flags shared by the selecting commands.
type filterOptions struct {
	criteria selection.Criteria
}

func (o *filterOptions) register(cmd *cobra.Command, endpointLevel bool) {
	f := cmd.Flags()
	f.StringVar(&o.criteria.Name, "filter-by-name", "", "Only APIs whose name matches this regular expression (case-insensitive)")
	f.StringVar(&o.criteria.ContextPath, "filter-by-context-path", "", "Only APIs whose context path matches this regular expression")
	if !endpointLevel {
		return
	}
	f.StringVar(&o.criteria.EndpointGroupName, "filter-by-endpoint-group-name", "", "Only endpoint groups whose name matches this regular expression")
	f.StringVar(&o.criteria.EndpointName, "filter-by-endpoint-name", "", "Only endpoints whose name matches this regular expression")
	f.StringVar(&o.criteria.EndpointTarget, "filter-by-endpoint-target", "", "Only endpoints whose target matches this regular expression")
}

func (o *filterOptions) compile() (*selection.Filter, error) {
	f, err := o.criteria.Compile()
	if err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}
	return f, nil
}

// describe renders the active patterns for diagnostics.
func (o *filterOptions) describe() string {
	var parts []string
	add := func(k, v string) {
		if v != "" {
			parts = append(parts, k+"="+v)
		}
	}
	add("name", o.criteria.Name)
	add("context_path", o.criteria.ContextPath)
	add("endpoint_group_name", o.criteria.EndpointGroupName)
	add("endpoint_name", o.criteria.EndpointName)
	add("endpoint_target", o.criteria.EndpointTarget)
	if len(parts) == 0 {
		return "*"
	}
	return strings.Join(parts, " ")
}
