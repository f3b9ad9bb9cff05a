package cliconfig

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/apimkit/apimctl/pkg/logging"
)

// MaxTimeout is the largest accepted HTTP timeout in seconds.
const MaxTimeout = 600

// Validate checks the merged configuration.
func (c *CLIConfig) Validate() error {
	var errs []error

	if c.URL == "" {
		errs = append(errs, errors.New("url is required"))
	} else if u, err := url.Parse(c.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("url %q must be an absolute http or https URL", c.URL))
	}

	if c.Timeout < 1 || c.Timeout > MaxTimeout {
		errs = append(errs, fmt.Errorf("timeout %d is out of range (1-%d)", c.Timeout, MaxTimeout))
	}

	if c.LogLevel != "" && !logging.ValidLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("logLevel %q is not one of debug, info, warn, error", c.LogLevel))
	}

	if c.LogFormat != "" && c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("logFormat %q is not one of text, json", c.LogFormat))
	}

	return errors.Join(errs...)
}
