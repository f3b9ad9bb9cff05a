// Package flags provides reusable flag types for CLI commands.
package flags

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

var _ pflag.Value = (*Enum)(nil)

// Enum is a string flag restricted to a fixed set of choices.
// It implements pflag.Value, so cobra rejects bad values while parsing.
type Enum struct {
	value   string
	choices []string
}

// NewEnum creates an Enum with an optional default value.
func NewEnum(def string, choices ...string) *Enum {
	return &Enum{value: def, choices: choices}
}

// String returns the current value.
func (e *Enum) String() string {
	return e.value
}

// Set validates and stores value. Matching is case-insensitive and the
// stored value uses the canonical spelling of the choice.
func (e *Enum) Set(value string) error {
	for _, c := range e.choices {
		if strings.EqualFold(c, value) {
			e.value = c
			return nil
		}
	}
	return fmt.Errorf("must be one of: %s", strings.Join(e.choices, ", "))
}

// Type specifies the type label for Cobra flags.
func (e *Enum) Type() string {
	return strings.Join(e.choices, "|")
}

// Choices returns the accepted values, for shell completion.
func (e *Enum) Choices() []string {
	return e.choices
}
