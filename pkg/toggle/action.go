// Package toggle enables or disables API endpoints in bulk.
//
// A run logs in, lists the APIs of the management service, selects the
// endpoints matching a filter, asks for confirmation and then, one endpoint
// at a time, flips its backup flag, imports the owning API definition and
// deploys the result. The first failure stops the run; endpoints already
// applied stay applied.
package toggle

import (
	"fmt"
	"strings"
)

// Action is the state change requested for the selected endpoints.
type Action string

// Supported actions.
const (
	Enable  Action = "enable"
	Disable Action = "disable"
)

// Actions lists the valid actions, for flag help and completion.
var Actions = []Action{Enable, Disable}

// ParseAction parses an action name, case-insensitively.
func ParseAction(s string) (Action, error) {
	switch Action(strings.ToLower(strings.TrimSpace(s))) {
	case Enable:
		return Enable, nil
	case Disable:
		return Disable, nil
	case "":
		return "", fmt.Errorf("action is required (one of: %s, %s)", Enable, Disable)
	default:
		return "", fmt.Errorf("invalid action %q (one of: %s, %s)", s, Enable, Disable)
	}
}

// Backup is the endpoint backup flag value the action sets.
// A disabled endpoint is a backup endpoint.
func (a Action) Backup() bool {
	return a == Disable
}

// PastTense returns "enabled" or "disabled".
func (a Action) PastTense() string {
	return string(a) + "d"
}
