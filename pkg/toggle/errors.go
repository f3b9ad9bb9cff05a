package toggle

import (
	"errors"
	"fmt"

	"github.com/apimkit/apimctl/pkg/selection"
)

// Error kinds. Every failure of the management service or of the confirmation
// read returned by Run wraps exactly one of them. An invalid action and a
// cancelled context are returned unwrapped.
var (
	ErrAuthentication = errors.New("authentication failed")
	ErrFetch          = errors.New("failed to fetch APIs")
	ErrMutation       = errors.New("failed to update endpoint")
	ErrConfirmation   = errors.New("failed to read confirmation")
)

// Step names the call of the save-then-activate protocol that failed.
type Step string

// Mutation steps.
const (
	StepImport Step = "import"
	StepDeploy Step = "deploy"
)

// MutationError reports the endpoint whose update failed.
type MutationError struct {
	Triple selection.Triple
	Step   Step
	Err    error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("%s: %s of API %q failed for endpoint %s: %v",
		ErrMutation, e.Step, e.Triple.API.Name, e.Triple, e.Err)
}

// Unwrap makes both ErrMutation and the underlying cause visible to errors.Is.
func (e *MutationError) Unwrap() []error {
	return []error{ErrMutation, e.Err}
}
