package toggle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/apimkit/apimctl/pkg/apim"
	"github.com/apimkit/apimctl/pkg/logging"
	"github.com/apimkit/apimctl/pkg/selection"
)

// Console receives the messages shown to the user. Raw messages are always
// shown; Info messages may be silenced.
type Console interface {
	Raw(format string, args ...any)
	Info(format string, args ...any)
}

// Session opens an authenticated session.
type Session interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// Lister returns the full definitions of the APIs passing the API level
// patterns of a filter.
type Lister interface {
	ListAPIs(ctx context.Context, f *selection.Filter) ([]*apim.API, error)
}

// ManagementAPI is everything a run needs from the management service.
type ManagementAPI interface {
	Session
	Lister
	Importer
}

// Credentials identify the user a run logs in as.
type Credentials struct {
	Username string
	Password string
}

// Request describes one run.
type Request struct {
	Credentials Credentials
	Filter      *selection.Filter
	Action      Action
}

// Outcome is how a run ended without error.
type Outcome int

// Run outcomes.
const (
	// OutcomeNoMatch means nothing matched; the gate was not shown.
	OutcomeNoMatch Outcome = iota
	// OutcomeDeclined means the user did not confirm.
	OutcomeDeclined
	// OutcomeApplied means every selected endpoint was updated.
	OutcomeApplied
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNoMatch:
		return "no match"
	case OutcomeDeclined:
		return "declined"
	case OutcomeApplied:
		return "applied"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Result summarises a run.
type Result struct {
	Outcome  Outcome
	Selected []selection.Triple
	Applied  []Applied
}

// Runner wires the stages of a run together.
type Runner struct {
	api     ManagementAPI
	gate    Confirmer
	console Console
	logger  *slog.Logger
}

// NewRunner creates a Runner. A nil logger disables logging.
func NewRunner(api ManagementAPI, gate Confirmer, console Console, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Runner{api: api, gate: gate, console: console, logger: logger}
}

// Select logs in and returns the endpoints matching req.Filter, in API,
// group, endpoint order. It never mutates anything.
func (r *Runner) Select(ctx context.Context, req Request) ([]selection.Triple, error) {
	filter := req.Filter
	if filter == nil {
		filter = selection.MatchAll()
	}

	if _, err := r.api.Login(ctx, req.Credentials.Username, req.Credentials.Password); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}
	r.logger.Debug("logged in", "username", req.Credentials.Username)

	apis, err := r.api.ListAPIs(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	r.logger.Info("fetched APIs", "count", len(apis))

	triples := selection.Select(apis, filter)
	r.logger.Info("selected endpoints", "count", len(triples))
	return triples, nil
}

// Run performs a full select, confirm and apply cycle.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	if _, err := ParseAction(string(req.Action)); err != nil {
		return nil, err
	}

	triples, err := r.Select(ctx, req)
	if err != nil {
		return nil, err
	}

	result := &Result{Selected: triples}
	if len(triples) == 0 {
		r.console.Raw("No match found.")
		r.console.Info("Done.")
		result.Outcome = OutcomeNoMatch
		return result, nil
	}

	ok, err := r.gate.Confirm(ctx, triples, req.Action)
	if err != nil {
		return nil, err
	}
	if !ok {
		r.console.Raw("Aborted.")
		r.console.Info("Done.")
		result.Outcome = OutcomeDeclined
		return result, nil
	}

	applied, err := NewPipeline(r.api, r.console, r.logger).Apply(ctx, triples, req.Action)
	result.Applied = applied
	if err != nil {
		r.logger.Info("run aborted", "applied", len(applied), "remaining", len(triples)-len(applied), "error", err)
		return result, err
	}

	r.console.Info("Operation complete.")
	result.Outcome = OutcomeApplied
	return result, nil
}
