package toggle

import (
	"context"
	"log/slog"

	"github.com/apimkit/apimctl/pkg/apim"
	"github.com/apimkit/apimctl/pkg/logging"
	"github.com/apimkit/apimctl/pkg/selection"
)

// Importer persists an API definition and activates it.
type Importer interface {
	Import(ctx context.Context, api *apim.API, targetID string) (*apim.ImportedAPI, error)
	Deploy(ctx context.Context, apiID string) error
}

// Applied is one endpoint whose new state was imported and deployed.
type Applied struct {
	Triple     selection.Triple
	ImportedID string
}

// Pipeline applies an action to selected endpoints, one at a time.
type Pipeline struct {
	api     Importer
	console Console
	logger  *slog.Logger
}

// NewPipeline creates a Pipeline. A nil logger disables logging.
func NewPipeline(api Importer, console Console, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Pipeline{api: api, console: console, logger: logger}
}

// Apply sets every selected endpoint to action and saves its API.
//
// The owning API is imported then deployed once per endpoint, even when
// several selected endpoints share it; each import carries every flag set so
// far. The deploy targets the id returned by the import, or the original id
// when the import reports none. The first failing call stops the loop and is returned as a
// *MutationError together with the endpoints already applied.
func (p *Pipeline) Apply(ctx context.Context, triples []selection.Triple, action Action) ([]Applied, error) {
	applied := make([]Applied, 0, len(triples))
	for _, t := range triples {
		if err := ctx.Err(); err != nil {
			return applied, err
		}

		t.Endpoint.SetBackup(action.Backup())

		imported, err := p.api.Import(ctx, t.API, t.API.ID)
		if err != nil {
			return applied, &MutationError{Triple: t, Step: StepImport, Err: err}
		}
		importedID := t.API.ID
		if imported != nil && imported.ID != "" {
			importedID = imported.ID
		}
		if err := p.api.Deploy(ctx, importedID); err != nil {
			return applied, &MutationError{Triple: t, Step: StepDeploy, Err: err}
		}

		p.logger.Info("endpoint updated",
			"api", t.API.Name,
			"api_id", importedID,
			"group", t.Group.Name,
			"endpoint", t.Endpoint.Name,
			"backup", action.Backup())
		p.console.Raw("Operation done for endpoint %s.", t)
		applied = append(applied, Applied{Triple: t, ImportedID: importedID})
	}
	return applied, nil
}
