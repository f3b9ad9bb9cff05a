package toggle

import (
	"context"
	"fmt"
	"sync"

	"github.com/apimkit/apimctl/pkg/apim"
	"github.com/apimkit/apimctl/pkg/selection"
)

// fakeAPI is an in-memory ManagementAPI recording every call.
type fakeAPI struct {
	mu sync.Mutex

	apis     []*apim.API
	loginErr error
	listErr  error

	// importErr and deployErr fail the n-th call (1-based) when n > 0.
	importErr   error
	importErrAt int
	deployErr   error
	deployErrAt int
	// emptyImport makes Import succeed without reporting the imported API.
	emptyImport bool

	calls []string
	// backupAtImport records the endpoint flags seen by each import.
	backupAtImport []map[string]bool
}

func (f *fakeAPI) record(format string, args ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeAPI) count(prefix string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func (f *fakeAPI) Login(_ context.Context, username, _ string) (string, error) {
	f.record("login %s", username)
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return "token", nil
}

func (f *fakeAPI) ListAPIs(_ context.Context, _ *selection.Filter) ([]*apim.API, error) {
	f.record("list")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.apis, nil
}

func (f *fakeAPI) Import(_ context.Context, api *apim.API, targetID string) (*apim.ImportedAPI, error) {
	f.record("import %s", targetID)
	if f.importErr != nil && f.count("import") == f.importErrAt {
		return nil, f.importErr
	}

	flags := make(map[string]bool)
	for _, g := range api.Groups {
		for _, e := range g.Endpoints {
			flags[e.Name] = e.Backup()
		}
	}
	f.mu.Lock()
	f.backupAtImport = append(f.backupAtImport, flags)
	f.mu.Unlock()

	if f.emptyImport {
		return nil, nil
	}
	return &apim.ImportedAPI{ID: "imported-" + targetID}, nil
}

func (f *fakeAPI) Deploy(_ context.Context, apiID string) error {
	f.record("deploy %s", apiID)
	if f.deployErr != nil && f.count("deploy") == f.deployErrAt {
		return f.deployErr
	}
	return nil
}

// fakeConsole collects console output.
type fakeConsole struct {
	raw  []string
	info []string
}

func (c *fakeConsole) Raw(format string, args ...any) {
	c.raw = append(c.raw, fmt.Sprintf(format, args...))
}

func (c *fakeConsole) Info(format string, args ...any) {
	c.info = append(c.info, fmt.Sprintf(format, args...))
}

// fakeGate answers a fixed value and counts invocations.
type fakeGate struct {
	answer bool
	err    error
	calls  int
	seen   []selection.Triple
}

func (g *fakeGate) Confirm(_ context.Context, triples []selection.Triple, _ Action) (bool, error) {
	g.calls++
	g.seen = triples
	return g.answer, g.err
}

func ordersAPI() *apim.API {
	return apim.NewAPI("orders-id", "Orders", "/orders",
		apim.NewGroup("G1", apim.NewEndpoint("E1", "http://a")),
	)
}

func twoEndpointAPIs() []*apim.API {
	return []*apim.API{
		apim.NewAPI("orders-id", "Orders", "/orders",
			apim.NewGroup("G1", apim.NewEndpoint("E1", "http://a")),
			apim.NewGroup("G2", apim.NewEndpoint("E2", "http://b")),
		),
	}
}
