package apim

import (
	"github.com/ohler55/ojg/oj"
)

// API is a managed API definition.
type API struct {
	ID          string
	Name        string
	ContextPath string
	Groups      []*EndpointGroup

	def map[string]any
}

// EndpointGroup is a named set of endpoints inside an API proxy.
type EndpointGroup struct {
	Name      string
	Endpoints []*Endpoint
}

// Endpoint is a single proxied backend.
type Endpoint struct {
	Name   string
	Target string

	node map[string]any
}

// Summary is the short form of an API returned by the listing call.
type Summary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContextPath string `json:"context_path"`
	Version     string `json:"version,omitempty"`
	State       string `json:"state,omitempty"`
}

// ImportedAPI is the result of importing a definition.
type ImportedAPI struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Backup reports whether the endpoint is a backup endpoint, i.e. disabled
// for regular traffic.
func (e *Endpoint) Backup() bool {
	b, _ := e.node["backup"].(bool)
	return b
}

// SetBackup sets the backup flag in the owning API definition.
func (e *Endpoint) SetBackup(backup bool) {
	e.node["backup"] = backup
}

// Enabled is the inverse of Backup.
func (e *Endpoint) Enabled() bool {
	return !e.Backup()
}

// Definition returns the JSON encoding of the full API definition,
// including every flag change made through its endpoints.
func (a *API) Definition() ([]byte, error) {
	return oj.Marshal(a.def)
}

// NewEndpoint creates a standalone endpoint, enabled by default.
// It becomes part of a definition once passed to NewAPI.
func NewEndpoint(name, target string) *Endpoint {
	return &Endpoint{
		Name:   name,
		Target: target,
		node: map[string]any{
			"name":   name,
			"target": target,
			"backup": false,
		},
	}
}

// NewGroup creates an endpoint group.
func NewGroup(name string, endpoints ...*Endpoint) *EndpointGroup {
	return &EndpointGroup{Name: name, Endpoints: endpoints}
}

// NewAPI builds an API and its backing definition from groups created with
// NewGroup. The endpoint nodes are shared, not copied.
func NewAPI(id, name, contextPath string, groups ...*EndpointGroup) *API {
	groupNodes := make([]any, 0, len(groups))
	for _, g := range groups {
		endpointNodes := make([]any, 0, len(g.Endpoints))
		for _, e := range g.Endpoints {
			endpointNodes = append(endpointNodes, e.node)
		}
		groupNodes = append(groupNodes, map[string]any{
			"name":      g.Name,
			"endpoints": endpointNodes,
		})
	}

	return &API{
		ID:          id,
		Name:        name,
		ContextPath: contextPath,
		Groups:      groups,
		def: map[string]any{
			"id":   id,
			"name": name,
			"proxy": map[string]any{
				"context_path": contextPath,
				"groups":       groupNodes,
			},
		},
	}
}
