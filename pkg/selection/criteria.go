// Package selection walks API trees and flattens the endpoints matching a set
// of per-level criteria into an ordered list of triples.
package selection

import (
	"errors"
	"fmt"

	"github.com/apimkit/apimctl/internal/matching"
	"github.com/apimkit/apimctl/pkg/apim"
)

// Criteria holds one optional pattern per matchable field.
// An empty field matches everything at that level.
type Criteria struct {
	Name              string `json:"name,omitempty"`
	ContextPath       string `json:"contextPath,omitempty"`
	EndpointGroupName string `json:"endpointGroupName,omitempty"`
	EndpointName      string `json:"endpointName,omitempty"`
	EndpointTarget    string `json:"endpointTarget,omitempty"`
}

// Filter is a compiled Criteria.
type Filter struct {
	name        *matching.Pattern
	contextPath *matching.Pattern
	groupName   *matching.Pattern
	endpoint    *matching.Pattern
	target      *matching.Pattern
}

// Compile compiles every pattern of c, reporting all malformed ones at once.
func (c Criteria) Compile() (*Filter, error) {
	f := &Filter{}
	var errs []error
	compile := func(field, expr string) *matching.Pattern {
		p, err := matching.Compile(expr)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
		return p
	}

	f.name = compile("name", c.Name)
	f.contextPath = compile("context path", c.ContextPath)
	f.groupName = compile("endpoint group name", c.EndpointGroupName)
	f.endpoint = compile("endpoint name", c.EndpointName)
	f.target = compile("endpoint target", c.EndpointTarget)

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return f, nil
}

// MatchAll returns a Filter that accepts everything.
func MatchAll() *Filter {
	return &Filter{}
}

// MatchAPI reports whether the API level fields pass.
func (f *Filter) MatchAPI(name, contextPath string) bool {
	return f.name.Match(name) && f.contextPath.Match(contextPath)
}

// MatchSummary applies the API level fields to a listing summary.
func (f *Filter) MatchSummary(s apim.Summary) bool {
	return f.MatchAPI(s.Name, s.ContextPath)
}

// MatchGroup reports whether an endpoint group passes.
func (f *Filter) MatchGroup(g *apim.EndpointGroup) bool {
	return f.groupName.Match(g.Name)
}

// MatchEndpoint reports whether an endpoint passes both its name and
// target patterns.
func (f *Filter) MatchEndpoint(e *apim.Endpoint) bool {
	return f.endpoint.Match(e.Name) && f.target.Match(e.Target)
}
