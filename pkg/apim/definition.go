package apim

import (
	"errors"
	"fmt"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// ErrInvalidDefinition is returned when an exported definition is not a JSON object.
var ErrInvalidDefinition = errors.New("invalid API definition")

var (
	idPath           = jp.MustParseString("$.id")
	namePath         = jp.MustParseString("$.name")
	contextPathPath  = jp.MustParseString("$.proxy.context_path")
	virtualHostPath  = jp.MustParseString("$.proxy.virtual_hosts[0].path")
	groupsPath       = jp.MustParseString("$.proxy.groups[*]")
	groupEndpointsOf = jp.MustParseString("$.endpoints[*]")
)

// ParseDefinition parses an exported API definition.
// id overrides the identifier found in the document when non-empty; exports
// of some service versions omit it.
func ParseDefinition(id string, data []byte) (*API, error) {
	doc, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	def, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected object, got %T", ErrInvalidDefinition, doc)
	}

	api := &API{
		ID:   id,
		Name: firstString(namePath, def),
		def:  def,
	}
	if api.ID == "" {
		api.ID = firstString(idPath, def)
	}

	// Older definitions carry the context path on the proxy, newer ones on
	// the first virtual host.
	api.ContextPath = firstString(contextPathPath, def)
	if api.ContextPath == "" {
		api.ContextPath = firstString(virtualHostPath, def)
	}

	for _, g := range groupsPath.Get(def) {
		groupNode, ok := g.(map[string]any)
		if !ok {
			continue
		}
		group := &EndpointGroup{Name: stringOf(groupNode["name"])}
		for _, e := range groupEndpointsOf.Get(groupNode) {
			endpointNode, ok := e.(map[string]any)
			if !ok {
				continue
			}
			group.Endpoints = append(group.Endpoints, &Endpoint{
				Name:   stringOf(endpointNode["name"]),
				Target: stringOf(endpointNode["target"]),
				node:   endpointNode,
			})
		}
		api.Groups = append(api.Groups, group)
	}

	return api, nil
}

func firstString(x jp.Expr, data any) string {
	return stringOf(x.First(data))
}

func stringOf(v any) string {
	s, _ := v.(string)
	return s
}
