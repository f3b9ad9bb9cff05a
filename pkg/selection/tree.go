package selection

import (
	"fmt"
	"iter"

	"github.com/apimkit/apimctl/pkg/apim"
)

// Triple is one matched endpoint together with the group and API owning it.
// The pointers alias the fetched tree; mutating Endpoint edits API.
type Triple struct {
	API      *apim.API
	Group    *apim.EndpointGroup
	Endpoint *apim.Endpoint
}

// String renders the triple the way prompts and reports quote it.
func (t Triple) String() string {
	return fmt.Sprintf("%q (API %q, endpoint group %q, target %q)",
		t.Endpoint.Name, t.API.Name, t.Group.Name, t.Endpoint.Target)
}

// Walk lazily yields the triples of apis matching f, in API, then group,
// then endpoint order. APIs failing the API level patterns are skipped
// without visiting their groups.
func Walk(apis []*apim.API, f *Filter) iter.Seq[Triple] {
	return func(yield func(Triple) bool) {
		for _, api := range apis {
			if !f.MatchAPI(api.Name, api.ContextPath) {
				continue
			}
			for _, group := range api.Groups {
				if !f.MatchGroup(group) {
					continue
				}
				for _, endpoint := range group.Endpoints {
					if !f.MatchEndpoint(endpoint) {
						continue
					}
					if !yield(Triple{API: api, Group: group, Endpoint: endpoint}) {
						return
					}
				}
			}
		}
	}
}

// Collect materialises seq into an ordered slice. It returns nil when seq
// yields nothing, so callers can test len(...) == 0 for the no match case.
func Collect(seq iter.Seq[Triple]) []Triple {
	var out []Triple
	for t := range seq {
		out = append(out, t)
	}
	return out
}

// Select is Walk followed by Collect.
func Select(apis []*apim.API, f *Filter) []Triple {
	return Collect(Walk(apis, f))
}
