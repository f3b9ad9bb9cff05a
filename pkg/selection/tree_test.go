package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apimkit/apimctl/pkg/apim"
)

func fixture() []*apim.API {
	return []*apim.API{
		apim.NewAPI("a1", "Orders", "/orders",
			apim.NewGroup("G1",
				apim.NewEndpoint("E1", "http://a"),
				apim.NewEndpoint("E2", "http://b"),
			),
			apim.NewGroup("G2",
				apim.NewEndpoint("E3", "http://orders-backup"),
			),
		),
		apim.NewAPI("a2", "Empty", "/empty"),
		apim.NewAPI("a3", "Billing", "/v1/billing",
			apim.NewGroup("default"),
			apim.NewGroup("primary",
				apim.NewEndpoint("billing-1", "https://billing.internal"),
			),
		),
	}
}

func names(triples []Triple) []string {
	out := make([]string, 0, len(triples))
	for _, t := range triples {
		out = append(out, t.API.Name+"/"+t.Group.Name+"/"+t.Endpoint.Name)
	}
	return out
}

func compile(t *testing.T, c Criteria) *Filter {
	t.Helper()
	f, err := c.Compile()
	require.NoError(t, err)
	return f
}

func TestSelect_NoCriteriaYieldsEverythingInOrder(t *testing.T) {
	t.Parallel()

	got := Select(fixture(), compile(t, Criteria{}))
	assert.Equal(t, []string{
		"Orders/G1/E1",
		"Orders/G1/E2",
		"Orders/G2/E3",
		"Billing/primary/billing-1",
	}, names(got))
}

func TestSelect_APIWithoutGroupsYieldsNothing(t *testing.T) {
	t.Parallel()

	criteria := []Criteria{
		{},
		{Name: "empty"},
		{Name: "empty", EndpointName: ".*"},
		{ContextPath: "/empty"},
	}
	for _, c := range criteria {
		got := Select(fixture(), compile(t, c))
		for _, tr := range got {
			assert.NotEqual(t, "Empty", tr.API.Name)
		}
	}
	assert.Empty(t, Select(fixture(), compile(t, Criteria{Name: "^empty$"})))
}

func TestSelect_Criteria(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{
			name:     "case-insensitive api name",
			criteria: Criteria{Name: "orders"},
			want:     []string{"Orders/G1/E1", "Orders/G1/E2", "Orders/G2/E3"},
		},
		{
			name:     "context path",
			criteria: Criteria{ContextPath: "^/v1/"},
			want:     []string{"Billing/primary/billing-1"},
		},
		{
			name:     "group name",
			criteria: Criteria{EndpointGroupName: "g2"},
			want:     []string{"Orders/G2/E3"},
		},
		{
			name:     "endpoint name",
			criteria: Criteria{EndpointName: "^e[13]$"},
			want:     []string{"Orders/G1/E1", "Orders/G2/E3"},
		},
		{
			name:     "endpoint target",
			criteria: Criteria{EndpointTarget: "backup|billing"},
			want:     []string{"Orders/G2/E3", "Billing/primary/billing-1"},
		},
		{
			name:     "name and target must both pass",
			criteria: Criteria{EndpointName: "E", EndpointTarget: "http://b"},
			want:     []string{"Orders/G1/E2"},
		},
		{
			name:     "all five levels",
			criteria: Criteria{Name: "ord", ContextPath: "orders", EndpointGroupName: "G1", EndpointName: "E1", EndpointTarget: "a"},
			want:     []string{"Orders/G1/E1"},
		},
		{
			name:     "nothing matches",
			criteria: Criteria{EndpointName: "missing"},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, names(Select(fixture(), compile(t, tt.criteria))))
		})
	}
}

func TestSelect_TargetScenario(t *testing.T) {
	t.Parallel()

	apis := []*apim.API{
		apim.NewAPI("o", "Orders", "/orders",
			apim.NewGroup("G1", apim.NewEndpoint("E1", "http://a")),
		),
	}

	got := Select(apis, compile(t, Criteria{EndpointTarget: "a"}))
	require.Len(t, got, 1)
	assert.Same(t, apis[0], got[0].API)
	assert.Same(t, apis[0].Groups[0], got[0].Group)
	assert.Same(t, apis[0].Groups[0].Endpoints[0], got[0].Endpoint)
	assert.Equal(t, `"E1" (API "Orders", endpoint group "G1", target "http://a")`, got[0].String())
}

func TestCollect_EmptyIsNil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Select(nil, MatchAll()))
	assert.Nil(t, Select(fixture(), compile(t, Criteria{Name: "nope"})))
}

func TestWalk_StopsEarly(t *testing.T) {
	t.Parallel()

	var seen []string
	for tr := range Walk(fixture(), MatchAll()) {
		seen = append(seen, tr.Endpoint.Name)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"E1", "E2"}, seen)
}

func TestCompile_ReportsEveryMalformedPattern(t *testing.T) {
	t.Parallel()

	_, err := Criteria{Name: "(", EndpointTarget: "[", ContextPath: "ok"}.Compile()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name: invalid pattern")
	assert.Contains(t, err.Error(), "endpoint target: invalid pattern")
	assert.NotContains(t, err.Error(), "context path")
}

func TestFilter_MatchSummary(t *testing.T) {
	t.Parallel()

	f := compile(t, Criteria{Name: "orders", ContextPath: "^/orders"})
	assert.True(t, f.MatchSummary(apim.Summary{Name: "Orders", ContextPath: "/orders/v2"}))
	assert.False(t, f.MatchSummary(apim.Summary{Name: "Orders", ContextPath: "/v2/orders"}))
	assert.True(t, MatchAll().MatchSummary(apim.Summary{}))
}
