package apim

import (
	"sort"
	"strings"
)

// qualityMetricPrefix and qualityMetricSuffix wrap every metric key returned
// by the quality endpoint, e.g. "api.quality.metrics.description.weight".
const (
	qualityMetricPrefix = "api.quality.metrics."
	qualityMetricSuffix = ".weight"
)

// Quality is the quality score of an API.
type Quality struct {
	Score         float64         `json:"score"`
	MetricsPassed map[string]bool `json:"metrics_passed"`
}

// Criterion is one quality metric and whether the API complies with it.
type Criterion struct {
	Name     string `json:"name"`
	Complied bool   `json:"complied"`
}

// Criteria converts the raw metric map into named criteria sorted by name.
func (q *Quality) Criteria() []Criterion {
	out := make([]Criterion, 0, len(q.MetricsPassed))
	for key, passed := range q.MetricsPassed {
		out = append(out, Criterion{Name: criterionName(key), Complied: passed})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Passed returns the names of the criteria the API complies with.
func (q *Quality) Passed() []string {
	var names []string
	for _, c := range q.Criteria() {
		if c.Complied {
			names = append(names, c.Name)
		}
	}
	return names
}

func criterionName(key string) string {
	name := strings.TrimPrefix(key, qualityMetricPrefix)
	name = strings.TrimSuffix(name, qualityMetricSuffix)
	return strings.ReplaceAll(name, ".", " ")
}
