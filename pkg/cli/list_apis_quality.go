package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/apimkit/apimctl/pkg/apim"
	"github.com/apimkit/apimctl/pkg/cli/internal/output"
	"github.com/apimkit/apimctl/pkg/toggle"
)

// QualityOutput is the JSON form of one API quality report.
type QualityOutput struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	ContextPath string           `json:"contextPath"`
	Score       float64          `json:"score"`
	Criteria    []apim.Criterion `json:"criteria"`
}

func newListAPIsQualityCmd(a *app) *cobra.Command {
	var filters filterOptions

	cmd := &cobra.Command{
		Use:   "list-apis-quality",
		Short: "List the quality score of the APIs matching the filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := filters.compile()
			if err != nil {
				return err
			}
			console := a.console(cmd)
			client, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			console.Info("Starting...")

			summaries, err := client.ListSummaries(cmd.Context())
			if err != nil {
				return withHint(fmt.Errorf("%w: %w", toggle.ErrFetch, err))
			}

			var reports []QualityOutput
			for _, s := range summaries {
				if !filter.MatchSummary(s) {
					continue
				}
				q, err := client.Quality(cmd.Context(), s.ID)
				if err != nil {
					return withHint(fmt.Errorf("%w: quality of API %q: %w", toggle.ErrFetch, s.Name, err))
				}
				a.logger.Debug("fetched quality", "api", s.ID, "score", q.Score)

				if a.jsonOutput() {
					reports = append(reports, QualityOutput{
						ID:          s.ID,
						Name:        s.Name,
						ContextPath: s.ContextPath,
						Score:       q.Score,
						Criteria:    q.Criteria(),
					})
					continue
				}
				console.Raw("%s (%s) - %v", s.Name, s.ContextPath, q.Score)
				if passed := q.Passed(); len(passed) > 0 {
					console.Raw("\t%s", strings.Join(passed, ", "))
				}
			}

			if a.jsonOutput() {
				if reports == nil {
					reports = []QualityOutput{}
				}
				return output.JSON(cmd.OutOrStdout(), reports)
			}
			console.Info("Operation complete.")
			return nil
		},
	}

	filters.register(cmd, false)
	return cmd
}
