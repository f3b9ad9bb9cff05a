package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apimkit/apimctl/pkg/cli/internal/output"
	"github.com/apimkit/apimctl/pkg/selection"
	"github.com/apimkit/apimctl/pkg/toggle"
)

// EndpointOutput is the JSON form of one selected endpoint.
type EndpointOutput struct {
	APIID       string `json:"apiId"`
	API         string `json:"api"`
	ContextPath string `json:"contextPath"`
	Group       string `json:"group"`
	Endpoint    string `json:"endpoint"`
	Target      string `json:"target"`
	Enabled     bool   `json:"enabled"`
}

func newListEndpointsCmd(a *app) *cobra.Command {
	var filters filterOptions

	cmd := &cobra.Command{
		Use:     "list-endpoints",
		Aliases: []string{"ls"},
		Short:   "List the endpoints matching the filters",
		Long: `List the endpoints matching the filters without changing anything.

Takes the same filters as enable-endpoints and is useful to preview a
selection before applying it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := filters.compile()
			if err != nil {
				return err
			}
			creds, err := a.credentials()
			if err != nil {
				return err
			}

			console := a.console(cmd)
			console.Info("Starting...")

			runner := toggle.NewRunner(newClient(a.cfg, a.logger), nil, console, a.logger)
			triples, err := runner.Select(cmd.Context(), toggle.Request{Credentials: creds, Filter: filter})
			if err != nil {
				return withHint(err)
			}
			if err := printEndpoints(a, cmd, triples); err != nil {
				return err
			}
			if len(triples) == 0 {
				console.Info("Done.")
				return nil
			}
			console.Info("Operation complete.")
			return nil
		},
	}

	filters.register(cmd, true)
	return cmd
}

func printEndpoints(a *app, cmd *cobra.Command, triples []selection.Triple) error {
	if a.jsonOutput() {
		out := make([]EndpointOutput, 0, len(triples))
		for _, t := range triples {
			out = append(out, EndpointOutput{
				APIID:       t.API.ID,
				API:         t.API.Name,
				ContextPath: t.API.ContextPath,
				Group:       t.Group.Name,
				Endpoint:    t.Endpoint.Name,
				Target:      t.Endpoint.Target,
				Enabled:     t.Endpoint.Enabled(),
			})
		}
		return output.JSON(cmd.OutOrStdout(), out)
	}

	if len(triples) == 0 {
		a.console(cmd).Raw("No match found.")
		return nil
	}

	w := output.Table(cmd.OutOrStdout())
	_, _ = fmt.Fprintln(w, "API\tCONTEXT PATH\tGROUP\tENDPOINT\tTARGET\tSTATE")
	for _, t := range triples {
		state := "enabled"
		if !t.Endpoint.Enabled() {
			state = "disabled"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			t.API.Name, t.API.ContextPath, t.Group.Name, t.Endpoint.Name, t.Endpoint.Target, state)
	}
	return w.Flush()
}
