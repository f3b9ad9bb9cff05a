package cli

import (
	"github.com/spf13/cobra"

	"github.com/apimkit/apimctl/pkg/cli/internal/flags"
	"github.com/apimkit/apimctl/pkg/toggle"
)

func newEnableEndpointsCmd(a *app) *cobra.Command {
	var filters filterOptions
	action := flags.NewEnum("", string(toggle.Enable), string(toggle.Disable))

	cmd := &cobra.Command{
		Use:   "enable-endpoints",
		Short: "Enable or disable the endpoints matching the filters",
		Long: `Enable or disable every endpoint matching the given filters.

Each filter is a case-insensitive regular expression. APIs are matched on
name and context path, then endpoint groups on name, then endpoints on
name and target. The matching endpoints are listed and the change is only
applied after confirmation. Each change is saved and deployed immediately.`,
		Example: `  # Disable every endpoint targeting the legacy backend
  apimctl enable-endpoints -u admin --filter-by-endpoint-target legacy --action disable

  # Enable the endpoints of the "secondary" groups of the orders APIs
  apimctl enable-endpoints -u admin --filter-by-name '^orders' \
      --filter-by-endpoint-group-name secondary --action enable`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := filters.compile()
			if err != nil {
				return err
			}
			act, err := toggle.ParseAction(action.String())
			if err != nil {
				return err
			}
			creds, err := a.credentials()
			if err != nil {
				return err
			}

			console := a.console(cmd)
			console.Info("Starting...")
			a.logger.Debug("selecting endpoints", "filter", filters.describe(), "action", act)

			runner := toggle.NewRunner(
				newClient(a.cfg, a.logger),
				toggle.NewGate(cmd.InOrStdin(), cmd.OutOrStdout()),
				console,
				a.logger,
			)
			_, err = runner.Run(cmd.Context(), toggle.Request{
				Credentials: creds,
				Filter:      filter,
				Action:      act,
			})
			return withHint(err)
		},
	}

	filters.register(cmd, true)
	cmd.Flags().Var(action, "action", "The action to perform on the matching endpoints")
	_ = cmd.MarkFlagRequired("action")
	_ = cmd.RegisterFlagCompletionFunc("action", enumCompletion(action))
	return cmd
}
