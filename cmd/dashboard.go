package cmd

import "github.com/spf13/cobra"

func newDashboardCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Summarize today's and upcoming appointments",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dashboard, err := app.portal.Dashboard(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), dashboard)
			}

			rendered, err := app.renderers.dashboard(dashboard, app.renderOptions())
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
