package cmd

import "github.com/spf13/cobra"

func newDoctorsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "doctors",
		Short: "List doctors and their bookable slots",
		RunE: func(cmd *cobra.Command, _ []string) error {
			list := app.portal.Doctors(cmd.Context())
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), list)
			}

			rendered, err := app.renderers.doctors(list)
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
