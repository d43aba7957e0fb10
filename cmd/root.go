package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mp",
		Short:         "Medical portal CLI (mp): appointments and assistant chat",
		Long:          "mp talks to the medical portal API to manage your account, book and track appointments, and chat with the medical assistant. State is mirrored locally so the last known view survives restarts and outages.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp(context.Background())
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		return app.close()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRegisterCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newDoctorsCmd(app),
		newAppointmentsCmd(app),
		newDashboardCmd(app),
		newChatCmd(app),
		newMessagesCmd(app),
	)

	return rootCmd
}
