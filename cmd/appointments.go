package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/medportal-cli/internal/application"
	"github.com/bnema/medportal-cli/internal/domain"
)

func newAppointmentsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "appointments",
		Aliases: []string{"appt"},
		Short:   "Book and manage appointments",
	}

	cmd.AddCommand(
		newAppointmentsListCmd(app),
		newAppointmentsBookCmd(app),
		newAppointmentsCancelCmd(app),
		newAppointmentsUpdateCmd(app),
	)

	return cmd
}

func newAppointmentsListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your appointments",
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := app.portal.Appointments(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), list)
			}

			user, err := app.portal.CurrentUser()
			if err != nil {
				return err
			}

			rendered, err := app.renderers.appointments(list, user)
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newAppointmentsBookCmd(app *app) *cobra.Command {
	var doctorID, date, slot string

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book an appointment with a doctor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			appointment, err := app.portal.BookAppointment(cmd.Context(), application.BookAppointmentCommand{
				DoctorID: doctorID,
				Date:     date,
				Time:     slot,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Booked appointment %s with %s on %s at %s\n",
				appointment.ID, appointment.DoctorName, appointment.Date, appointment.Time)
			return nil
		},
	}

	cmd.Flags().StringVar(&doctorID, "doctor", "", "Doctor ID")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&slot, "time", "", "Time slot (HH:MM)")
	_ = cmd.MarkFlagRequired("doctor")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("time")

	return cmd
}

func newAppointmentsCancelCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appointment, err := app.portal.CancelAppointment(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Appointment %s %s\n", appointment.ID, appointment.Status)
			return nil
		},
	}
}

func newAppointmentsUpdateCmd(app *app) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Mark an appointment completed or cancelled (doctors only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appointment, err := app.portal.UpdateAppointmentStatus(cmd.Context(), application.UpdateAppointmentStatusCommand{
				ID:     args[0],
				Status: domain.AppointmentStatus(strings.ToLower(status)),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Appointment %s %s\n", appointment.ID, appointment.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "New status (completed|cancelled)")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}
