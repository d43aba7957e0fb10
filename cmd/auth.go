package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/medportal-cli/internal/application"
	"github.com/bnema/medportal-cli/internal/domain"
)

func newRegisterCmd(app *app) *cobra.Command {
	var name, email, password, confirm, role, specialty string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a portal account and sign in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				read, err := readSecretLine(cmd.InOrStdin())
				if err != nil {
					return err
				}
				password = read
			}
			if confirm == "" {
				confirm = password
			}

			user, err := app.portal.Register(cmd.Context(), application.RegisterCommand{
				Name:            name,
				Email:           email,
				Password:        password,
				ConfirmPassword: confirm,
				Role:            domain.Role(strings.ToLower(role)),
				Specialty:       specialty,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Registered %s as %s (id %s)\n", user.Email, user.Role, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password (read from stdin when empty)")
	cmd.Flags().StringVar(&confirm, "confirm-password", "", "Password confirmation (defaults to --password)")
	cmd.Flags().StringVar(&role, "role", string(domain.RolePatient), "Account role (patient|doctor)")
	cmd.Flags().StringVar(&specialty, "specialty", "", "Specialty, required for doctors")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLoginCmd(app *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the portal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				read, err := readSecretLine(cmd.InOrStdin())
				if err != nil {
					return err
				}
				password = read
			}

			user, err := app.portal.Login(cmd.Context(), application.LoginCommand{Email: email, Password: password})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", valueOr(user.Name, user.Email), user.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password (read from stdin when empty)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the local mirror",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.portal.Logout(cmd.Context()); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func newWhoamiCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := app.portal.CurrentUser()
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), user)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "id: %s\n", user.ID)
			_, _ = fmt.Fprintf(out, "name: %s\n", user.Name)
			_, _ = fmt.Fprintf(out, "email: %s\n", user.Email)
			_, _ = fmt.Fprintf(out, "role: %s\n", user.Role)
			if user.IsDoctor() {
				_, _ = fmt.Fprintf(out, "specialty: %s\n", user.Specialty)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func readSecretLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func valueOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
