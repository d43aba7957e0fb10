package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/medportal-cli/internal/domain"
)

func newChatCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the medical assistant",
	}

	cmd.AddCommand(
		newChatSendCmd(app),
		newChatHistoryCmd(app),
		newChatSyncCmd(app),
		newChatPruneCmd(app),
	)

	return cmd
}

func newChatSendCmd(app *app) *cobra.Command {
	var offline, asJSON, quiet bool

	cmd := &cobra.Command{
		Use:   "send <message...>",
		Short: "Send a message and print the reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conversation := app.conversation
			if offline {
				conversation = app.offlineConversation
			}

			message := strings.Join(args, " ")
			send := func(ctx context.Context) (domain.ConversationTurn, error) {
				return conversation.Send(ctx, message)
			}

			var (
				turn domain.ConversationTurn
				err  error
			)
			if quiet || asJSON {
				turn, err = send(cmd.Context())
			} else {
				turn, err = runPendingTurnSpinner(cmd.Context(), cmd.ErrOrStderr(), message, offline, send)
			}
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), turn)
			}

			if turn.State == domain.TurnPending {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Reply still pending")
				return nil
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), turn.Response)
			return nil
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "Answer from the built-in symptom catalog without contacting the portal")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Do not show a spinner while waiting")

	return cmd
}

func newChatHistoryCmd(app *app) *cobra.Command {
	var asJSON, newestFirst bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the conversation transcript",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := app.portal.CurrentUser(); err != nil {
				return err
			}

			turns := app.conversation.Transcript()
			if newestFirst {
				turns = app.conversation.History()
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), turns)
			}

			rendered, err := app.renderers.transcript("Assistant", turns, app.renderOptions())
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVar(&newestFirst, "newest-first", false, "List the newest turn first")

	return cmd
}

func newChatSyncCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Merge the portal's stored conversation into the local transcript",
		RunE: func(cmd *cobra.Command, _ []string) error {
			merged, err := app.conversation.Sync(cmd.Context())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Merged %d turns\n", merged)
			return nil
		},
	}
}

func newChatPruneCmd(app *app) *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Drop turns that never received a reply",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pruned, err := app.conversation.PrunePending(cmd.Context(), olderThan)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d pending turns\n", pruned)
			return nil
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", 24*time.Hour, "Only prune turns pending for longer than this")

	return cmd
}

func newMessagesCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "messages",
		Short: "List patient conversations addressed to you (doctors only)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			turns, err := app.conversation.DoctorMessages(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), turns)
			}

			rendered, err := app.renderers.transcript("Patient messages", turns, app.renderOptions())
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
