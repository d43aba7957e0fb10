package ports

import (
	"context"

	"github.com/bnema/medportal-cli/internal/domain"
)

// ReplySource answers one chat message.
type ReplySource interface {
	Reply(ctx context.Context, userID, message string) (domain.ChatReply, error)
}
