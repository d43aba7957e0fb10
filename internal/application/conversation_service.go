package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bnema/medportal-cli/internal/domain"
	"github.com/bnema/medportal-cli/internal/ports"
	"github.com/bnema/medportal-cli/pkg/logging"
)

type ConversationService struct {
	replies ports.ReplySource
	history ports.PortalAPI
	state   *State
	clock   ports.Clock
	logger  *logging.Logger
}

func NewConversationService(replies ports.ReplySource, history ports.PortalAPI, state *State, clock ports.Clock, logger *logging.Logger) *ConversationService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = logging.Discard()
	}

	return &ConversationService{
		replies: replies,
		history: history,
		state:   state,
		clock:   clock,
		logger:  logger,
	}
}

// Send records message as a pending turn, asks the reply source, and settles
// the turn. A reply failure is never returned: the turn carries the failure
// placeholder instead. Only input and sign-in problems are errors.
func (s *ConversationService) Send(ctx context.Context, message string) (domain.ConversationTurn, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return domain.ConversationTurn{}, domain.NewValidationError("message", "is empty")
	}

	user, ok := s.state.User()
	if !ok {
		return domain.ConversationTurn{}, domain.ErrNotAuthenticated
	}

	pending, err := s.state.AppendPending(ctx, message)
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) || errors.Is(err, domain.ErrForeignTurn) {
			return domain.ConversationTurn{}, err
		}
		s.logger.Warn("failed to mirror pending turn", "turn_id", pending.ID, "error", err)
	}

	reply, replyErr := s.replies.Reply(ctx, user.ID, message)
	if replyErr != nil {
		s.logger.Warn("chat reply failed", "turn_id", pending.ID, "error", replyErr)
		return s.settle(ctx, pending, func() (domain.ConversationTurn, bool, error) {
			return s.state.FailTurn(ctx, pending.ID)
		})
	}

	return s.settle(ctx, pending, func() (domain.ConversationTurn, bool, error) {
		return s.state.ResolveTurn(ctx, pending.ID, reply)
	})
}

func (s *ConversationService) settle(ctx context.Context, pending domain.ConversationTurn, apply func() (domain.ConversationTurn, bool, error)) (domain.ConversationTurn, error) {
	turn, found, err := apply()
	if err != nil {
		s.logger.Warn("failed to mirror settled turn", "turn_id", pending.ID, "error", err)
	}
	if !found {
		// The session was reset while the reply was in flight.
		s.logger.Debug("settled turn no longer in session", "turn_id", pending.ID)
		return pending, nil
	}
	return turn, nil
}

// Sync merges the portal's history for the signed-in user. On failure the
// local session is left as is and the error is returned for reporting.
func (s *ConversationService) Sync(ctx context.Context) (int, error) {
	user, ok := s.state.User()
	if !ok {
		return 0, domain.ErrNotAuthenticated
	}

	scope := ports.PatientScope(user.ID)
	remote, err := s.history.ChatHistory(ctx, scope)
	if err != nil {
		s.logger.Warn("chat history unavailable, keeping local session", "user_id", user.ID, "error", err)
		return 0, fmt.Errorf("fetch chat history: %w", err)
	}

	ignored, err := s.state.MergeHistory(ctx, remote)
	if ignored > 0 {
		s.logger.Warn("ignored chat turns for another user", "count", ignored)
	}
	if err != nil {
		return len(remote) - ignored, fmt.Errorf("mirror chat history: %w", err)
	}

	return len(remote) - ignored, nil
}

func (s *ConversationService) Transcript() []domain.ConversationTurn {
	return s.state.Transcript()
}

func (s *ConversationService) History() []domain.ConversationTurn {
	return s.state.History()
}

// DoctorMessages lists chat turns addressed to the signed-in doctor, newest
// first. The portal may not support this query; that yields an empty list.
func (s *ConversationService) DoctorMessages(ctx context.Context) ([]domain.ConversationTurn, error) {
	user, ok := s.state.User()
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	if !user.IsDoctor() {
		return nil, fmt.Errorf("doctor messages: %w", domain.ErrPermissionDenied)
	}

	turns, err := s.history.ChatHistory(ctx, ports.DoctorScope(user.ID))
	if err != nil {
		s.logger.Warn("doctor chat history unavailable", "doctor_id", user.ID, "error", err)
		return []domain.ConversationTurn{}, nil
	}

	messages := append(make([]domain.ConversationTurn, 0, len(turns)), turns...)
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp.After(messages[j].Timestamp)
	})

	return messages, nil
}

// PrunePending drops turns that have been pending longer than olderThan.
func (s *ConversationService) PrunePending(ctx context.Context, olderThan time.Duration) (int, error) {
	if olderThan <= 0 {
		return 0, domain.NewValidationError("older-than", "must be positive")
	}

	return s.state.PrunePending(ctx, s.clock.Now().Add(-olderThan))
}
