package catalog

import (
	"context"

	"github.com/bnema/medportal-cli/internal/domain"
	"github.com/bnema/medportal-cli/internal/ports"
	"github.com/bnema/medportal-cli/pkg/logging"
)

// Source answers from the keyword catalog without any network call.
type Source struct {
	catalog domain.Catalog
	clock   ports.Clock
	logger  *logging.Logger
}

var _ ports.ReplySource = (*Source)(nil)

func NewSource(catalog domain.Catalog, clock ports.Clock, logger *logging.Logger) *Source {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = logging.Discard()
	}

	return &Source{catalog: catalog, clock: clock, logger: logger}
}

func (s *Source) Reply(ctx context.Context, userID, message string) (domain.ChatReply, error) {
	if err := ctx.Err(); err != nil {
		return domain.ChatReply{}, err
	}

	response := s.catalog.Fallback()
	if rule, ok := s.catalog.MatchRule(message); ok {
		response = rule.Response
		s.logger.Debug("catalog rule matched", "user_id", userID, "keywords", rule.Keywords)
	} else {
		s.logger.Debug("catalog fallback used", "user_id", userID)
	}

	return domain.ChatReply{
		Response:  response,
		Timestamp: s.clock.Now().UTC(),
		Offline:   true,
	}, nil
}
