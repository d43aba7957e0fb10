package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/bnema/medportal-cli/internal/domain"
	"github.com/bnema/medportal-cli/internal/ports"
	"github.com/bnema/medportal-cli/pkg/logging"
)

const DefaultSystemPrompt = "You are a concise, professional medical assistant inside a healthcare appointment portal. " +
	"Help patients triage symptoms, answer basic health questions and suggest next steps before they see a doctor. " +
	"Give likely causes, urgency and self-care tips in under 100 words of plain language. " +
	"Ask at most two follow-up questions when details are missing. " +
	"Remind users you are not a substitute for medical advice, and recommend booking an appointment when symptoms are severe or persist. " +
	"Refer prescription or lab questions to a doctor."

type chatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Config struct {
	BaseURL      string
	APIKey       string
	Model        string
	SystemPrompt string
	HTTPClient   *http.Client
}

// Source asks an OpenAI-compatible chat completion endpoint. Replies are not
// stored by the portal, so they are marked offline.
type Source struct {
	client       chatClient
	model        string
	systemPrompt string
	clock        ports.Clock
	logger       *logging.Logger
}

var _ ports.ReplySource = (*Source)(nil)

func NewSource(cfg Config, clock ports.Clock, logger *logging.Logger) (*Source, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("llm api key is required")
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, errors.New("llm model is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	if cfg.HTTPClient != nil {
		clientConfig.HTTPClient = cfg.HTTPClient
	}

	return newSource(openai.NewClientWithConfig(clientConfig), cfg.Model, cfg.SystemPrompt, clock, logger), nil
}

func newSource(client chatClient, model, systemPrompt string, clock ports.Clock, logger *logging.Logger) *Source {
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = logging.Discard()
	}

	return &Source{
		client:       client,
		model:        model,
		systemPrompt: systemPrompt,
		clock:        clock,
		logger:       logger,
	}
}

func (s *Source) Reply(ctx context.Context, userID, message string) (domain.ChatReply, error) {
	if err := ctx.Err(); err != nil {
		return domain.ChatReply{}, err
	}

	response, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: s.systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
		Temperature: 0.2,
		User:        userID,
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.ChatReply{}, ctxErr
		}
		return domain.ChatReply{}, fmt.Errorf("chat completion: %w: %w", domain.ErrRemoteUnavailable, err)
	}
	if len(response.Choices) == 0 {
		return domain.ChatReply{}, fmt.Errorf("chat completion: %w: no choices returned", domain.ErrRemoteUnavailable)
	}

	content := strings.TrimSpace(response.Choices[0].Message.Content)
	if content == "" {
		return domain.ChatReply{}, fmt.Errorf("chat completion: %w: empty reply", domain.ErrRemoteUnavailable)
	}

	s.logger.Debug("llm reply received", "user_id", userID, "model", s.model, "total_tokens", response.Usage.TotalTokens)

	return domain.ChatReply{
		Response:  content,
		Timestamp: s.clock.Now().UTC(),
		Offline:   true,
	}, nil
}
