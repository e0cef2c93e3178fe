package usecase

import (
	"context"
	"fmt"
	"strings"

	"museumpass/internal/data/repository"
	"museumpass/pkg/llm"

	"go.uber.org/zap"
)

const assistantPrompt = "You are MuseumPass AI, an expert on museums and ticket booking. " +
	"ONLY use the information provided in the museum catalog. " +
	"DO NOT invent museums, locations, or details that are not explicitly in the catalog. " +
	"If a user asks about a museum not listed, respond with: " +
	"'I can only provide information about museums available in my database.' " +
	"If a user asks about unrelated topics (e.g., politics, weather, sports, or general news), respond with: " +
	"'I only provide information about museums and ticket booking.' " +
	"Never mention where the catalog is stored."

type ChatService interface {
	Reply(ctx context.Context, message string) (string, error)
}

type chatService struct {
	catalog   repository.CatalogRepository
	matcher   *museumMatcher
	assistant llm.Provider
	threshold int
	intents   []intent
	log       *zap.Logger
}

func NewChatService(
	catalog repository.CatalogRepository,
	assistant llm.Provider,
	matchThreshold int,
	log *zap.Logger,
) ChatService {
	s := &chatService{
		catalog:   catalog,
		matcher:   newMuseumMatcher(catalog, matchThreshold),
		assistant: assistant,
		threshold: matchThreshold,
		log:       log.With(zap.String("service", "chat")),
	}
	s.intents = s.buildIntents()
	return s
}

// Reply answers from the first matching canned intent and falls back to the
// assistant for everything else.
func (s *chatService) Reply(ctx context.Context, message string) (string, error) {
	text := strings.TrimSpace(cleanInput(message))
	if text == "" {
		return "", fmt.Errorf("%w: message is empty", ErrValidation)
	}

	for _, in := range s.intents {
		if in.match(ctx, text) {
			s.log.Debug("Intent matched", zap.String("intent", in.name))
			return in.reply(ctx, text), nil
		}
	}

	return s.ask(ctx, strings.TrimSpace(message))
}

func (s *chatService) ask(ctx context.Context, message string) (string, error) {
	if s.assistant == nil {
		return "", fmt.Errorf("%w: no assistant configured", ErrAssistantUnavailable)
	}

	reply, err := s.assistant.Complete(ctx, llm.Request{
		System:   assistantPrompt,
		Messages: []llm.Message{{Role: llm.RoleUser, Content: message}},
	})
	if err != nil {
		s.log.Error("Assistant request failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrAssistantUnavailable, err)
	}

	return reply, nil
}
