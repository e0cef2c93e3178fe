package usecase

import (
	"museumpass/internal/data/repository"
	"museumpass/pkg/events"
	"museumpass/pkg/llm"
	"museumpass/pkg/lock"
	"museumpass/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Booking BookingService
	Chat    ChatService
	Catalog CatalogService
}

// Dependencies are the infrastructure pieces chosen at startup.
type Dependencies struct {
	Locker    lock.Locker
	Publisher events.Publisher
	Assistant llm.Provider
	Clock     Clock
}

func NewService(repo *repository.Repository, deps Dependencies, config *utils.Config, log *zap.Logger) *Service {
	if deps.Locker == nil {
		deps.Locker = lock.NewLocal()
	}

	rules := NewBookingRules(config.Booking.MaxVisitorsPerDay, config.Booking.HorizonDays, deps.Clock)
	threshold := config.Booking.MatchThreshold

	return &Service{
		Booking: NewBookingService(repo, rules, threshold, deps.Locker, deps.Publisher, deps.Clock, log),
		Chat:    NewChatService(repo.Catalog, deps.Assistant, threshold, log),
		Catalog: NewCatalogService(repo, rules, threshold, log),
	}
}
