package adaptor

import (
	"errors"
	"net/http"

	"museumpass/internal/usecase"
	"museumpass/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Booking *BookingHandler
	Chat    *ChatHandler
	Museum  *MuseumHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Booking: NewBookingHandler(service.Booking, log),
		Chat:    NewChatHandler(service.Chat, log),
		Museum:  NewMuseumHandler(service.Catalog, log),
	}
}

// Welcome handles GET /
func Welcome(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Welcome to MuseumPass AI", nil)
}

// writeServiceError maps usecase errors to HTTP responses.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, usecase.ErrMuseumNotFound), errors.Is(err, usecase.ErrBookingNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, usecase.ErrInvalidTier),
		errors.Is(err, usecase.ErrInvalidDate),
		errors.Is(err, usecase.ErrPastDate),
		errors.Is(err, usecase.ErrDateTooFar),
		errors.Is(err, usecase.ErrFullyBooked),
		errors.Is(err, usecase.ErrInvalidSlot):
		log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case errors.Is(err, usecase.ErrAssistantUnavailable):
		log.Error(operation+" failed - assistant unavailable",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadGateway(w, "Assistant is unavailable, please try again later")

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
