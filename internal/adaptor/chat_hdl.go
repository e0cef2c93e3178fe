package adaptor

import (
	"encoding/json"
	"net/http"

	"museumpass/internal/dto/request"
	"museumpass/internal/dto/response"
	"museumpass/internal/usecase"
	"museumpass/pkg/utils"

	"go.uber.org/zap"
)

type ChatHandler struct {
	service usecase.ChatService
	log     *zap.Logger
}

func NewChatHandler(service usecase.ChatService, log *zap.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		log:     log.With(zap.String("handler", "chat")),
	}
}

// Chat handles POST /chat
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req request.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	reply, err := h.service.Reply(r.Context(), req.Message)
	if err != nil {
		h.handleServiceError(w, err, "chat")
		return
	}

	utils.ResponseSuccess(w, "success", response.ChatResponse{Response: reply})
}

func (h *ChatHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	writeServiceError(w, h.log, err, operation)
}
