package wire

import (
	"museumpass/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireChat(r chi.Router, chatHandler *adaptor.ChatHandler) {
	// POST /chat - Canned answers with assistant fallback
	r.Post("/chat", chatHandler.Chat)
}
