// Package llm talks to the conversational model that answers free-form
// questions the canned intents do not cover.
package llm

import "context"

// Role of a chat message.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a conversation.
type Message struct {
	Role    string
	Content string
}

// Request is a single completion request. System is sent as the first
// message ahead of Messages.
type Request struct {
	System   string
	Messages []Message
}

// Provider sends a request and blocks until the full reply is available.
type Provider interface {
	Complete(ctx context.Context, request Request) (string, error)
}
