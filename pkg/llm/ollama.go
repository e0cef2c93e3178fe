package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
	"go.uber.org/zap"
)

// Ollama is a Provider backed by an Ollama server's /api/chat endpoint.
type Ollama struct {
	client  *api.Client
	model   string
	timeout time.Duration
	log     *zap.Logger
}

func NewOllama(baseURL, model string, timeout time.Duration, log *zap.Logger) (*Ollama, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse ollama url %q: %w", baseURL, err)
	}

	return &Ollama{
		client:  api.NewClient(base, http.DefaultClient),
		model:   model,
		timeout: timeout,
		log:     log.With(zap.String("provider", "ollama")),
	}, nil
}

func (o *Ollama) Complete(ctx context.Context, request Request) (string, error) {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	messages := make([]api.Message, 0, len(request.Messages)+1)
	if request.System != "" {
		messages = append(messages, api.Message{Role: RoleSystem, Content: request.System})
	}
	for _, m := range request.Messages {
		messages = append(messages, api.Message{Role: m.Role, Content: m.Content})
	}

	stream := false
	chatRequest := &api.ChatRequest{
		Model:    o.model,
		Messages: messages,
		Stream:   &stream,
	}

	start := time.Now()
	var reply strings.Builder
	err := o.client.Chat(ctx, chatRequest, func(response api.ChatResponse) error {
		reply.WriteString(response.Message.Content)
		return nil
	})
	if err != nil {
		o.log.Error("Chat request failed",
			zap.Error(err),
			zap.String("model", o.model),
			zap.Duration("duration", time.Since(start)),
		)
		return "", fmt.Errorf("ollama chat with %s: %w", o.model, err)
	}

	o.log.Debug("Chat request completed",
		zap.String("model", o.model),
		zap.Int("reply_length", reply.Len()),
		zap.Duration("duration", time.Since(start)),
	)

	return reply.String(), nil
}
