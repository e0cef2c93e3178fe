package usecase

import (
	"context"
	"errors"
	"testing"

	"museumpass/internal/data/repository"
	"museumpass/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestChatService(assistant llm.Provider) ChatService {
	catalog := repository.NewCatalogRepository(testMuseums(), zap.NewNop())
	return NewChatService(catalog, assistant, 80, zap.NewNop())
}

func TestChatIntents(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "greeting",
			message: "Hello there!",
			want:    "Hello! How can I assist you with museum information or ticket booking today?",
		},
		{
			name:    "greeting phrase",
			message: "good evening",
			want:    "Hello! How can I assist you with museum information or ticket booking today?",
		},
		{
			name:    "thanks",
			message: "Thanks a lot",
			want:    "You're welcome! Let me know if you need more information.",
		},
		{
			name:    "booking without museum",
			message: "I want to book a ticket",
			want:    "Please specify the museum name for booking.",
		},
		{
			name:    "elite tier",
			message: "What does the elite ticket include?",
			want:    tierInfo[0].answer,
		},
		{
			name:    "tier comparison",
			message: "standard vs premium",
			want:    tierInfo[1].answer,
		},
		{
			name:    "tier generic",
			message: "which one is affordable",
			want:    "I can provide details on Standard, Premium and Elite tickets. Let me know which one interests you.",
		},
		{
			name:    "kids price",
			message: "price for kids at national museum",
			want:    "Price for Standard ticket: ₹50 for kids at National Museum",
		},
		{
			name:    "kids price unknown museum",
			message: "price for children at the louvre",
			want:    "Sorry, I couldn't find a matching museum for your request.",
		},
		{
			name:    "price",
			message: "ticket price of salar jung museum",
			want:    "Price for Standard ticket at Salar Jung Museum: ₹50",
		},
		{
			name:    "price unknown museum",
			message: "how much does it cost",
			want:    "I couldn't find ticket price details for that museum. Please try specifying the exact museum name.",
		},
		{
			name:    "rating by title",
			message: "rating of indian museum",
			want:    "Indian Museum - Rating: ⭐ 4.4",
		},
		{
			name:    "rating by location",
			message: "what is the rating for the museum in hyderabad",
			want:    "Salar Jung Museum - Rating: ⭐ 4.6",
		},
		{
			name:    "contact",
			message: "contact number for salar jung museum",
			want:    "Salar Jung Museum - Contact: 040-24576443",
		},
		{
			name:    "location",
			message: "museums in hyderabad",
			want:    "Here are the museums in Telangana:\n- Salar Jung Museum, ⭐4.6, Address: Salar Jung Marg, Hyderabad",
		},
		{
			name:    "top n",
			message: "show me the top 2 museums",
			want:    "Here are the top museums:\n- Salar Jung Museum, ⭐ 4.6\n- National Museum, ⭐ 4.5",
		},
	}

	assistant := &fakeAssistant{reply: "unused"}
	svc := newTestChatService(assistant)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Reply(context.Background(), tt.message)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Empty(t, assistant.requests, "canned intents never reach the assistant")
}

func TestChatBookingHintNamesMuseum(t *testing.T) {
	svc := newTestChatService(nil)

	got, err := svc.Reply(context.Background(), "I'd like to book National Museum")
	require.NoError(t, err)
	assert.Contains(t, got, "National Museum")
	assert.Contains(t, got, "/book_ticket")
}

func TestChatIntentPrecedence(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{name: "greeting beats price", message: "hello, what's the price of national museum", want: "greeting"},
		{name: "thanks beats booking", message: "thanks, book national museum", want: "thanks"},
		{name: "booking beats tier", message: "book an elite ticket", want: "booking"},
		{name: "tier beats price", message: "premium ticket price", want: "tier"},
		{name: "kids price beats price", message: "ticket price for kids", want: "kids_price"},
		{name: "location beats top", message: "top 3 museums in kolkata", want: "location"},
	}

	svc := newTestChatService(nil).(*chatService)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := cleanInput(tt.message)
			var matched string
			for _, in := range svc.intents {
				if in.match(context.Background(), text) {
					matched = in.name
					break
				}
			}
			assert.Equal(t, tt.want, matched)
		})
	}
}

func TestChatGreetingNeedsWholeWord(t *testing.T) {
	assistant := &fakeAssistant{reply: "Museums preserve history."}
	svc := newTestChatService(assistant)

	got, err := svc.Reply(context.Background(), "which museum has history exhibits")
	require.NoError(t, err)
	assert.Equal(t, "Museums preserve history.", got)
}

func TestChatFallsBackToAssistant(t *testing.T) {
	assistant := &fakeAssistant{reply: "I only provide information about museums and ticket booking."}
	svc := newTestChatService(assistant)

	got, err := svc.Reply(context.Background(), "  Who won the cricket match?  ")
	require.NoError(t, err)
	assert.Equal(t, "I only provide information about museums and ticket booking.", got)

	require.Len(t, assistant.requests, 1)
	req := assistant.requests[0]
	assert.Equal(t, assistantPrompt, req.System)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, llm.RoleUser, req.Messages[0].Role)
	assert.Equal(t, "Who won the cricket match?", req.Messages[0].Content)
}

func TestChatTopZeroGoesToAssistant(t *testing.T) {
	assistant := &fakeAssistant{reply: "How many museums would you like to see?"}
	svc := newTestChatService(assistant)

	got, err := svc.Reply(context.Background(), "top 0 please")
	require.NoError(t, err)
	assert.Equal(t, "How many museums would you like to see?", got)
	assert.Len(t, assistant.requests, 1)
}

func TestChatAssistantErrors(t *testing.T) {
	_, err := newTestChatService(&fakeAssistant{err: errors.New("connection refused")}).
		Reply(context.Background(), "tell me something about art")
	assert.ErrorIs(t, err, ErrAssistantUnavailable)

	_, err = newTestChatService(nil).Reply(context.Background(), "tell me something about art")
	assert.ErrorIs(t, err, ErrAssistantUnavailable)
}

func TestChatEmptyMessage(t *testing.T) {
	_, err := newTestChatService(nil).Reply(context.Background(), " ?! ")
	assert.ErrorIs(t, err, ErrValidation)
}
