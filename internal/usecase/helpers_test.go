package usecase

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"museumpass/internal/data/entity"
	"museumpass/internal/data/repository"
	"museumpass/pkg/llm"

	"go.uber.org/zap"
)

var fixedNow = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func testMuseums() []*entity.Museum {
	return []*entity.Museum{
		{Title: "National Museum", Location: "New Delhi", State: "Delhi", Price: 100, Rating: 4.5, Contact: "011-23019272", Address: "Janpath, New Delhi"},
		{Title: "Salar Jung Museum", Location: "Hyderabad", State: "Telangana", Price: 50, Rating: 4.6, Contact: "040-24576443", Address: "Salar Jung Marg, Hyderabad"},
		{Title: "Indian Museum", Location: "Kolkata", State: "West Bengal", Price: 75, Rating: 4.4, Contact: "033-22861702", Address: "27 Jawaharlal Nehru Road, Kolkata"},
	}
}

func newTestRepo(t *testing.T) *repository.Repository {
	t.Helper()
	log := zap.NewNop()
	catalog := repository.NewCatalogRepository(testMuseums(), log)
	ledger := repository.NewFileLedger(filepath.Join(t.TempDir(), "bookings.json"), log)
	return repository.NewRepository(catalog, ledger)
}

type publishedEvent struct {
	key     string
	payload any
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, key string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, publishedEvent{key: key, payload: payload})
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type fakeAssistant struct {
	requests []llm.Request
	reply    string
	err      error
}

func (a *fakeAssistant) Complete(_ context.Context, req llm.Request) (string, error) {
	a.requests = append(a.requests, req)
	return a.reply, a.err
}
