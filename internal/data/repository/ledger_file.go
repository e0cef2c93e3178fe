package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"museumpass/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fileLedger struct {
	path string
	mu   sync.Mutex
	log  *zap.Logger
}

// NewFileLedger stores bookings as a JSON array in path. A missing, empty or
// unreadable file is treated as an empty ledger.
func NewFileLedger(path string, log *zap.Logger) BookingLedger {
	return &fileLedger{
		path: path,
		log:  log.With(zap.String("repository", "file_ledger")),
	}
}

func (l *fileLedger) Append(ctx context.Context, booking *entity.Booking) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	bookings := l.load()
	bookings = append(bookings, booking)

	if err := l.store(bookings); err != nil {
		l.log.Error("Failed to write ledger",
			zap.Error(err),
			zap.String("path", l.path),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("append booking %s: %w", booking.ID, err)
	}

	return nil
}

func (l *fileLedger) CapacityUsed(ctx context.Context, museum, date string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	used := 0
	for _, b := range l.load() {
		if strings.EqualFold(b.Museum, museum) && b.Date == date {
			used += b.Visitors.Total()
		}
	}
	return used, nil
}

func (l *fileLedger) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.load(), nil
}

// FindByID never matches uuid.Nil, which is what records written without an
// ID decode to.
func (l *fileLedger) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	if id == uuid.Nil {
		return nil, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, b := range l.load() {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

// load must be called with mu held.
func (l *fileLedger) load() []*entity.Booking {
	raw, err := os.ReadFile(l.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			l.log.Warn("Ledger unreadable, treating as empty", zap.Error(err), zap.String("path", l.path))
		}
		return nil
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	var bookings []*entity.Booking
	if err := json.Unmarshal(raw, &bookings); err != nil {
		l.log.Warn("Ledger corrupt, treating as empty", zap.Error(err), zap.String("path", l.path))
		return nil
	}
	return bookings
}

// store writes through a temp file so a crash never leaves half a ledger.
func (l *fileLedger) store(bookings []*entity.Booking) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(bookings); err != nil {
		return err
	}

	dir := filepath.Dir(l.path)
	tmp, err := os.CreateTemp(dir, ".bookings-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), l.path)
}
