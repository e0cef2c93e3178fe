package repository

import (
	"context"

	"museumpass/internal/data/entity"

	"github.com/google/uuid"
)

// BookingLedger is the append-only store of confirmed bookings.
type BookingLedger interface {
	Append(ctx context.Context, booking *entity.Booking) error
	// CapacityUsed sums adults and kids booked for museum (case-insensitive) on date.
	CapacityUsed(ctx context.Context, museum, date string) (int, error)
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	// FindByID returns nil, nil when the booking does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
}
