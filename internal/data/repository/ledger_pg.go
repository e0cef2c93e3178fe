package repository

import (
	"context"
	"errors"
	"fmt"

	"museumpass/internal/data/entity"
	"museumpass/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type postgresLedger struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPostgresLedger(db database.PgxIface, log *zap.Logger) BookingLedger {
	return &postgresLedger{
		db:  db,
		log: log.With(zap.String("repository", "postgres_ledger")),
	}
}

func (r *postgresLedger) Append(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, reference, name, museum, adults, kids, ticket_type, booking_date, time_slot, total_price, booked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Reference,
		booking.Name,
		booking.Museum,
		booking.Visitors.Adults,
		booking.Visitors.Kids,
		booking.TicketType,
		booking.Date,
		booking.TimeSlot,
		booking.TotalPrice,
		booking.BookedAt,
	)

	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("museum", booking.Museum),
		)
		return fmt.Errorf("append booking %s: %w", booking.ID, err)
	}

	return nil
}

func (r *postgresLedger) CapacityUsed(ctx context.Context, museum, date string) (int, error) {
	query := `
		SELECT COALESCE(SUM(adults + kids), 0)
		FROM bookings
		WHERE LOWER(museum) = LOWER($1) AND booking_date = $2
	`

	var used int64
	if err := r.db.QueryRow(ctx, query, museum, date).Scan(&used); err != nil {
		r.log.Error("Failed to sum capacity",
			zap.Error(err),
			zap.String("museum", museum),
			zap.String("date", date),
		)
		return 0, fmt.Errorf("capacity for %s on %s: %w", museum, date, err)
	}

	return int(used), nil
}

const selectBookings = `
	SELECT id, reference, name, museum, adults, kids, ticket_type, booking_date, time_slot, total_price, booked_at
	FROM bookings
`

func (r *postgresLedger) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	rows, err := r.db.Query(ctx, selectBookings+" ORDER BY booked_at")
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking", zap.Error(err))
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}

	return bookings, nil
}

func (r *postgresLedger) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	booking, err := scanBooking(r.db.QueryRow(ctx, selectBookings+" WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id, err)
	}

	return booking, nil
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID,
		&b.Reference,
		&b.Name,
		&b.Museum,
		&b.Visitors.Adults,
		&b.Visitors.Kids,
		&b.TicketType,
		&b.Date,
		&b.TimeSlot,
		&b.TotalPrice,
		&b.BookedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
