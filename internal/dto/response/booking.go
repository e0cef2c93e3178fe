package response

import (
	"time"

	"museumpass/internal/data/entity"
)

type BookingResponse struct {
	ID         string    `json:"id"`
	Reference  string    `json:"reference,omitempty"`
	Name       string    `json:"name"`
	Museum     string    `json:"museum"`
	Adults     int       `json:"adults"`
	Kids       int       `json:"kids"`
	TicketType string    `json:"ticket_type"`
	Date       string    `json:"date"`
	TimeSlot   string    `json:"time_slot"`
	TotalPrice float64   `json:"total_price"`
	BookedAt   time.Time `json:"booked_at"`
}

// BookingConfirmation is returned once a booking is stored. QRCode is a
// base64 PNG encoding the booking reference.
type BookingConfirmation struct {
	BookingResponse
	QRCode string `json:"qr_code,omitempty"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID.String(),
		Reference:  b.Reference,
		Name:       b.Name,
		Museum:     b.Museum,
		Adults:     b.Visitors.Adults,
		Kids:       b.Visitors.Kids,
		TicketType: b.TicketType,
		Date:       b.Date,
		TimeSlot:   b.TimeSlot,
		TotalPrice: b.TotalPrice,
		BookedAt:   b.BookedAt,
	}
}
