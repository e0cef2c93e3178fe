package entity

import (
	"time"

	"github.com/google/uuid"
)

type TicketType string

const (
	TicketStandard TicketType = "standard"
	TicketPremium  TicketType = "premium"
	TicketElite    TicketType = "elite"
)

type Visitors struct {
	Adults int `json:"Adults"`
	Kids   int `json:"Kids"`
}

func (v Visitors) Total() int {
	return v.Adults + v.Kids
}

// Booking is a confirmed ledger record. The JSON keys match the bookings.json
// layout so existing ledgers keep loading.
type Booking struct {
	ID         uuid.UUID `json:"ID"`
	Reference  string    `json:"Reference,omitempty"`
	Name       string    `json:"Name"`
	Museum     string    `json:"Museum"`
	Visitors   Visitors  `json:"Visitors"`
	TicketType string    `json:"Ticket Type"`
	Date       string    `json:"Date"`
	TimeSlot   string    `json:"Time Slot"`
	TotalPrice float64   `json:"Total Price"`
	BookedAt   time.Time `json:"Booked At"`
}
