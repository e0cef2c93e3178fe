package request

type CreateBookingRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	MuseumName  string `json:"museum_name" validate:"required,max=200"`
	Adults      int    `json:"adults" validate:"gte=0,lte=500"`
	Kids        int    `json:"kids" validate:"gte=0,lte=500"`
	TicketType  string `json:"ticket_type" validate:"required"`
	BookingDate string `json:"booking_date" validate:"required"`
	TimeSlot    string `json:"time_slot" validate:"required"`
}

func (r CreateBookingRequest) Visitors() int {
	return r.Adults + r.Kids
}
