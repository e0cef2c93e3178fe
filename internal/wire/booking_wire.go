package wire

import (
	"museumpass/internal/adaptor"
	"museumpass/pkg/middleware"
	"museumpass/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// POST /book_ticket - Create a booking
	r.Post("/book_ticket", bookingHandler.CreateBooking)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.AdminToken(config.Admin.TokenHash, log))

		// GET /api/admin/bookings - List every booking
		r.Get("/", bookingHandler.ListBookings)

		// GET /api/admin/bookings/{id} - View one booking
		r.Get("/{id}", bookingHandler.GetBookingByID)
	})
}
