package wire

import (
	"bus-booking/internal/adaptor"
	"bus-booking/internal/session"
	"bus-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	sessions *session.Store,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(sessions, log))

		// POST /bookTicket - create a booking for the signed-in user
		r.Post("/bookTicket", bookingHandler.BookTicket)
	})

	// ==================== PUBLIC ROUTES ====================
	// Lookups stay unauthenticated so a booking reference or user id
	// can be shared as an itinerary link. Flagged as a conscious
	// trade-off rather than tightened silently.
	r.Get("/getBooking/{bookingId}", bookingHandler.GetBooking)
	r.Get("/getBookingHistory/{id}", bookingHandler.GetBookingHistory)
}
