package adaptor

import (
	"encoding/json"
	"net/http"

	"bus-booking/internal/dto/request"
	"bus-booking/internal/usecase"
	"bus-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// BookTicket handles POST /bookTicket (protected)
func (h *BookingHandler) BookTicket(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.BookTicket(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "book ticket")
		return
	}

	utils.ResponseCreated(w, "Booking confirmed", booking)
}

// GetBooking handles GET /getBooking/{bookingId}
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingId")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking id is required", nil)
		return
	}

	booking, err := h.service.GetBooking(r.Context(), bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// GetBookingHistory handles GET /getBookingHistory/{id}
func (h *BookingHandler) GetBookingHistory(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User id is required", nil)
		return
	}

	history, err := h.service.GetBookingHistory(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking history")
		return
	}

	utils.ResponseSuccess(w, "success", history)
}
