package adaptor

import (
	"errors"
	"net/http"

	"bus-booking/internal/usecase"
	"bus-booking/pkg/database"
	"bus-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Booking *BookingHandler
	Health  *HealthHandler
}

func NewHandler(service *usecase.Service, db *database.Client, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Booking: NewBookingHandler(service.Booking, log),
		Health:  NewHealthHandler(db, log),
	}
}

// handleServiceError maps the service error taxonomy onto one response.
// Nothing propagates past here; unknown errors become an opaque 500.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" failed validation", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrUnauthenticated):
		log.Warn(operation+" unauthenticated", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" target missing", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
