package usecase

import (
	"bus-booking/internal/data/repository"
	"bus-booking/internal/session"
	"bus-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Booking BookingService
}

func NewService(repo *repository.Repository, sessions *session.Store, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, sessions, log),
		Booking: NewBookingService(repo, log),
	}
}
