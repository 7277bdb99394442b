package repository

import (
	"bus-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Booking BookingRepository
}

func NewRepository(db *database.Client, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Booking: NewBookingRepository(db, log),
	}
}
