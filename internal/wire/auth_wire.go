package wire

import (
	"bus-booking/internal/adaptor"
	"bus-booking/internal/session"
	"bus-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	sessions *session.Store,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/auth/signup", authHandler.Signup)
	r.Post("/auth/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(sessions, log))

		r.Post("/auth/logout", authHandler.Logout)
		r.Get("/auth/profile", authHandler.Profile)
	})
}
