package wire

import (
	"bus-booking/internal/adaptor"
	"bus-booking/internal/data/repository"
	"bus-booking/internal/session"
	"bus-booking/internal/usecase"
	"bus-booking/pkg/database"
	"bus-booking/pkg/middleware"
	"bus-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes
func Wiring(repo *repository.Repository, sessions *session.Store, db *database.Client, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, sessions, config, logger)
	handler := adaptor.NewHandler(service, db, logger)

	router := setupRouter(handler, sessions, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	sessions *session.Store,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, sessions, logger)
	wireBooking(r, handler.Booking, sessions, logger)

	// Health check endpoint
	r.Get("/health", handler.Health.Health)

	return r
}
