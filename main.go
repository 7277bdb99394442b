// main.go
package main

import (
	"context"
	"log"
	"time"

	"bus-booking/cmd"
	"bus-booking/internal/data/repository"
	"bus-booking/internal/session"
	"bus-booking/internal/wire"
	"bus-booking/pkg/database"
	"bus-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.Bool("production", config.App.Production),
	)

	// Database client connects lazily; warm it up so a cold database
	// shows in the logs now instead of on the first request.
	db := database.NewClient(config.Database, logger)
	defer db.Close()

	warmupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.EnsureSchema(warmupCtx); err != nil {
		logger.Warn("Database not reachable yet, operations will retry on demand", zap.Error(err))
	} else {
		logger.Info("Database schema ready")
	}
	cancel()

	// In-memory session store: constructed here, injected everywhere,
	// emptied on shutdown. A restart signs everyone out.
	sessions := session.NewStore()
	defer sessions.Clear()

	// Initialize repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, sessions, db, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
