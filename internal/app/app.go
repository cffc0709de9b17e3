package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/daytona/config"
	"github.com/guttosm/daytona/internal/api"
	"github.com/guttosm/daytona/internal/logger"
	"github.com/guttosm/daytona/internal/service"
	"github.com/guttosm/daytona/internal/storage"
)

// InitializeApp sets up all application dependencies and returns a fully
// configured Gin router, a cleanup function for graceful shutdown, and any
// error encountered during initialization.
//
// Responsibilities:
//   - Opens the SQLite store using InitSQLite().
//   - Ensures the users and trades tables exist. A schema failure is logged,
//     not propagated: the service stays up and later queries fail at
//     execution time.
//   - Initializes the repository, service, and HTTP handler layers.
//   - Configures the Gin router and registers health probes.
//   - Provides a cleanup function to close the store.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Open the in-process store
	// indirection for unit testing
	db, err := sqliteOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize sqlite: %w", err)
	}

	// Initialize repository layer (responsible for store access)
	repo := storage.NewTradesRepository(db)

	if err := repo.InitSchema(context.Background()); err != nil {
		logger.L().Error().Err(err).Msg("schema setup failed")
	} else {
		logger.L().Info().Msg("users and trades tables ready")
	}

	// Initialize service layer (business logic)
	svc := service.NewTradeService(repo)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(db.Ping)
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		if err := db.Close(); err != nil {
			logger.L().Error().Err(err).Msg("store close failed")
			return
		}
		logger.L().Info().Msg("store connection closed")
	}

	return router, cleanup, nil
}
