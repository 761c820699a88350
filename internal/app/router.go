// Package app provides router configuration.
package app

import (
	"github.com/stockops/allocation-service/config"
	"github.com/stockops/allocation-service/internal/http"
	"github.com/stockops/allocation-service/internal/repository"
	"github.com/stockops/allocation-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	allocator service.Allocator,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var runsRepo repository.RunsRepositoryInterface
	var loggingService service.LoggingService
	if dbComponents != nil {
		runsRepo = dbComponents.RunsRepo
		loggingService = dbComponents.LoggingService
	}

	// Initialize run history service
	var runsService service.RunsService
	if runsRepo != nil {
		runsService = service.NewRunsService(runsRepo)
	}

	handler := http.NewHandler(allocator, runsService, http.WithMaxFileSize(cfg.Upload.MaxFileSize))
	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if dbComponents != nil {
		if dbComponents.RunsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_runs", dbComponents.RunsCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	// Initialize authentication service
	var authService service.AuthService
	if dbComponents != nil && dbComponents.UserRepo != nil {
		authService = service.NewAuthService(
			dbComponents.UserRepo,
			dbComponents.TokenRepo,
			cfg.Auth,
		)
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
		AuthService:       authService,
		Allocator:         allocator,
		RunsService:       runsService,
		MaxFileSize:       cfg.Upload.MaxFileSize,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
