// Package main is the entry point for the allocation-service application.
//
// @title           Allocation Service API
// @version         1.0.0
// @description     API for allocating inventory adjustment targets across stock lots.
//
//	This service draws each item's adjustment target from the smallest lots first
//	and reports which lots were fully or partially consumed.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/stockops/allocation-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Allocations
// @tag.description Allocation run and export operations
//
// @tag.name        Runs
// @tag.description Allocation run history
//
// @tag.name        Auth
// @tag.description Authentication and authorization endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/stockops/allocation-service/docs" // swagger docs

	"github.com/stockops/allocation-service/config"
	"github.com/stockops/allocation-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
