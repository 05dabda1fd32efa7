// Package main is the entry point for the load-planner application.
//
// @title           Load Planner API
// @version         1.0.0
// @description     Plans how a household inventory is loaded into moving vehicles.
//
//	It picks the fewest and smallest vehicles that carry every item and returns the loading sequence of each.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/load-planner
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
// @tag.name        Plans
// @tag.description Load planning operations
//
// @tag.name        Vehicle Catalog
// @tag.description Vehicle catalog management
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"github.com/rs/zerolog/log"

	_ "github.com/guttosm/load-planner/docs" // swagger docs

	"github.com/guttosm/load-planner/config"
	"github.com/guttosm/load-planner/internal/app"
)

func main() {
	cfg := config.Load()

	application := app.InitializeApp(cfg)
	server := app.NewServer(application.Router, cfg.Server.Port, cfg.Server.RequestTimeout)

	err := server.Run()
	application.Close()
	if err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
