package main

import (
	"log"

	echomiddleware "github.com/labstack/echo/v4/middleware"

	"shopsync/internal/adapter/api"
	"shopsync/internal/adapter/api/fixture"
	"shopsync/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store := fixture.NewStore(cfg.DevSigningKey)
	e := api.NewServer(store)
	e.Use(echomiddleware.Logger())

	log.Printf("Starting development API on port %s (demo@shopsync.dev / password)...", cfg.DevServerPort)
	if err := e.Start(":" + cfg.DevServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
