package main

import (
	"log"

	approuters "github.com/ayushh0406/swap-seva-odoo1/internal/app_routers"
	"github.com/ayushh0406/swap-seva-odoo1/internal/configuration"
)

func main() {
	container, err := configuration.BuildContainer()
	if err != nil {
		log.Fatalf("Failed to build container: %v", err)
	}

	// Ensure cleanup on shutdown
	defer container.Close()

	// Setup routers
	approuters.StartServer(container)
}
