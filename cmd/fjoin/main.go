package main

import (
	"os"

	"github.com/baldierot/fjoin/internal/app"
	"github.com/baldierot/fjoin/internal/config"
)

func main() {
	// Load configuration from command-line flags
	cfg := config.New()

	// Create and run the application
	application := app.New(cfg)

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
