package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/aydink/acadmin/internal/pkg/logger"
	"github.com/aydink/acadmin/internal/server"
)

// @title Academic Administration API
// @version 1.0
// @description Role-based backend for course enrollment, grading and class analysis

// @host localhost:8080
// @BasePath /api
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// Environment overrides are optional; a missing .env file is fine
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, using process environment")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
