package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/monocle-dev/rentals/internal/config"
	"github.com/monocle-dev/rentals/internal/logging"
	"github.com/monocle-dev/rentals/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	if err != nil {
		log.Fatalf("Invalid logging configuration: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)

	app, err := server.NewApp(cfg, logger)
	if err != nil {
		logger.Error(context.Background(), "Failed to start server", "error", err)
		os.Exit(1)
	}

	if err := app.Run(context.Background()); err != nil {
		logger.Error(context.Background(), "Server stopped with error", "error", err)
		os.Exit(1)
	}
}
