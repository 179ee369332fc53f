// Package main implements the entry point for the tutor-api server, an
// ML-learning assistant backend that generates explanations, code examples,
// audio lessons, and diagrams through generative model integration.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/phrazzld/tutor-api/internal/config"
	"github.com/phrazzld/tutor-api/internal/platform/logger"
)

func main() {
	// A local .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	ctx := context.Background()
	app, err := newApplication(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to assemble application: %v", err)
	}

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if _, err := logger.Setup(cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"output_dir", cfg.Output.Dir,
		"model", cfg.LLM.ModelName)

	return cfg, nil
}
