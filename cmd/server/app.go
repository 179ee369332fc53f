package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tutor-api/internal/config"
	"github.com/phrazzld/tutor-api/internal/generation"
	"github.com/phrazzld/tutor-api/internal/platform/gemini"
	"github.com/phrazzld/tutor-api/internal/platform/speech"
	"github.com/phrazzld/tutor-api/internal/service"
	"github.com/phrazzld/tutor-api/internal/store"
)

// application holds the assembled dependencies for the server. All wiring
// happens here so handlers and services stay constructor-injected and
// testable.
type application struct {
	config *config.Config
	logger *slog.Logger

	fileStore *store.FileStore

	textService  *service.TextService
	codeService  *service.CodeService
	audioService *service.AudioService
	imageService *service.ImageService
}

// newApplication builds the dependency graph from configuration. When the
// Gemini API key is absent the server still starts; generation endpoints
// then report the missing configuration instead of failing at boot.
func newApplication(ctx context.Context, cfg *config.Config) (*application, error) {
	logger := slog.Default()

	fileStore, err := store.NewFileStore(cfg.Output.Dir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create file store: %w", err)
	}

	var generator generation.ContentGenerator
	var imageModel generation.ImageModel
	if cfg.LLM.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY is not set; generation endpoints will return 503")
		generator = generation.Unavailable{}
		imageModel = generation.Unavailable{}
	} else {
		g, err := gemini.NewGenerator(ctx, logger, cfg.LLM)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini generator: %w", err)
		}
		generator = g
		imageModel = g
	}

	synthesizer := speech.NewClient(logger, cfg.TTS)

	return &application{
		config:       cfg,
		logger:       logger,
		fileStore:    fileStore,
		textService:  service.NewTextService(logger, generator),
		codeService:  service.NewCodeService(logger, generator, fileStore),
		audioService: service.NewAudioService(logger, generator, synthesizer, fileStore),
		imageService: service.NewImageService(logger, generator, imageModel, fileStore),
	}, nil
}
