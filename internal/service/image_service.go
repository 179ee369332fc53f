package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/tutor-api/internal/domain"
	"github.com/phrazzld/tutor-api/internal/generation"
	"github.com/phrazzld/tutor-api/internal/platform/diagram"
	"github.com/phrazzld/tutor-api/internal/store"
)

// Generation methods reported to the caller.
const (
	MethodPrimary     = "primary"
	MethodPlaceholder = "placeholder"
)

// ImageResult is the outcome of a diagram request.
type ImageResult struct {
	Prompt   string
	Filename string
	ImageURL string
	Method   string
}

// ImageService turns a topic into a diagram: it asks the content generator
// for a detailed prompt, tries the image model, and falls back to a
// procedurally drawn placeholder when the model fails or returns nothing.
// Only a placeholder write error fails the request.
type ImageService struct {
	logger     *slog.Logger
	generator  generation.ContentGenerator
	imageModel generation.ImageModel
	files      *store.FileStore
	now        func() time.Time
}

// NewImageService creates an ImageService.
func NewImageService(
	logger *slog.Logger,
	generator generation.ContentGenerator,
	imageModel generation.ImageModel,
	files *store.FileStore,
) *ImageService {
	return &ImageService{
		logger:     logger,
		generator:  generator,
		imageModel: imageModel,
		files:      files,
		now:        time.Now,
	}
}

// Generate produces a diagram for the topic.
func (s *ImageService) Generate(ctx context.Context, topic string, diagramType domain.DiagramType) (*ImageResult, error) {
	prompt, err := s.generator.GenerateImagePrompt(ctx, topic, diagramType)
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("%s_%s_%s.png",
		domain.Slug(topic), diagramType, s.now().Format(timestampLayout))

	method := MethodPrimary
	data, err := s.imageModel.GenerateImage(ctx, prompt)
	if err != nil || len(data) == 0 {
		s.logger.WarnContext(ctx, "image model failed, drawing placeholder",
			"topic", topic,
			"diagram_type", diagramType,
			"error", err)

		data, err = diagram.Placeholder(topic, diagramType)
		if err != nil {
			return nil, fmt.Errorf("failed to create placeholder: %w", err)
		}
		method = MethodPlaceholder
	}

	info, err := s.files.Save(store.KindImage, filename, data)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "generated diagram",
		"topic", topic,
		"diagram_type", diagramType,
		"method", method,
		"filename", info.Filename)

	return &ImageResult{
		Prompt:   prompt,
		Filename: info.Filename,
		ImageURL: info.RelativePath,
		Method:   method,
	}, nil
}
