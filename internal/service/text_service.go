package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/tutor-api/internal/domain"
	"github.com/phrazzld/tutor-api/internal/generation"
)

// TextResult is the outcome of a text explanation request.
type TextResult struct {
	Content string
}

// TextService generates Markdown explanations. Unlike the other services it
// persists nothing; the explanation is returned inline.
type TextService struct {
	logger    *slog.Logger
	generator generation.ContentGenerator
}

// NewTextService creates a TextService.
func NewTextService(logger *slog.Logger, generator generation.ContentGenerator) *TextService {
	return &TextService{logger: logger, generator: generator}
}

// Generate produces an explanation of the topic at the given depth.
func (s *TextService) Generate(ctx context.Context, topic string, depth domain.Depth) (*TextResult, error) {
	content, err := s.generator.GenerateTextExplanation(ctx, topic, depth)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "generated text explanation",
		"topic", topic,
		"depth", depth,
		"length", len(content))

	return &TextResult{Content: content}, nil
}
