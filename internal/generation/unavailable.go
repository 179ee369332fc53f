package generation

import (
	"context"

	"github.com/phrazzld/tutor-api/internal/domain"
)

// Unavailable is a ContentGenerator and ImageModel used when no API key is
// configured. Every call fails with ErrUnavailable so the process can start
// and serve downloads while generation endpoints report a clear error.
type Unavailable struct{}

var (
	_ ContentGenerator = Unavailable{}
	_ ImageModel       = Unavailable{}
)

func (Unavailable) GenerateTextExplanation(ctx context.Context, topic string, depth domain.Depth) (string, error) {
	return "", ErrUnavailable
}

func (Unavailable) GenerateCodeExample(ctx context.Context, topic string, complexity domain.Complexity) (string, error) {
	return "", ErrUnavailable
}

func (Unavailable) GenerateAudioScript(ctx context.Context, topic string) (string, error) {
	return "", ErrUnavailable
}

func (Unavailable) GenerateImagePrompt(ctx context.Context, topic string, diagramType domain.DiagramType) (string, error) {
	return "", ErrUnavailable
}

func (Unavailable) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	return nil, ErrUnavailable
}
