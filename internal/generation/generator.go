package generation

import (
	"context"

	"github.com/phrazzld/tutor-api/internal/domain"
)

// ContentGenerator defines the interface for producing textual learning
// content from an ML topic. This interface serves as a boundary between the
// application core and external AI/LLM services, following the hexagonal
// architecture pattern.
type ContentGenerator interface {
	// GenerateTextExplanation produces a Markdown explanation of the topic
	// at the requested depth.
	GenerateTextExplanation(ctx context.Context, topic string, depth domain.Depth) (string, error)

	// GenerateCodeExample produces a runnable Python example for the topic
	// at the requested complexity. Markdown code fences are already stripped
	// from the returned code.
	GenerateCodeExample(ctx context.Context, topic string, complexity domain.Complexity) (string, error)

	// GenerateAudioScript produces a conversational script suitable for
	// speech synthesis.
	GenerateAudioScript(ctx context.Context, topic string) (string, error)

	// GenerateImagePrompt produces a detailed prompt describing an
	// educational diagram of the topic.
	GenerateImagePrompt(ctx context.Context, topic string, diagramType domain.DiagramType) (string, error)
}

// ImageModel defines the interface for rendering a diagram prompt into
// image bytes via a generative image model.
type ImageModel interface {
	// GenerateImage renders the prompt as a PNG and returns the raw bytes.
	// Returns ErrNoImageData when the model responds without inline image
	// data.
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

// SpeechSynthesizer defines the interface for rendering text as spoken
// audio.
type SpeechSynthesizer interface {
	// Synthesize renders the text as MP3 audio and returns the raw bytes.
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
