package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/phrazzld/tutor-api/internal/config"
	"github.com/phrazzld/tutor-api/internal/domain"
	"github.com/phrazzld/tutor-api/internal/generation"
	"google.golang.org/genai"
)

// modelCaller abstracts the raw Gemini API call so the retry and
// post-processing logic can be exercised without network access.
type modelCaller interface {
	generateText(ctx context.Context, model, prompt string) (string, error)
	generateImage(ctx context.Context, model, prompt string) ([]byte, error)
}

// Generator implements generation.ContentGenerator and generation.ImageModel
// using Google's Gemini API.
type Generator struct {
	logger     *slog.Logger
	caller     modelCaller
	textModel  string
	imageModel string
	maxRetries int
	baseDelay  time.Duration
}

var (
	_ generation.ContentGenerator = (*Generator)(nil)
	_ generation.ImageModel       = (*Generator)(nil)
)

// NewGenerator creates a Generator backed by a real Gemini client.
// The API key must be non-empty; a process without a key should wire
// generation.Unavailable instead.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ImageModelName == "" {
		return nil, fmt.Errorf("%w: image model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return newGeneratorWithCaller(logger, &genaiCaller{client: client}, cfg), nil
}

// newGeneratorWithCaller wires an arbitrary caller; tests use it to inject
// fakes.
func newGeneratorWithCaller(logger *slog.Logger, caller modelCaller, cfg config.LLMConfig) *Generator {
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}
	delaySeconds := cfg.RetryDelaySeconds
	if delaySeconds < 1 {
		delaySeconds = 2
	}

	return &Generator{
		logger:     logger,
		caller:     caller,
		textModel:  cfg.ModelName,
		imageModel: cfg.ImageModelName,
		maxRetries: maxRetries,
		baseDelay:  time.Duration(delaySeconds) * time.Second,
	}
}

// GenerateTextExplanation produces a Markdown explanation of the topic at
// the requested depth.
func (g *Generator) GenerateTextExplanation(ctx context.Context, topic string, depth domain.Depth) (string, error) {
	content, err := g.generateWithRetry(ctx, explanationPrompt(topic, depth))
	if err != nil {
		return "", err
	}
	return content, nil
}

// GenerateCodeExample produces a Python example for the topic, with
// surrounding Markdown code fences stripped.
func (g *Generator) GenerateCodeExample(ctx context.Context, topic string, complexity domain.Complexity) (string, error) {
	code, err := g.generateWithRetry(ctx, codePrompt(topic, complexity))
	if err != nil {
		return "", err
	}
	return stripCodeFences(code), nil
}

// GenerateAudioScript produces a conversational script for speech synthesis.
func (g *Generator) GenerateAudioScript(ctx context.Context, topic string) (string, error) {
	script, err := g.generateWithRetry(ctx, audioScriptPrompt(topic))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(script), nil
}

// GenerateImagePrompt produces a detailed diagram description for the image
// model.
func (g *Generator) GenerateImagePrompt(ctx context.Context, topic string, diagramType domain.DiagramType) (string, error) {
	prompt, err := g.generateWithRetry(ctx, imagePromptRequest(topic, diagramType))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(prompt), nil
}

// GenerateImage renders a diagram prompt as PNG bytes via the image model.
// The prompt is wrapped with the fixed style directives first. Image calls
// are not retried; the caller falls back to a placeholder on failure.
func (g *Generator) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	g.logger.InfoContext(ctx, "requesting diagram from image model", "model", g.imageModel)
	data, err := g.caller.generateImage(ctx, g.imageModel, enhanceImagePrompt(prompt))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, generation.ErrNoImageData
	}
	return data, nil
}

// generateWithRetry performs a text-model call, retrying only rate-limit
// failures with exponential backoff (wait = 2^attempt * baseDelay). Any
// other failure propagates immediately; exhausting every attempt returns
// ErrRetriesExceeded.
func (g *Generator) generateWithRetry(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt < g.maxRetries; attempt++ {
		g.logger.DebugContext(ctx, "making Gemini API call",
			"attempt", attempt+1,
			"max_attempts", g.maxRetries)

		text, err := g.caller.generateText(ctx, g.textModel, prompt)
		if err == nil {
			return text, nil
		}
		if !isRateLimited(err) {
			return "", err
		}
		lastErr = err

		delay := time.Duration(math.Pow(2, float64(attempt)) * float64(g.baseDelay))
		g.logger.WarnContext(ctx, "rate limited by Gemini API, backing off",
			"attempt", attempt+1,
			"delay", delay.String(),
			"error", err)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %v", generation.ErrGenerationFailed, ctx.Err())
		}
	}

	return "", fmt.Errorf("%w: %v", generation.ErrRetriesExceeded, lastErr)
}

// isRateLimited reports whether an error indicates quota exhaustion or
// HTTP 429, the only failures worth retrying.
func isRateLimited(err error) bool {
	if errors.Is(err, generation.ErrRateLimited) {
		return true
	}
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota")
}

// stripCodeFences removes a leading ```python or ``` marker and a trailing
// ``` marker from a code response.
func stripCodeFences(code string) string {
	code = strings.TrimSpace(code)
	if strings.HasPrefix(code, "```python") {
		code = code[len("```python"):]
	} else if strings.HasPrefix(code, "```") {
		code = code[len("```"):]
	}
	code = strings.TrimSuffix(code, "```")
	return strings.TrimSpace(code)
}
