package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/phrazzld/tutor-api/internal/api/shared"
	"github.com/phrazzld/tutor-api/internal/domain"
	"github.com/phrazzld/tutor-api/internal/redact"
	"github.com/phrazzld/tutor-api/internal/service"
)

// TextGenerator produces inline Markdown explanations.
type TextGenerator interface {
	Generate(ctx context.Context, topic string, depth domain.Depth) (*service.TextResult, error)
}

// CodeGenerator produces Python examples with dependency analysis.
type CodeGenerator interface {
	Generate(ctx context.Context, topic string, complexity domain.Complexity) (*service.CodeResult, error)
}

// AudioGenerator produces spoken audio lessons.
type AudioGenerator interface {
	Generate(ctx context.Context, topic string) (*service.AudioResult, error)
}

// ImageGenerator produces diagrams, falling back to a placeholder.
type ImageGenerator interface {
	Generate(ctx context.Context, topic string, diagramType domain.DiagramType) (*service.ImageResult, error)
}

// GenerateHandler handles the content generation endpoints.
type GenerateHandler struct {
	text  TextGenerator
	code  CodeGenerator
	audio AudioGenerator
	image ImageGenerator
}

// NewGenerateHandler creates a GenerateHandler.
func NewGenerateHandler(text TextGenerator, code CodeGenerator, audio AudioGenerator, image ImageGenerator) *GenerateHandler {
	return &GenerateHandler{text: text, code: code, audio: audio, image: image}
}

// decodeTopicRequest parses the request body and validates the topic. It
// writes the error response itself and reports success via ok.
func decodeTopicRequest(w http.ResponseWriter, r *http.Request) (req GenerateRequest, topic string, ok bool) {
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "No data provided")
		return req, "", false
	}

	topic, err := domain.ValidateTopic(req.Topic)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Topic is required")
		return req, "", false
	}
	return req, topic, true
}

// GenerateText handles POST /api/generate-text requests.
func (h *GenerateHandler) GenerateText(w http.ResponseWriter, r *http.Request) {
	req, topic, ok := decodeTopicRequest(w, r)
	if !ok {
		return
	}
	depth := domain.NormalizeDepth(req.Depth)

	result, err := h.text.Generate(r.Context(), topic, depth)
	if err != nil {
		h.respondGenerationError(w, r, "text", topic, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TextResponse{
		Topic:   topic,
		Depth:   string(depth),
		Content: result.Content,
		Success: true,
	})
}

// GenerateCode handles POST /api/generate-code requests.
func (h *GenerateHandler) GenerateCode(w http.ResponseWriter, r *http.Request) {
	req, topic, ok := decodeTopicRequest(w, r)
	if !ok {
		return
	}
	complexity := domain.NormalizeComplexity(req.Complexity)

	result, err := h.code.Generate(r.Context(), topic, complexity)
	if err != nil {
		h.respondGenerationError(w, r, "code", topic, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CodeResponse{
		Success:      true,
		Topic:        topic,
		Complexity:   string(complexity),
		Code:         result.Code,
		Dependencies: result.Dependencies,
		ColabSetup:   result.ColabSetup,
		LocalSetup:   result.LocalSetup,
		LineCount:    result.LineCount,
		DownloadURL:  result.DownloadURL,
	})
}

// GenerateAudio handles POST /api/generate-audio requests.
func (h *GenerateHandler) GenerateAudio(w http.ResponseWriter, r *http.Request) {
	_, topic, ok := decodeTopicRequest(w, r)
	if !ok {
		return
	}

	result, err := h.audio.Generate(r.Context(), topic)
	if err != nil {
		h.respondGenerationError(w, r, "audio", topic, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AudioResponse{
		Success:           true,
		Topic:             topic,
		Script:            result.Script,
		AudioURL:          result.AudioURL,
		Filename:          result.Filename,
		WordCount:         result.WordCount,
		EstimatedDuration: result.EstimatedDurationMinutes,
	})
}

// GenerateImage handles POST /api/generate-image requests.
func (h *GenerateHandler) GenerateImage(w http.ResponseWriter, r *http.Request) {
	req, topic, ok := decodeTopicRequest(w, r)
	if !ok {
		return
	}
	diagramType := domain.NormalizeDiagramType(req.DiagramType)

	result, err := h.image.Generate(r.Context(), topic, diagramType)
	if err != nil {
		h.respondGenerationError(w, r, "image", topic, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ImageResponse{
		Success:     true,
		Topic:       topic,
		DiagramType: string(diagramType),
		ImageURL:    result.ImageURL,
		Filename:    result.Filename,
		Method:      result.Method,
		Prompt:      result.Prompt,
	})
}

func (h *GenerateHandler) respondGenerationError(w http.ResponseWriter, r *http.Request, kind, topic string, err error) {
	slog.ErrorContext(r.Context(), "generation request failed",
		"kind", kind,
		"topic", topic,
		"error", redact.Error(err))
	shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
}
