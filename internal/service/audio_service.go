package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/phrazzld/tutor-api/internal/generation"
	"github.com/phrazzld/tutor-api/internal/platform/speech"
	"github.com/phrazzld/tutor-api/internal/store"
)

// wordsPerMinute is the speaking rate used to estimate lesson duration.
const wordsPerMinute = 150

// AudioResult is the outcome of an audio lesson request.
type AudioResult struct {
	Script                   string
	Filename                 string
	AudioURL                 string
	WordCount                int
	EstimatedDurationMinutes float64
}

// AudioService generates a spoken-lesson script, renders it through the
// speech synthesizer, and persists the MP3.
type AudioService struct {
	logger      *slog.Logger
	generator   generation.ContentGenerator
	synthesizer generation.SpeechSynthesizer
	files       *store.FileStore
	now         func() time.Time
}

// NewAudioService creates an AudioService.
func NewAudioService(
	logger *slog.Logger,
	generator generation.ContentGenerator,
	synthesizer generation.SpeechSynthesizer,
	files *store.FileStore,
) *AudioService {
	return &AudioService{
		logger:      logger,
		generator:   generator,
		synthesizer: synthesizer,
		files:       files,
		now:         time.Now,
	}
}

// Generate produces an audio lesson for the topic: script generation,
// speech synthesis, and file persistence.
func (s *AudioService) Generate(ctx context.Context, topic string) (*AudioResult, error) {
	script, err := s.generator.GenerateAudioScript(ctx, topic)
	if err != nil {
		return nil, err
	}
	return s.render(ctx, script, "")
}

// render synthesizes a script to MP3 and saves it. An empty filename
// derives a timestamped one; the .mp3 extension is forced either way.
func (s *AudioService) render(ctx context.Context, script, filename string) (*AudioResult, error) {
	audio, err := s.synthesizer.Synthesize(ctx, script)
	if err != nil {
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}

	if filename == "" {
		filename = "audio_lesson_" + s.now().Format(timestampLayout)
	}
	if !strings.HasSuffix(filename, ".mp3") {
		filename += ".mp3"
	}

	info, err := s.files.Save(store.KindAudio, filename, audio)
	if err != nil {
		return nil, err
	}

	wordCount := len(strings.Fields(script))
	estimated := math.Round(float64(wordCount)/wordsPerMinute*10) / 10

	if actual, err := speech.ProbeDuration(audio); err == nil {
		s.logger.DebugContext(ctx, "rendered audio lesson",
			"filename", info.Filename,
			"estimated_minutes", estimated,
			"actual_duration", actual.String())
	}

	s.logger.InfoContext(ctx, "generated audio lesson",
		"filename", info.Filename,
		"word_count", wordCount,
		"size_bytes", info.Size)

	return &AudioResult{
		Script:                   script,
		Filename:                 info.Filename,
		AudioURL:                 info.RelativePath,
		WordCount:                wordCount,
		EstimatedDurationMinutes: estimated,
	}, nil
}

// List returns the stored audio lessons.
func (s *AudioService) List() ([]store.FileInfo, error) {
	return s.files.List(store.KindAudio, ".mp3")
}

// Delete removes a stored audio lesson by filename.
func (s *AudioService) Delete(filename string) error {
	return s.files.Delete(store.KindAudio, filename)
}
