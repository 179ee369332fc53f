package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/phrazzld/tutor-api/internal/domain"
	"github.com/phrazzld/tutor-api/internal/store"
	"github.com/stretchr/testify/require"
)

// stubGenerator returns canned content for each generator method.
type stubGenerator struct {
	text      string
	code      string
	script    string
	prompt    string
	err       error
	lastTopic string
}

func (s *stubGenerator) GenerateTextExplanation(_ context.Context, topic string, _ domain.Depth) (string, error) {
	s.lastTopic = topic
	return s.text, s.err
}

func (s *stubGenerator) GenerateCodeExample(_ context.Context, topic string, _ domain.Complexity) (string, error) {
	s.lastTopic = topic
	return s.code, s.err
}

func (s *stubGenerator) GenerateAudioScript(_ context.Context, topic string) (string, error) {
	s.lastTopic = topic
	return s.script, s.err
}

func (s *stubGenerator) GenerateImagePrompt(_ context.Context, topic string, _ domain.DiagramType) (string, error) {
	s.lastTopic = topic
	return s.prompt, s.err
}

// stubImageModel returns canned image bytes or an error.
type stubImageModel struct {
	data  []byte
	err   error
	calls int
}

func (s *stubImageModel) GenerateImage(context.Context, string) ([]byte, error) {
	s.calls++
	return s.data, s.err
}

// stubSynthesizer returns canned audio bytes or an error.
type stubSynthesizer struct {
	data     []byte
	err      error
	lastText string
}

func (s *stubSynthesizer) Synthesize(_ context.Context, text string) ([]byte, error) {
	s.lastText = text
	return s.data, s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testFileStore(t *testing.T) *store.FileStore {
	t.Helper()
	files, err := store.NewFileStore(t.TempDir(), testLogger())
	require.NoError(t, err)
	return files
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
