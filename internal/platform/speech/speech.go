// Package speech renders text as spoken MP3 audio using the Google
// Translate text-to-speech endpoint. Long texts are split into chunks the
// endpoint accepts and the resulting MP3 segments are concatenated.
package speech

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/phrazzld/tutor-api/internal/config"
	"github.com/phrazzld/tutor-api/internal/generation"
)

// maxChunkRunes is the largest text fragment the endpoint accepts per
// request.
const maxChunkRunes = 200

// ErrEmptyText is returned when there is nothing to synthesize.
var ErrEmptyText = errors.New("text cannot be empty")

// Client implements generation.SpeechSynthesizer against a Translate-style
// TTS endpoint.
type Client struct {
	logger     *slog.Logger
	httpClient *http.Client
	endpoint   string
	language   string
	slow       bool
}

var _ generation.SpeechSynthesizer = (*Client)(nil)

// NewClient creates a speech client for the configured endpoint.
func NewClient(logger *slog.Logger, cfg config.TTSConfig) *Client {
	return &Client{
		logger:     logger,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		endpoint:   cfg.Endpoint,
		language:   cfg.Language,
		slow:       cfg.Slow,
	}
}

// Synthesize renders text as MP3 bytes. The text is chunked on word
// boundaries; each chunk is fetched separately and the MP3 frames are
// concatenated in order.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	chunks := chunkText(text, maxChunkRunes)
	if len(chunks) == 0 {
		return nil, ErrEmptyText
	}

	c.logger.DebugContext(ctx, "synthesizing speech",
		"chunks", len(chunks),
		"language", c.language,
		"slow", c.slow)

	var audio bytes.Buffer
	for idx, chunk := range chunks {
		segment, err := c.fetchChunk(ctx, chunk, idx, len(chunks))
		if err != nil {
			return nil, fmt.Errorf("failed to synthesize chunk %d of %d: %w", idx+1, len(chunks), err)
		}
		audio.Write(segment)
	}
	return audio.Bytes(), nil
}

func (c *Client) fetchChunk(ctx context.Context, chunk string, idx, total int) ([]byte, error) {
	speed := "1"
	if c.slow {
		speed = "0.24"
	}

	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("client", "tw-ob")
	params.Set("tl", c.language)
	params.Set("ttsspeed", speed)
	params.Set("q", chunk)
	params.Set("total", strconv.Itoa(total))
	params.Set("idx", strconv.Itoa(idx))
	params.Set("textlen", strconv.Itoa(len([]rune(chunk))))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tts endpoint returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// chunkText splits text into fragments of at most limit runes, breaking on
// word boundaries. Words longer than the limit are hard-split.
func chunkText(text string, limit int) []string {
	var chunks []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			chunks = append(chunks, string(current))
			current = nil
		}
	}

	for _, word := range strings.Fields(text) {
		runes := []rune(word)

		for len(runes) > limit {
			flush()
			chunks = append(chunks, string(runes[:limit]))
			runes = runes[limit:]
		}
		if len(runes) == 0 {
			continue
		}

		needed := len(runes)
		if len(current) > 0 {
			needed++ // joining space
		}
		if len(current)+needed > limit {
			flush()
		}
		if len(current) > 0 {
			current = append(current, ' ')
		}
		current = append(current, runes...)
	}
	flush()
	return chunks
}
