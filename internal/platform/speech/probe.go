package speech

import (
	"bytes"
	"fmt"
	"time"

	mp3 "github.com/hajimehoshi/go-mp3"
)

// ProbeDuration decodes MP3 bytes and returns the actual playback duration.
// The word-count estimate reported to callers is unaffected; this is used
// for logging the real length of rendered lessons.
func ProbeDuration(data []byte) (time.Duration, error) {
	decoder, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("failed to decode mp3: %w", err)
	}

	// Decoded stream is 16-bit stereo: 4 bytes per sample.
	samples := decoder.Length() / 4
	if decoder.SampleRate() == 0 {
		return 0, fmt.Errorf("mp3 reports zero sample rate")
	}
	return time.Duration(samples) * time.Second / time.Duration(decoder.SampleRate()), nil
}
