package redact

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		keeps   []string
		removes []string
	}{
		{
			name:    "api key in error",
			input:   "generate content: API key=AIzaSyD4f8765q1234567 rejected",
			keeps:   []string{"generate content", "rejected"},
			removes: []string{"AIzaSyD4f8765q1234567"},
		},
		{
			name:    "key query parameter",
			input:   `request failed: key="abcdef1234567890"`,
			removes: []string{"abcdef1234567890"},
		},
		{
			name:    "unix path",
			input:   "failed to create code file: open /var/lib/tutor/output/code/x.py: permission denied",
			keeps:   []string{"permission denied"},
			removes: []string{"/var/lib/tutor"},
		},
		{
			name:    "hostname",
			input:   "dial tcp: lookup translate.google.com:443 failed",
			removes: []string{"translate.google.com"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := String(tc.input)
			for _, keep := range tc.keeps {
				assert.Contains(t, got, keep)
			}
			for _, remove := range tc.removes {
				assert.NotContains(t, got, remove)
			}
		})
	}
}

func TestError(t *testing.T) {
	assert.Empty(t, Error(nil))

	err := fmt.Errorf("wrap: %w", errors.New("secret=verysensitivevalue"))
	got := Error(err)
	assert.Contains(t, got, "wrap")
	assert.NotContains(t, got, "verysensitivevalue")
}
