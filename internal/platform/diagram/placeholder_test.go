package diagram

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/phrazzld/tutor-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholder(t *testing.T) {
	data, err := Placeholder("Gradient Descent", domain.DiagramArchitecture)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 800, bounds.Dx())
	assert.Equal(t, 600, bounds.Dy())

	// Canvas center carries the background color.
	r, g, b, _ := img.At(400, 450).RGBA()
	assert.Equal(t, uint32(30), r>>8)
	assert.Equal(t, uint32(41), g>>8)
	assert.Equal(t, uint32(59), b>>8)

	// Border pixels carry the accent color.
	r, g, b, _ = img.At(11, 11).RGBA()
	assert.Equal(t, uint32(59), r>>8)
	assert.Equal(t, uint32(130), g>>8)
	assert.Equal(t, uint32(246), b>>8)

	// Title bar is filled.
	r, g, b, _ = img.At(700, 50).RGBA()
	assert.Equal(t, uint32(51), r>>8)
	assert.Equal(t, uint32(65), g>>8)
	assert.Equal(t, uint32(85), b>>8)
}

func TestPlaceholderIsDeterministic(t *testing.T) {
	first, err := Placeholder("K-Means", domain.DiagramFlowchart)
	require.NoError(t, err)
	second, err := Placeholder("K-Means", domain.DiagramFlowchart)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPlaceholderTruncatesLongTopics(t *testing.T) {
	long := "An extremely long topic name that would otherwise overflow the title bar of the canvas"

	data, err := Placeholder(long, domain.DiagramConceptMap)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
