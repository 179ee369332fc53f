// Package diagram draws the procedural placeholder image used when the
// generative image model fails or returns no data.
package diagram

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"strings"

	"github.com/phrazzld/tutor-api/internal/domain"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Canvas size of every placeholder diagram.
const (
	canvasWidth  = 800
	canvasHeight = 600
)

// Slate/blue palette matching the application's frontend theme.
var (
	backgroundColor = color.RGBA{R: 30, G: 41, B: 59, A: 255}
	accentColor     = color.RGBA{R: 59, G: 130, B: 246, A: 255}
	titleBarColor   = color.RGBA{R: 51, G: 65, B: 85, A: 255}
	titleTextColor  = color.RGBA{R: 248, G: 250, B: 252, A: 255}
	bodyTextColor   = color.RGBA{R: 148, G: 163, B: 184, A: 255}
	noteTextColor   = color.RGBA{R: 100, G: 116, B: 139, A: 255}
)

// Placeholder renders a static fallback diagram for the topic as PNG bytes:
// dark canvas, accent border, a title bar naming the diagram type and
// truncated topic, body text, a note that full generation was unavailable,
// and two decorative shapes.
func Placeholder(topic string, diagramType domain.DiagramType) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, canvasWidth, canvasHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	strokeRect(img, image.Rect(10, 10, canvasWidth-10, canvasHeight-10), 3, accentColor)

	fillRect(img, image.Rect(20, 20, canvasWidth-20, 80), titleBarColor)
	title := fmt.Sprintf("%s: %s", strings.ToUpper(string(diagramType)), truncate(topic, 40))
	drawText(img, 40, 55, title, titleTextColor)

	drawText(img, 40, 130, "Educational Diagram", bodyTextColor)
	drawText(img, 40, 170, "Topic: "+topic, bodyTextColor)
	drawText(img, 40, 210, "Type: "+string(diagramType), bodyTextColor)
	drawText(img, 40, 290, "Note: Full diagram generation requires", noteTextColor)
	drawText(img, 40, 330, "image generation API access.", noteTextColor)

	strokeEllipse(img, image.Rect(canvasWidth-200, canvasHeight-200, canvasWidth-50, canvasHeight-50), 2, accentColor)
	strokeRect(img, image.Rect(50, canvasHeight-150, 200, canvasHeight-50), 2, accentColor)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode placeholder image: %w", err)
	}
	return buf.Bytes(), nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// strokeRect draws a rectangle outline of the given stroke width just
// inside r.
func strokeRect(img *image.RGBA, r image.Rectangle, width int, c color.Color) {
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width), c)
	fillRect(img, image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y), c)
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y), c)
	fillRect(img, image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y), c)
}

// strokeEllipse draws an ellipse outline inscribed in r by walking the
// parametric curve; width extra rings are drawn inward.
func strokeEllipse(img *image.RGBA, r image.Rectangle, width int, c color.Color) {
	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2

	for ring := 0; ring < width; ring++ {
		rx := float64(r.Dx())/2 - float64(ring)
		ry := float64(r.Dy())/2 - float64(ring)
		if rx <= 0 || ry <= 0 {
			break
		}
		// Step count proportional to the perimeter keeps the outline solid.
		steps := int(8 * (rx + ry))
		for i := 0; i < steps; i++ {
			theta := 2 * math.Pi * float64(i) / float64(steps)
			x := int(cx + rx*math.Cos(theta))
			y := int(cy + ry*math.Sin(theta))
			img.Set(x, y, c)
		}
	}
}

func drawText(img *image.RGBA, x, y int, text string, c color.Color) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
