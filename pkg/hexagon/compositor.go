package hexagon

import (
	"image"

	"github.com/playdraft/hexagonview/pkg/graphics"
)

// Border describes the stroke drawn along the hexagon outline. Joins and caps
// are always round and corners are rounded with a radius equal to Width.
type Border struct {
	// Width is the stroke thickness in pixels. Zero draws a one pixel hairline.
	Width int
	// Color of the stroke.
	Color graphics.Color
}

// DefaultBorderWidth is the border thickness used when none is configured.
const DefaultBorderWidth = 10

// DefaultBorder returns a white border of DefaultBorderWidth pixels.
func DefaultBorder() Border {
	return Border{Width: DefaultBorderWidth, Color: graphics.ColorWhite}
}

// Compositor draws an image clipped to a hexagon with a border on top.
// The paints are built once from the border and reused for every Render.
type Compositor struct {
	border      Border
	maskPaint   graphics.Paint
	imagePaint  graphics.Paint
	borderPaint graphics.Paint
	quality     graphics.FilterQuality
}

// NewCompositor returns a compositor for the given border.
func NewCompositor(border Border) *Compositor {
	if border.Width < 0 {
		border.Width = 0
	}

	mask := graphics.DefaultPaint()
	mask.Color = graphics.ColorBlack
	mask.StrokeWidth = float64(border.Width)

	img := graphics.DefaultPaint()
	img.BlendMode = graphics.BlendModeSrcIn

	stroke := graphics.DefaultPaint()
	stroke.Color = border.Color
	stroke.Style = graphics.PaintStyleStroke
	stroke.StrokeWidth = float64(border.Width)
	stroke.StrokeJoin = graphics.JoinRound
	stroke.StrokeCap = graphics.CapRound
	stroke.CornerRadius = float64(border.Width)

	return &Compositor{
		border:      border,
		maskPaint:   mask,
		imagePaint:  img,
		borderPaint: stroke,
		quality:     graphics.FilterQualityLow,
	}
}

// Border returns the border the compositor was built with.
func (c *Compositor) Border() Border {
	return c.border
}

// SetFilterQuality changes how the image is sampled when it is scaled.
func (c *Compositor) SetFilterQuality(q graphics.FilterQuality) {
	c.quality = q
}

// Quality returns the sampling used for the image draw.
func (c *Compositor) Quality() graphics.FilterQuality {
	return c.quality
}

// Render draws source clipped to hex onto canvas. Nothing is drawn when the
// source is nil or empty or when the viewport has no area.
//
// All drawing happens inside one layer covering the viewport: the layer is
// cleared, the hexagon is filled as an opaque mask, the image is drawn with
// src-in so only the masked pixels keep its color, and the border is stroked
// over the result before the layer is merged.
func (c *Compositor) Render(canvas graphics.Canvas, hex Hexagon, source image.Image, width, height int) {
	if source == nil || source.Bounds().Empty() || width <= 0 || height <= 0 {
		return
	}
	path := hex.Path()

	canvas.SaveLayer(graphics.RectFromLTWH(0, 0, float64(width), float64(height)), nil)
	canvas.Clear(graphics.ColorTransparent)
	canvas.DrawPath(path, c.maskPaint)
	canvas.DrawImageRect(source, hex.Bounds, hex.Bounds, c.quality, &c.imagePaint)
	canvas.DrawPath(path, c.borderPaint)
	canvas.Restore()
}
