package hexagon_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playdraft/hexagonview/pkg/graphics"
	"github.com/playdraft/hexagonview/pkg/hexagon"
	"github.com/playdraft/hexagonview/pkg/raster"
)

// spyCanvas records the calls made on it.
type spyCanvas struct {
	calls []call
}

type call struct {
	name    string
	bounds  graphics.Rect
	paint   graphics.Paint
	color   graphics.Color
	path    *graphics.Path
	src     graphics.Rect
	dst     graphics.Rect
	quality graphics.FilterQuality
	image   image.Image
	hasPnt  bool
}

func (c *spyCanvas) add(cl call) {
	c.calls = append(c.calls, cl)
}

func (c *spyCanvas) names() []string {
	out := make([]string, len(c.calls))
	for i, cl := range c.calls {
		out[i] = cl.name
	}
	return out
}

func (c *spyCanvas) Save() {
	c.add(call{name: "save"})
}

func (c *spyCanvas) SaveLayer(bounds graphics.Rect, paint *graphics.Paint) {
	cl := call{name: "saveLayer", bounds: bounds}
	if paint != nil {
		cl.paint, cl.hasPnt = *paint, true
	}
	c.add(cl)
}

func (c *spyCanvas) Restore() {
	c.add(call{name: "restore"})
}

func (c *spyCanvas) Translate(dx, dy float64) {
	c.add(call{name: "translate"})
}

func (c *spyCanvas) ClipRect(rect graphics.Rect) {
	c.add(call{name: "clipRect", bounds: rect})
}

func (c *spyCanvas) Clear(color graphics.Color) {
	c.add(call{name: "clear", color: color})
}

func (c *spyCanvas) DrawRect(r graphics.Rect, p graphics.Paint) {
	c.add(call{name: "drawRect", bounds: r, paint: p})
}

func (c *spyCanvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	c.add(call{name: "drawPath", path: path, paint: paint})
}

func (c *spyCanvas) DrawImageRect(img image.Image, src, dst graphics.Rect, q graphics.FilterQuality, paint *graphics.Paint) {
	cl := call{name: "drawImageRect", image: img, src: src, dst: dst, quality: q}
	if paint != nil {
		cl.paint, cl.hasPnt = *paint, true
	}
	c.add(cl)
}

func (c *spyCanvas) Size() graphics.Size {
	return graphics.Size{Width: 100, Height: 100}
}

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

var red = color.RGBA{R: 0xFF, A: 0xFF}

func TestCompositor_Sequence(t *testing.T) {
	hex := hexagon.ComputeHexagon(100, 10)
	src := solid(100, 100, red)
	canvas := &spyCanvas{}

	hexagon.NewCompositor(hexagon.DefaultBorder()).Render(canvas, hex, src, 100, 100)

	require.Equal(t, []string{"saveLayer", "clear", "drawPath", "drawImageRect", "drawPath", "restore"}, canvas.names())

	layer := canvas.calls[0]
	assert.Equal(t, graphics.RectFromLTWH(0, 0, 100, 100), layer.bounds)
	assert.False(t, layer.hasPnt)

	assert.Equal(t, graphics.ColorTransparent, canvas.calls[1].color)

	mask := canvas.calls[2]
	assert.Equal(t, hex.Path(), mask.path)
	assert.Equal(t, graphics.PaintStyleFill, mask.paint.Style)
	assert.Equal(t, graphics.ColorBlack, mask.paint.Color)
	assert.Equal(t, graphics.BlendModeSrcOver, mask.paint.EffectiveBlendMode())
	assert.Zero(t, mask.paint.CornerRadius)

	img := canvas.calls[3]
	assert.Same(t, src, img.image)
	assert.Equal(t, hex.Bounds, img.src)
	assert.Equal(t, hex.Bounds, img.dst)
	assert.Equal(t, graphics.FilterQualityLow, img.quality)
	require.True(t, img.hasPnt)
	assert.Equal(t, graphics.BlendModeSrcIn, img.paint.BlendMode)

	border := canvas.calls[4]
	assert.Equal(t, hex.Path(), border.path)
	assert.Equal(t, graphics.PaintStyleStroke, border.paint.Style)
	assert.Equal(t, 10.0, border.paint.StrokeWidth)
	assert.Equal(t, graphics.JoinRound, border.paint.StrokeJoin)
	assert.Equal(t, graphics.CapRound, border.paint.StrokeCap)
	assert.Equal(t, 10.0, border.paint.CornerRadius)
	assert.Equal(t, graphics.ColorWhite, border.paint.Color)
	assert.Equal(t, graphics.BlendModeSrcOver, border.paint.EffectiveBlendMode())
}

func TestCompositor_ZeroBorderStillStrokes(t *testing.T) {
	canvas := &spyCanvas{}
	c := hexagon.NewCompositor(hexagon.Border{Width: 0, Color: graphics.ColorWhite})
	c.Render(canvas, hexagon.ComputeHexagon(100, 0), solid(100, 100, red), 100, 100)

	assert.Equal(t, []string{"saveLayer", "clear", "drawPath", "drawImageRect", "drawPath", "restore"}, canvas.names())
	stroke := canvas.calls[4].paint
	assert.Equal(t, graphics.PaintStyleStroke, stroke.Style)
	assert.Equal(t, 0.0, stroke.StrokeWidth)
	assert.Equal(t, 0.0, stroke.CornerRadius)
}

func TestCompositor_NegativeBorderClampsToZero(t *testing.T) {
	c := hexagon.NewCompositor(hexagon.Border{Width: -4})
	assert.Equal(t, 0, c.Border().Width)
}

func TestCompositor_NoOp(t *testing.T) {
	hex := hexagon.ComputeHexagon(100, 10)
	tests := []struct {
		name          string
		src           image.Image
		width, height int
	}{
		{"nil source", nil, 100, 100},
		{"empty source", image.NewRGBA(image.Rect(0, 0, 0, 0)), 100, 100},
		{"zero width", solid(100, 100, red), 0, 100},
		{"zero height", solid(100, 100, red), 100, 0},
		{"negative size", solid(100, 100, red), -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canvas := &spyCanvas{}
			hexagon.NewCompositor(hexagon.DefaultBorder()).Render(canvas, hex, tt.src, tt.width, tt.height)
			assert.Empty(t, canvas.calls)
		})
	}
}

func TestCompositor_FilterQuality(t *testing.T) {
	canvas := &spyCanvas{}
	c := hexagon.NewCompositor(hexagon.DefaultBorder())
	assert.Equal(t, graphics.FilterQualityLow, c.Quality())
	c.SetFilterQuality(graphics.FilterQualityHigh)
	assert.Equal(t, graphics.FilterQualityHigh, c.Quality())
	c.Render(canvas, hexagon.ComputeHexagon(100, 10), solid(100, 100, red), 100, 100)

	require.Len(t, canvas.calls, 6)
	assert.Equal(t, graphics.FilterQualityHigh, canvas.calls[3].quality)
}

func TestCompositor_SourceNotMutated(t *testing.T) {
	src := solid(100, 100, red)
	before := append([]uint8(nil), src.Pix...)

	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	hexagon.NewCompositor(hexagon.DefaultBorder()).Render(raster.NewCanvas(dst), hexagon.ComputeHexagon(100, 10), src, 100, 100)

	assert.Equal(t, before, src.Pix)
}

func TestCompositor_Pixels(t *testing.T) {
	blue := color.RGBA{B: 0xFF, A: 0xFF}
	dst := solid(100, 100, blue)
	canvas := raster.NewCanvas(dst)

	hexagon.NewCompositor(hexagon.DefaultBorder()).Render(canvas, hexagon.ComputeHexagon(100, 10), solid(100, 100, red), 100, 100)

	// Inside the hexagon, away from the border.
	assert.Equal(t, red, dst.RGBAAt(50, 50))
	assert.Equal(t, red, dst.RGBAAt(30, 50))
	// On the left edge, inside the stroke.
	assert.Equal(t, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, dst.RGBAAt(11, 45))
	// Outside the hexagon the layer leaves the background untouched.
	assert.Equal(t, blue, dst.RGBAAt(1, 1))
	assert.Equal(t, blue, dst.RGBAAt(98, 98))
	assert.Equal(t, blue, dst.RGBAAt(3, 50))
	assert.Equal(t, 1, canvas.SaveCount())
}

func TestCompositor_PixelsWithHairlineBorder(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	hexagon.NewCompositor(hexagon.Border{Color: graphics.ColorWhite}).Render(raster.NewCanvas(dst), hexagon.ComputeHexagon(100, 0), solid(100, 100, red), 100, 100)

	assert.Equal(t, red, dst.RGBAAt(50, 50))
	assert.Equal(t, red, dst.RGBAAt(50, 2))
	assert.Equal(t, red, dst.RGBAAt(10, 50))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(1, 1))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(2, 50))

	// A one pixel hairline centred on x=7 half covers the column outside it.
	hairline := dst.RGBAAt(6, 50)
	assert.InDelta(t, 0x80, int(hairline.A), 3)
	assert.Equal(t, hairline.A, hairline.R, "hairline is white")
}

func TestCompositor_SmallSourceLeavesRestClear(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	hexagon.NewCompositor(hexagon.Border{}).Render(raster.NewCanvas(dst), hexagon.ComputeHexagon(100, 0), solid(50, 50, red), 100, 100)

	// The source rect extends past the image, so only its top-left quarter
	// lands, unscaled, and the opaque mask shows through elsewhere.
	assert.Equal(t, red, dst.RGBAAt(40, 40))
	assert.Equal(t, color.RGBA{A: 0xFF}, dst.RGBAAt(50, 75))
}
