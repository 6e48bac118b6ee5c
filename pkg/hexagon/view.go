package hexagon

import (
	"image"

	"github.com/playdraft/hexagonview/pkg/graphics"
)

// View caches the hexagon for the current viewport size. SizeChanged is the
// only writer and Draw the only reader; both are expected on the UI thread.
type View struct {
	compositor *Compositor
	hex        Hexagon
	width      int
	height     int
	sized      bool
	generation int
}

// NewView returns a view that draws with the given border.
func NewView(border Border) *View {
	return &View{compositor: NewCompositor(border)}
}

// Compositor returns the compositor used by Draw.
func (v *View) Compositor() *Compositor {
	return v.compositor
}

// SizeChanged records the viewport size and recomputes the hexagon when it
// differs from the previous size.
func (v *View) SizeChanged(width, height int) {
	if v.sized && width == v.width && height == v.height {
		return
	}
	v.width, v.height = width, height
	v.hex = ComputeHexagon(height, v.compositor.Border().Width)
	v.sized = true
	v.generation++
}

// Hexagon returns the cached hexagon and whether a size has been set.
func (v *View) Hexagon() (Hexagon, bool) {
	return v.hex, v.sized
}

// Generation counts how many times the hexagon has been recomputed.
func (v *View) Generation() int {
	return v.generation
}

// ViewportSize returns the last size passed to SizeChanged.
func (v *View) ViewportSize() (width, height int) {
	return v.width, v.height
}

// Draw renders source with the cached hexagon. It does nothing until
// SizeChanged has been called.
func (v *View) Draw(canvas graphics.Canvas, source image.Image) {
	if !v.sized {
		return
	}
	v.compositor.Render(canvas, v.hex, source, v.width, v.height)
}

// Bounds returns the rect the image is drawn into.
func (v *View) Bounds() graphics.Rect {
	return v.hex.Bounds
}
