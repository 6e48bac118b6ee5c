package raster

import (
	"image"

	"github.com/playdraft/hexagonview/pkg/graphics"
	"golang.org/x/image/vector"
)

// Canvas renders drawing commands into an *image.RGBA.
//
// Only translation is supported as a transform. Unbalanced Restore calls are
// ignored, matching the behavior of platform canvases.
type Canvas struct {
	base   *image.RGBA
	size   graphics.Size
	states []state
	ras    *vector.Rasterizer
}

type state struct {
	// origin maps user space to mask space (base bounds shifted to 0,0).
	origin graphics.Offset
	// clip is in image space.
	clip  image.Rectangle
	layer *layer
}

type layer struct {
	img    *image.RGBA
	bounds image.Rectangle
	mode   graphics.BlendMode
	alpha  uint32
}

var _ graphics.Canvas = (*Canvas)(nil)

// NewCanvas returns a canvas drawing into dst. User-space (0, 0) maps to
// dst.Bounds().Min.
func NewCanvas(dst *image.RGBA) *Canvas {
	b := dst.Bounds()
	return &Canvas{
		base:   dst,
		size:   graphics.Size{Width: float64(b.Dx()), Height: float64(b.Dy())},
		states: []state{{clip: b}},
		ras:    vector.NewRasterizer(b.Dx(), b.Dy()),
	}
}

// Image returns the image the canvas draws into.
func (c *Canvas) Image() *image.RGBA {
	return c.base
}

// SaveCount returns the depth of the save stack; 1 means nothing is saved.
func (c *Canvas) SaveCount() int {
	return len(c.states)
}

func (c *Canvas) top() *state {
	return &c.states[len(c.states)-1]
}

// target returns the pixels that drawing currently lands on.
func (c *Canvas) target() *image.RGBA {
	for i := len(c.states) - 1; i >= 0; i-- {
		if l := c.states[i].layer; l != nil {
			return l.img
		}
	}
	return c.base
}

// deviceRect converts a user-space rect to image space, rounding outward.
func (c *Canvas) deviceRect(r graphics.Rect) image.Rectangle {
	o := c.top().origin
	bmin := c.base.Bounds().Min
	return r.Translate(o.X, o.Y).ImageRect().Add(bmin)
}

func (c *Canvas) Save() {
	s := *c.top()
	s.layer = nil
	c.states = append(c.states, s)
}

func (c *Canvas) SaveLayer(bounds graphics.Rect, paint *graphics.Paint) {
	s := *c.top()
	dev := c.deviceRect(bounds).Intersect(s.clip)
	l := &layer{
		img:   image.NewRGBA(c.base.Bounds()),
		mode:  graphics.BlendModeSrcOver,
		alpha: 0xFF,
	}
	if paint != nil {
		l.mode = paint.EffectiveBlendMode()
		l.alpha = alphaByte(paint.EffectiveAlpha())
	}
	l.bounds = dev
	s.clip = dev
	s.layer = l
	c.states = append(c.states, s)
}

func (c *Canvas) Restore() {
	if len(c.states) <= 1 {
		return
	}
	popped := c.states[len(c.states)-1]
	c.states = c.states[:len(c.states)-1]
	if popped.layer != nil {
		compositeImage(c.target(), popped.layer.bounds, popped.layer.img, popped.layer.mode, popped.layer.alpha)
	}
}

func (c *Canvas) Translate(dx, dy float64) {
	t := c.top()
	t.origin.X += dx
	t.origin.Y += dy
}

func (c *Canvas) ClipRect(rect graphics.Rect) {
	t := c.top()
	t.clip = t.clip.Intersect(c.deviceRect(rect))
}

func (c *Canvas) Clear(color graphics.Color) {
	fillColor(c.target(), c.top().clip, color)
}

func (c *Canvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	path := graphics.NewPath()
	path.MoveTo(rect.Left, rect.Top)
	path.LineTo(rect.Right, rect.Top)
	path.LineTo(rect.Right, rect.Bottom)
	path.LineTo(rect.Left, rect.Bottom)
	path.Close()
	c.DrawPath(path, paint)
}

func (c *Canvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	if path.IsEmpty() || c.base.Bounds().Empty() {
		return
	}
	clip := c.top().clip
	if clip.Empty() {
		return
	}
	mask := c.rasterize(path, paint, c.top().origin)
	if mask == nil {
		return
	}
	compositeColor(c.target(), clip, mask, paint.Color, paint.EffectiveBlendMode(), alphaByte(paint.EffectiveAlpha()))
}

func (c *Canvas) Size() graphics.Size {
	return c.size
}

func alphaByte(a float64) uint32 {
	return uint32(a*255 + 0.5)
}
