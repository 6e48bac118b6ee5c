package testbed

import (
	"github.com/playdraft/hexagonview/pkg/graphics"
	"github.com/playdraft/hexagonview/pkg/layout"
)

// LayoutBox is a fixed-size colored box for layout testing.
type LayoutBox struct {
	Width  float64
	Height float64
	Color  graphics.Color
	// Boundary makes the box a repaint boundary.
	Boundary bool
}

func (b LayoutBox) CreateRenderObject() layout.RenderObject {
	ro := &renderLayoutBox{}
	ro.SetSelf(ro)
	b.apply(ro)
	return ro
}

func (b LayoutBox) UpdateRenderObject(renderObject layout.RenderObject) {
	if box, ok := renderObject.(*renderLayoutBox); ok {
		b.apply(box)
		box.MarkNeedsLayout()
		box.MarkNeedsPaint()
	}
}

func (b LayoutBox) apply(r *renderLayoutBox) {
	r.width = b.Width
	r.height = b.Height
	r.color = b.Color
	r.boundary = b.Boundary
}

type renderLayoutBox struct {
	layout.RenderBoxBase
	width    float64
	height   float64
	color    graphics.Color
	boundary bool
	paints   int
}

// PaintCount returns how many times the box painted itself.
func (r *renderLayoutBox) PaintCount() int {
	return r.paints
}

func (r *renderLayoutBox) IsRepaintBoundary() bool {
	return r.boundary
}

func (r *renderLayoutBox) PerformLayout() {
	constraints := r.Constraints()
	r.SetSize(constraints.Constrain(graphics.Size{Width: r.width, Height: r.height}))
}

func (r *renderLayoutBox) Paint(ctx *layout.PaintContext) {
	r.paints++
	if r.color != 0 {
		paint := graphics.DefaultPaint()
		paint.Color = r.color
		ctx.Canvas.DrawRect(graphics.RectFromLTWH(0, 0, r.Size().Width, r.Size().Height), paint)
	}
}
