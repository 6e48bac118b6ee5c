package layout

import "github.com/playdraft/hexagonview/pkg/graphics"

// PaintContext provides the canvas for painting render objects.
type PaintContext struct {
	Canvas graphics.Canvas
}

// PaintChild paints a child render box at the given offset.
func (p *PaintContext) PaintChild(child RenderBox, offset graphics.Offset) {
	if child == nil {
		return
	}
	p.Canvas.Save()
	p.Canvas.Translate(offset.X, offset.Y)
	child.Paint(p)
	p.Canvas.Restore()
}

// PaintChildWithLayer paints a child, using its cached layer if available.
func (p *PaintContext) PaintChildWithLayer(child RenderBox, offset graphics.Offset) {
	if child == nil {
		return
	}

	p.Canvas.Save()
	p.Canvas.Translate(offset.X, offset.Y)

	// Use cached layer if child is a repaint boundary with valid cache
	if boundary, ok := child.(interface {
		IsRepaintBoundary() bool
		Layer() *graphics.DisplayList
		NeedsPaint() bool
	}); ok && boundary.IsRepaintBoundary() {
		if layer := boundary.Layer(); layer != nil && !boundary.NeedsPaint() {
			layer.Paint(p.Canvas)
			p.Canvas.Restore()
			return
		}
	}

	child.Paint(p)
	p.Canvas.Restore()
}

// RecordLayer paints a repaint boundary into a fresh display list, stores it
// as the boundary's layer and marks the boundary clean.
func RecordLayer(boundary interface {
	RenderBox
	SetLayer(*graphics.DisplayList)
	ClearNeedsPaint()
}) *graphics.DisplayList {
	var recorder graphics.PictureRecorder
	ctx := &PaintContext{Canvas: recorder.BeginRecording(boundary.Size())}
	boundary.Paint(ctx)
	list := recorder.EndRecording()
	boundary.SetLayer(list)
	boundary.ClearNeedsPaint()
	return list
}
