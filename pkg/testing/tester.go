package testing

import (
	"image"
	"reflect"
	"testing"

	"github.com/playdraft/hexagonview/pkg/errors"
	"github.com/playdraft/hexagonview/pkg/graphics"
	"github.com/playdraft/hexagonview/pkg/layout"
	"github.com/playdraft/hexagonview/pkg/raster"
)

const (
	// DefaultTestWidth is the default width of the test surface.
	DefaultTestWidth = 100
	// DefaultTestHeight is the default height of the test surface.
	DefaultTestHeight = 100
)

// RenderTester lays out and paints a single render object widget without a
// platform. Layout and paint run through the same pipeline owner and repaint
// boundary recording a host would use.
type RenderTester struct {
	pipeline    *layout.PipelineOwner
	widget      layout.RenderObjectWidget
	root        layout.RenderObject
	size        graphics.Size
	constraints *layout.Constraints
	handler     *RecordingHandler
	prevHandler errors.ErrorHandler
}

// NewRenderTester creates a tester with a 100x100 surface. It installs a
// RecordingHandler as the global error handler; call Cleanup to restore the
// previous one, or use NewRenderTesterWithT.
func NewRenderTester() *RenderTester {
	t := &RenderTester{
		pipeline:    &layout.PipelineOwner{},
		size:        graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
		handler:     &RecordingHandler{},
		prevHandler: errors.DefaultHandler,
	}
	errors.SetHandler(t.handler)
	return t
}

// NewRenderTesterWithT creates a tester that cleans up via t.Cleanup().
func NewRenderTesterWithT(t testing.TB) *RenderTester {
	tester := NewRenderTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the error handler that was active before the tester.
func (t *RenderTester) Cleanup() {
	errors.SetHandler(t.prevHandler)
}

// SetSize sets the surface size. By default the root is laid out with tight
// constraints of this size.
func (t *RenderTester) SetSize(size graphics.Size) {
	t.size = size
	if t.root != nil {
		t.root.MarkNeedsLayout()
	}
}

// SetConstraints overrides the root constraints. Pass nil to go back to
// tight constraints of the surface size.
func (t *RenderTester) SetConstraints(c *layout.Constraints) {
	t.constraints = c
	if t.root != nil {
		t.root.MarkNeedsLayout()
	}
}

// Handler returns the error handler installed by the tester.
func (t *RenderTester) Handler() *RecordingHandler {
	return t.handler
}

// PumpWidget mounts widget and runs one frame. A widget of the same type as
// the mounted one updates the existing render object instead of replacing it.
func (t *RenderTester) PumpWidget(widget layout.RenderObjectWidget) {
	if t.root != nil && reflect.TypeOf(t.widget) == reflect.TypeOf(widget) {
		widget.UpdateRenderObject(t.root)
	} else {
		t.root = widget.CreateRenderObject()
		t.root.SetOwner(t.pipeline)
		t.pipeline.ScheduleLayout(t.root)
		t.pipeline.SchedulePaint(t.root)
	}
	t.widget = widget
	t.Pump()
}

// Pump runs layout and re-records every dirty repaint boundary.
func (t *RenderTester) Pump() {
	if t.root == nil {
		return
	}
	t.pipeline.FlushLayoutForRoot(t.root, t.rootConstraints())
	for _, node := range t.pipeline.FlushPaint() {
		if boundary, ok := node.(interface {
			layout.RenderBox
			SetLayer(*graphics.DisplayList)
			ClearNeedsPaint()
		}); ok && node.IsRepaintBoundary() {
			layout.RecordLayer(boundary)
		}
	}
}

func (t *RenderTester) rootConstraints() layout.Constraints {
	if t.constraints != nil {
		return *t.constraints
	}
	return layout.Tight(t.size)
}

// RenderObject returns the mounted render object.
func (t *RenderTester) RenderObject() layout.RenderObject {
	return t.root
}

// DisplayOps paints the root and returns the serialized canvas calls.
func (t *RenderTester) DisplayOps() []DisplayOp {
	if t.root == nil {
		return nil
	}
	canvas := &serializingCanvas{size: t.size}
	t.paint(canvas)
	return canvas.ops
}

// LayerOps returns the serialized display list recorded for the root when it
// is a repaint boundary, or nil.
func (t *RenderTester) LayerOps() []DisplayOp {
	boundary, ok := t.root.(interface {
		Layer() *graphics.DisplayList
	})
	if !ok || boundary.Layer() == nil {
		return nil
	}
	return serializeDisplayList(boundary.Layer())
}

// Rasterize paints the root onto a surface-sized image filled with
// background, using the software canvas.
func (t *RenderTester) Rasterize(background graphics.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(t.size.Width), int(t.size.Height)))
	canvas := raster.NewCanvas(img)
	canvas.Clear(background)
	if t.root != nil {
		t.paint(canvas)
	}
	return img
}

func (t *RenderTester) paint(canvas graphics.Canvas) {
	ctx := &layout.PaintContext{Canvas: canvas}
	ctx.PaintChildWithLayer(t.root, graphics.Offset{})
}
