package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playdraft/hexagonview/pkg/graphics"
)

type testRenderBox struct {
	RenderBoxBase
	paintCalls  int
	layoutCalls int
	want        graphics.Size
}

func (r *testRenderBox) PerformLayout() {
	r.layoutCalls++
	r.SetSize(r.Constraints().Constrain(r.want))
}

func (r *testRenderBox) Paint(ctx *PaintContext) {
	r.paintCalls++
	ctx.Canvas.DrawRect(graphics.RectFromLTWH(0, 0, r.Size().Width, r.Size().Height), graphics.DefaultPaint())
}

func (r *testRenderBox) IsRepaintBoundary() bool {
	return true
}

func newTestBox() *testRenderBox {
	box := &testRenderBox{want: graphics.Size{Width: 10, Height: 10}}
	box.SetSelf(box)
	box.SetSize(graphics.Size{Width: 10, Height: 10})
	return box
}

func recordingContext() (*PaintContext, *graphics.PictureRecorder) {
	recorder := &graphics.PictureRecorder{}
	return &PaintContext{Canvas: recorder.BeginRecording(graphics.Size{Width: 10, Height: 10})}, recorder
}

func TestPaintChildWithLayer_UsesCachedLayerWhenClean(t *testing.T) {
	child := newTestBox()
	RecordLayer(child)
	require.Equal(t, 1, child.paintCalls)
	require.False(t, child.NeedsPaint())

	ctx, recorder := recordingContext()
	ctx.PaintChildWithLayer(child, graphics.Offset{})

	assert.Equal(t, 1, child.paintCalls, "cached layer replaces Paint")
	// save, translate, the cached rect, restore
	assert.Equal(t, 4, recorder.EndRecording().Len())
}

func TestPaintChildWithLayer_PaintsChildWhenNoLayer(t *testing.T) {
	child := newTestBox()

	ctx, _ := recordingContext()
	ctx.PaintChildWithLayer(child, graphics.Offset{})

	assert.Equal(t, 1, child.paintCalls)
}

func TestPaintChildWithLayer_PaintsChildWhenDirty(t *testing.T) {
	child := newTestBox()
	RecordLayer(child)
	child.MarkNeedsPaint()

	ctx, _ := recordingContext()
	ctx.PaintChildWithLayer(child, graphics.Offset{})

	assert.Equal(t, 2, child.paintCalls)
}

func TestPaintChild_TranslatesToOffset(t *testing.T) {
	child := newTestBox()

	ctx, recorder := recordingContext()
	ctx.PaintChild(child, graphics.Offset{X: 5, Y: 7})
	ctx.PaintChild(nil, graphics.Offset{})

	assert.Equal(t, 1, child.paintCalls)
	// save, translate, rect, restore
	list := recorder.EndRecording()
	require.Equal(t, 4, list.Len())

	dst := &translateSpy{}
	list.Paint(dst)
	assert.Equal(t, []graphics.Offset{{X: 5, Y: 7}}, dst.translations)
}

type translateSpy struct {
	graphics.Canvas
	translations []graphics.Offset
}

func (s *translateSpy) Save() {
}

func (s *translateSpy) Restore() {
}

func (s *translateSpy) DrawRect(graphics.Rect, graphics.Paint) {
}

func (s *translateSpy) Translate(dx, dy float64) {
	s.translations = append(s.translations, graphics.Offset{X: dx, Y: dy})
}
