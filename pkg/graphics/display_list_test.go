package graphics

import (
	"fmt"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logCanvas writes one line per call.
type logCanvas struct {
	log []string
}

func (c *logCanvas) printf(format string, args ...any) {
	c.log = append(c.log, fmt.Sprintf(format, args...))
}

func (c *logCanvas) Save() {
	c.printf("save")
}

func (c *logCanvas) SaveLayer(bounds Rect, paint *Paint) {
	c.printf("saveLayer %v %v", bounds, paint != nil)
}

func (c *logCanvas) Restore() {
	c.printf("restore")
}

func (c *logCanvas) Translate(dx, dy float64) {
	c.printf("translate %v %v", dx, dy)
}

func (c *logCanvas) ClipRect(rect Rect) {
	c.printf("clipRect %v", rect)
}

func (c *logCanvas) Clear(color Color) {
	c.printf("clear %v", color)
}

func (c *logCanvas) DrawRect(rect Rect, paint Paint) {
	c.printf("drawRect %v %v", rect, paint.Color)
}

func (c *logCanvas) DrawPath(path *Path, paint Paint) {
	c.printf("drawPath %v %v", path.Commands[1].Args, paint.BlendMode)
}

func (c *logCanvas) DrawImageRect(img image.Image, src, dst Rect, q FilterQuality, paint *Paint) {
	c.printf("drawImageRect %v %v %v", dst, q, paint.BlendMode)
}

func (c *logCanvas) Size() Size {
	return Size{}
}

func TestPictureRecorder_Replay(t *testing.T) {
	var rec PictureRecorder
	canvas := rec.BeginRecording(Size{Width: 40, Height: 30})
	assert.Equal(t, Size{Width: 40, Height: 30}, canvas.Size())

	path := NewPath()
	path.MoveTo(0, 0)
	path.LineTo(5, 5)
	paint := DefaultPaint()
	paint.BlendMode = BlendModeSrcIn
	imgPaint := DefaultPaint()
	imgPaint.BlendMode = BlendModeSrc

	canvas.Save()
	canvas.Translate(1, 2)
	canvas.ClipRect(RectFromLTWH(0, 0, 10, 10))
	canvas.SaveLayer(RectFromLTWH(0, 0, 10, 10), nil)
	canvas.Clear(ColorRed)
	canvas.DrawRect(RectFromLTWH(1, 1, 2, 2), DefaultPaint())
	canvas.DrawPath(path, paint)
	canvas.DrawImageRect(image.NewRGBA(image.Rect(0, 0, 1, 1)), Rect{}, RectFromLTWH(0, 0, 4, 4), FilterQualityHigh, &imgPaint)
	canvas.Restore()
	canvas.Restore()

	// Later mutations do not leak into the recording.
	path.Commands[1].Args[0] = 99
	imgPaint.BlendMode = BlendModeClear

	list := rec.EndRecording()
	require.Equal(t, 10, list.Len())
	assert.Equal(t, Size{Width: 40, Height: 30}, list.Size())

	out := &logCanvas{}
	list.Paint(out)
	assert.Equal(t, []string{
		"save",
		"translate 1 2",
		"clipRect {0 0 10 10}",
		"saveLayer {0 0 10 10} false",
		"clear #FFFF0000",
		"drawRect {1 1 3 3} #FFFFFFFF",
		"drawPath [5 5] src_in",
		"drawImageRect {0 0 4 4} high src",
		"restore",
		"restore",
	}, out.log)
}

func TestPictureRecorder_IgnoresCallsAfterEnd(t *testing.T) {
	var rec PictureRecorder
	canvas := rec.BeginRecording(Size{Width: 1, Height: 1})
	canvas.Save()
	list := rec.EndRecording()
	canvas.Restore()

	assert.Equal(t, 1, list.Len())
	assert.Equal(t, 0, rec.EndRecording().Len())
}
