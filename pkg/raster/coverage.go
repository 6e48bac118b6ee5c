package raster

import (
	"image"
	"image/color"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/playdraft/hexagonview/pkg/graphics"
)

// pathSink receives path segments in mask space. Both vector.Rasterizer
// (fills) and the rasterx stroker are driven through it.
type pathSink interface {
	moveTo(x, y float64)
	lineTo(x, y float64)
	quadTo(x1, y1, x2, y2 float64)
	cubeTo(x1, y1, x2, y2, x3, y3 float64)
	closePath()
	end()
}

// replay feeds the path into sink, translated by origin.
func replay(path *graphics.Path, origin graphics.Offset, sink pathSink) {
	ox, oy := origin.X, origin.Y
	for _, cmd := range path.Commands {
		a := cmd.Args
		switch cmd.Op {
		case graphics.PathOpMoveTo:
			sink.moveTo(a[0]+ox, a[1]+oy)
		case graphics.PathOpLineTo:
			sink.lineTo(a[0]+ox, a[1]+oy)
		case graphics.PathOpQuadTo:
			sink.quadTo(a[0]+ox, a[1]+oy, a[2]+ox, a[3]+oy)
		case graphics.PathOpCubicTo:
			sink.cubeTo(a[0]+ox, a[1]+oy, a[2]+ox, a[3]+oy, a[4]+ox, a[5]+oy)
		case graphics.PathOpClose:
			sink.closePath()
		}
	}
	sink.end()
}

// fillSink closes every subpath before the next one starts, since
// vector.Rasterizer.MoveTo does not.
type fillSink struct {
	ras  *vector.Rasterizer
	open bool
}

func (s *fillSink) moveTo(x, y float64) {
	s.closePath()
	s.ras.MoveTo(float32(x), float32(y))
	s.open = true
}

func (s *fillSink) lineTo(x, y float64) {
	s.ras.LineTo(float32(x), float32(y))
}

func (s *fillSink) quadTo(x1, y1, x2, y2 float64) {
	s.ras.QuadTo(float32(x1), float32(y1), float32(x2), float32(y2))
}

func (s *fillSink) cubeTo(x1, y1, x2, y2, x3, y3 float64) {
	s.ras.CubeTo(float32(x1), float32(y1), float32(x2), float32(y2), float32(x3), float32(y3))
}

func (s *fillSink) closePath() {
	if s.open {
		s.ras.ClosePath()
		s.open = false
	}
}

func (s *fillSink) end() { s.closePath() }

// strokeSink forwards segments to a rasterx stroker in 26.6 fixed point.
type strokeSink struct {
	stroker *rasterx.Stroker
	open    bool
}

func fixedPoint(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

func (s *strokeSink) moveTo(x, y float64) {
	s.end()
	s.stroker.Start(fixedPoint(x, y))
	s.open = true
}

func (s *strokeSink) lineTo(x, y float64) {
	s.stroker.Line(fixedPoint(x, y))
}

func (s *strokeSink) quadTo(x1, y1, x2, y2 float64) {
	s.stroker.QuadBezier(fixedPoint(x1, y1), fixedPoint(x2, y2))
}

func (s *strokeSink) cubeTo(x1, y1, x2, y2, x3, y3 float64) {
	s.stroker.CubeBezier(fixedPoint(x1, y1), fixedPoint(x2, y2), fixedPoint(x3, y3))
}

func (s *strokeSink) closePath() {
	if s.open {
		s.stroker.Stop(true)
		s.open = false
	}
}

func (s *strokeSink) end() {
	if s.open {
		s.stroker.Stop(false)
		s.open = false
	}
}

// rasterize renders the path into an alpha coverage mask with the bounds of
// the canvas. origin is the translation from path space to mask space.
func (c *Canvas) rasterize(path *graphics.Path, paint graphics.Paint, origin graphics.Offset) *image.Alpha {
	geometry := path
	if paint.CornerRadius > 0 {
		geometry = path.WithRoundedCorners(paint.CornerRadius)
	}

	var mask *image.Alpha
	if paint.Style == graphics.PaintStyleFill || paint.Style == graphics.PaintStyleFillAndStroke {
		mask = c.fillCoverage(geometry, origin)
	}
	if paint.Style == graphics.PaintStyleStroke || paint.Style == graphics.PaintStyleFillAndStroke {
		mask = unionMask(mask, c.strokeCoverage(geometry, paint, origin))
	}
	return mask
}

func (c *Canvas) fillCoverage(path *graphics.Path, origin graphics.Offset) *image.Alpha {
	bounds := c.base.Bounds()
	c.ras.Reset(bounds.Dx(), bounds.Dy())
	c.ras.DrawOp = draw.Src
	replay(path, origin, &fillSink{ras: c.ras})
	mask := image.NewAlpha(bounds)
	c.ras.Draw(mask, bounds, image.Opaque, image.Point{})
	return mask
}

// strokeCoverage outlines the path with rasterx and scans the outline into
// a zero-origin mask that is then rebased onto the canvas bounds.
func (c *Canvas) strokeCoverage(path *graphics.Path, paint graphics.Paint, origin graphics.Offset) *image.Alpha {
	bounds := c.base.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	mask := image.NewAlpha(image.Rect(0, 0, w, h))

	scanner := rasterx.NewScannerGV(w, h, mask, mask.Bounds())
	stroker := rasterx.NewStroker(w, h, scanner)
	stroker.SetStroke(
		fixed.Int26_6(strokeWidth(paint.StrokeWidth)*64),
		fixed.Int26_6(paint.EffectiveMiterLimit()*64),
		capFunc(paint.StrokeCap), nil,
		gapFunc(paint.StrokeJoin), joinMode(paint.StrokeJoin),
	)
	replay(path, origin, &strokeSink{stroker: stroker})
	stroker.SetColor(color.Opaque)
	stroker.Draw()

	mask.Rect = bounds
	return mask
}

func capFunc(c graphics.StrokeCap) rasterx.CapFunc {
	switch c {
	case graphics.CapRound:
		return rasterx.RoundCap
	case graphics.CapSquare:
		return rasterx.SquareCap
	default:
		return rasterx.ButtCap
	}
}

func joinMode(j graphics.StrokeJoin) rasterx.JoinMode {
	switch j {
	case graphics.JoinRound:
		return rasterx.Round
	case graphics.JoinBevel:
		return rasterx.Bevel
	default:
		return rasterx.Miter
	}
}

// gapFunc fills the joints between flattened curve pieces.
func gapFunc(j graphics.StrokeJoin) rasterx.GapFunc {
	if j == graphics.JoinRound {
		return rasterx.RoundGap
	}
	return rasterx.FlatGap
}

// unionMask merges b into a by taking the larger coverage per pixel.
func unionMask(a, b *image.Alpha) *image.Alpha {
	if a == nil {
		return b
	}
	for i, v := range b.Pix {
		if v > a.Pix[i] {
			a.Pix[i] = v
		}
	}
	return a
}

// strokeWidth maps a zero width to a one pixel hairline.
func strokeWidth(w float64) float64 {
	if w <= 0 {
		return 1
	}
	return w
}
