package raster

import (
	"image"
	"math"

	"github.com/playdraft/hexagonview/pkg/graphics"
	"golang.org/x/image/draw"
)

// scalerFor maps a filter quality to an x/image/draw scaler.
func scalerFor(q graphics.FilterQuality) draw.Scaler {
	switch q {
	case graphics.FilterQualityNone:
		return draw.NearestNeighbor
	case graphics.FilterQualityMedium:
		return draw.BiLinear
	case graphics.FilterQualityHigh:
		return draw.CatmullRom
	default:
		return draw.ApproxBiLinear
	}
}

// DrawImageRect draws the srcRect region of img (relative to the image's
// top-left pixel) into dstRect. Parts of srcRect outside the image are
// dropped and dstRect shrinks proportionally.
func (c *Canvas) DrawImageRect(img image.Image, srcRect, dstRect graphics.Rect, quality graphics.FilterQuality, paint *graphics.Paint) {
	if img == nil || dstRect.IsEmpty() {
		return
	}
	ib := img.Bounds()
	if ib.Empty() {
		return
	}
	full := graphics.RectFromLTWH(0, 0, float64(ib.Dx()), float64(ib.Dy()))
	src := srcRect
	if src == (graphics.Rect{}) {
		src = full
	}
	if src.IsEmpty() {
		return
	}
	visible := src.Intersect(full)
	if visible.IsEmpty() {
		return
	}
	sx := dstRect.Width() / src.Width()
	sy := dstRect.Height() / src.Height()
	dst := graphics.Rect{
		Left:   dstRect.Left + (visible.Left-src.Left)*sx,
		Top:    dstRect.Top + (visible.Top-src.Top)*sy,
		Right:  dstRect.Right - (src.Right-visible.Right)*sx,
		Bottom: dstRect.Bottom - (src.Bottom-visible.Bottom)*sy,
	}

	o := c.top().origin
	bmin := c.base.Bounds().Min
	dr := roundRect(dst.Translate(o.X, o.Y)).Add(bmin)
	clip := c.top().clip.Intersect(dr)
	if dr.Empty() || clip.Empty() {
		return
	}
	sr := roundRect(visible).Add(ib.Min)

	tmp := image.NewRGBA(dr)
	if sr.Dx() == dr.Dx() && sr.Dy() == dr.Dy() {
		draw.Copy(tmp, dr.Min, img, sr, draw.Src, nil)
	} else {
		scalerFor(quality).Scale(tmp, dr, img, sr, draw.Src, nil)
	}

	mode := graphics.BlendModeSrcOver
	alpha := uint32(0xFF)
	if paint != nil {
		mode = paint.EffectiveBlendMode()
		alpha = alphaByte(paint.EffectiveAlpha())
	}
	compositeImage(c.target(), clip, tmp, mode, alpha)
}

func roundRect(r graphics.Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.Left)),
		int(math.Round(r.Top)),
		int(math.Round(r.Right)),
		int(math.Round(r.Bottom)),
	)
}
