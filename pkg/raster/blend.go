package raster

import (
	"image"

	"github.com/playdraft/hexagonview/pkg/graphics"
)

// premul is a premultiplied pixel with 8-bit channels widened for arithmetic.
type premul struct {
	r, g, b, a uint32
}

func premulFromColor(c graphics.Color) premul {
	a := uint32(uint8(c >> 24))
	return premul{
		r: div255(uint32(uint8(c>>16)) * a),
		g: div255(uint32(uint8(c>>8)) * a),
		b: div255(uint32(uint8(c)) * a),
		a: a,
	}
}

func (p premul) scale(f uint32) premul {
	if f == 0xFF {
		return p
	}
	return premul{r: div255(p.r * f), g: div255(p.g * f), b: div255(p.b * f), a: div255(p.a * f)}
}

// div255 divides by 255 with rounding; exact for multiples of 255.
func div255(x uint32) uint32 {
	return (x + 127) / 255
}

func clamp255(x uint32) uint32 {
	if x > 0xFF {
		return 0xFF
	}
	return x
}

// porterDuff returns the source and destination factors (0-255) for mode.
// Modes the canvas does not implement composite as src-over.
func porterDuff(mode graphics.BlendMode, sa, da uint32) (fa, fb uint32) {
	switch mode {
	case graphics.BlendModeClear:
		return 0, 0
	case graphics.BlendModeSrc:
		return 0xFF, 0
	case graphics.BlendModeSrcIn:
		return da, 0
	default:
		return 0xFF, 0xFF - sa
	}
}

// blendPixel composites s onto d with the given mode.
func blendPixel(mode graphics.BlendMode, s, d premul) premul {
	fa, fb := porterDuff(mode, s.a, d.a)
	return premul{
		r: clamp255(div255(s.r*fa + d.r*fb)),
		g: clamp255(div255(s.g*fa + d.g*fb)),
		b: clamp255(div255(s.b*fa + d.b*fb)),
		a: clamp255(div255(s.a*fa + d.a*fb)),
	}
}

// lerpCoverage interpolates between the original destination and the blended
// result by coverage (0-255).
func lerpCoverage(res, d premul, cov uint32) premul {
	if cov == 0xFF {
		return res
	}
	inv := 0xFF - cov
	return premul{
		r: div255(res.r*cov + d.r*inv),
		g: div255(res.g*cov + d.g*inv),
		b: div255(res.b*cov + d.b*inv),
		a: div255(res.a*cov + d.a*inv),
	}
}

func loadPixel(img *image.RGBA, i int) premul {
	p := img.Pix[i : i+4 : i+4]
	return premul{r: uint32(p[0]), g: uint32(p[1]), b: uint32(p[2]), a: uint32(p[3])}
}

func storePixel(img *image.RGBA, i int, v premul) {
	p := img.Pix[i : i+4 : i+4]
	p[0] = uint8(v.r)
	p[1] = uint8(v.g)
	p[2] = uint8(v.b)
	p[3] = uint8(v.a)
}

// compositeColor blends a solid color onto dst inside r, weighted by mask.
// A nil mask means full coverage.
func compositeColor(dst *image.RGBA, r image.Rectangle, mask *image.Alpha, c graphics.Color, mode graphics.BlendMode, alpha uint32) {
	r = r.Intersect(dst.Bounds())
	if mask != nil {
		r = r.Intersect(mask.Bounds())
	}
	s := premulFromColor(c).scale(alpha)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			cov := uint32(0xFF)
			if mask != nil {
				cov = uint32(mask.Pix[mask.PixOffset(x, y)])
				if cov == 0 {
					continue
				}
			}
			i := dst.PixOffset(x, y)
			d := loadPixel(dst, i)
			storePixel(dst, i, lerpCoverage(blendPixel(mode, s, d), d, cov))
		}
	}
}

// compositeImage blends src onto dst inside r. Both images share the same
// coordinate space.
func compositeImage(dst *image.RGBA, r image.Rectangle, src *image.RGBA, mode graphics.BlendMode, alpha uint32) {
	r = r.Intersect(dst.Bounds()).Intersect(src.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			i := dst.PixOffset(x, y)
			d := loadPixel(dst, i)
			s := loadPixel(src, src.PixOffset(x, y)).scale(alpha)
			storePixel(dst, i, blendPixel(mode, s, d))
		}
	}
}

// fillColor replaces every pixel of dst inside r with c.
func fillColor(dst *image.RGBA, r image.Rectangle, c graphics.Color) {
	r = r.Intersect(dst.Bounds())
	s := premulFromColor(c)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			storePixel(dst, dst.PixOffset(x, y), s)
		}
	}
}
