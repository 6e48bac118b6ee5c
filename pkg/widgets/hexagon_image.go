package widgets

import (
	"image"

	"github.com/playdraft/hexagonview/pkg/config"
	"github.com/playdraft/hexagonview/pkg/errors"
	"github.com/playdraft/hexagonview/pkg/graphics"
	"github.com/playdraft/hexagonview/pkg/hexagon"
	"github.com/playdraft/hexagonview/pkg/layout"
)

// HexagonImage renders a bitmap clipped to a hexagon with vertices at the top
// and bottom and vertical left and right sides, with a rounded border stroked
// along its outline.
//
// The hexagon is sized by the layout height. Wider boxes leave the area to
// the right of the hexagon transparent.
//
// # Creation Pattern
//
// Use struct literal:
//
//	widgets.HexagonImage{
//	    Source: avatar,
//	    Size:   120,
//	}
//
// or build it from a configuration file with [WidgetFromConfig].
type HexagonImage struct {
	// Source is the image to mask. It is only read, never modified.
	Source image.Image
	// Size is the preferred side of the square box. When zero the source
	// height is used.
	Size float64
	// Border overrides the outline. Nil means a 10 pixel white border.
	Border *hexagon.Border
	// Quality overrides the sampling used when the source is scaled.
	// Nil means graphics.FilterQualityLow.
	Quality *graphics.FilterQuality
}

// WidgetFromConfig builds a HexagonImage for src from cfg.
func WidgetFromConfig(cfg config.Config, src image.Image) (HexagonImage, error) {
	if err := cfg.Validate(); err != nil {
		return HexagonImage{}, err
	}
	border, err := cfg.Border()
	if err != nil {
		return HexagonImage{}, err
	}
	quality := cfg.Quality()
	return HexagonImage{
		Source:  src,
		Border:  &border,
		Quality: &quality,
	}, nil
}

func (h HexagonImage) border() hexagon.Border {
	if h.Border == nil {
		return hexagon.DefaultBorder()
	}
	return *h.Border
}

func (h HexagonImage) quality() graphics.FilterQuality {
	if h.Quality == nil {
		return graphics.FilterQualityLow
	}
	return *h.Quality
}

func (h HexagonImage) CreateRenderObject() layout.RenderObject {
	box := &renderHexagonImage{
		source: h.Source,
		size:   h.Size,
	}
	box.setBorder(h.border())
	box.view.Compositor().SetFilterQuality(h.quality())
	box.SetSelf(box)
	return box
}

func (h HexagonImage) UpdateRenderObject(renderObject layout.RenderObject) {
	box, ok := renderObject.(*renderHexagonImage)
	if !ok {
		return
	}
	if border := h.border(); border != box.view.Compositor().Border() {
		box.setBorder(border)
		box.MarkNeedsLayout()
	}
	// Without an explicit size the box follows the source height.
	if h.Size != box.size || h.Size <= 0 {
		box.MarkNeedsLayout()
	}
	box.source = h.Source
	box.size = h.Size
	box.view.Compositor().SetFilterQuality(h.quality())
	box.MarkNeedsPaint()
}

type renderHexagonImage struct {
	layout.RenderBoxBase
	source image.Image
	size   float64
	view   *hexagon.View
}

// setBorder replaces the view, since a view's border is fixed. Callers
// reapply the filter quality.
func (r *renderHexagonImage) setBorder(border hexagon.Border) {
	r.view = hexagon.NewView(border)
}

func (r *renderHexagonImage) IsRepaintBoundary() bool {
	return true
}

func (r *renderHexagonImage) PerformLayout() {
	side := r.size
	if side <= 0 {
		side = 0
		if r.source != nil {
			side = float64(r.source.Bounds().Dy())
		}
	}
	size := r.Constraints().Constrain(graphics.Size{Width: side, Height: side})
	r.SetSize(size)
	r.view.SizeChanged(int(size.Width), int(size.Height))
}

func (r *renderHexagonImage) Paint(ctx *layout.PaintContext) {
	defer errors.Recover("widgets.HexagonImage.Paint")
	r.view.Draw(ctx.Canvas, r.source)
}
